package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/shared"
)

type stubRepo struct {
	users  map[string]*auth.User
	nextID int64

	createErr error
	findErr   error
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]*auth.User), nextID: 1}
}

func (s *stubRepo) CreateUser(ctx context.Context, email, passwordHash string) (*auth.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.users[email]; ok {
		return nil, shared.ErrDuplicate
	}
	user := &auth.User{
		ID:           s.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.nextID++
	s.users[email] = user
	return user, nil
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	user, ok := s.users[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

func newService(repo auth.Repository) *auth.Service {
	return auth.NewService(repo, auth.NewTokenManager("service-test-secret", time.Hour))
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	token, err := svc.Register(context.Background(), "a@test.local", "pass1234")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := auth.VerifyToken(token, []byte("service-test-secret"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, repo.users["a@test.local"].ID, userID)

	// Plaintext must never reach the store.
	assert.NotEqual(t, "pass1234", repo.users["a@test.local"].PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), "a@test.local", "pass1234")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@test.local", "otherpass")
	assert.ErrorIs(t, err, shared.ErrDuplicate)
	assert.Len(t, repo.users, 1, "failed registration must not add a record")
}

func TestLoginSuccess(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), "a@test.local", "pass1234")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "a@test.local", "pass1234")
	require.NoError(t, err)

	userID, err := auth.VerifyToken(token, []byte("service-test-secret"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, repo.users["a@test.local"].ID, userID)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), "a@test.local", "pass1234")
	require.NoError(t, err)

	_, wrongPass := svc.Login(context.Background(), "a@test.local", "wrong")
	_, unknownUser := svc.Login(context.Background(), "nobody@test.local", "pass1234")

	assert.ErrorIs(t, wrongPass, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, shared.ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknownUser, "both failures must be the same error")
}

func TestLoginStorageFailurePassesThrough(t *testing.T) {
	repo := newStubRepo()
	repo.findErr = assert.AnError
	svc := newService(repo)

	_, err := svc.Login(context.Background(), "a@test.local", "pass1234")
	require.Error(t, err)
	assert.NotErrorIs(t, err, shared.ErrInvalidCredentials)
}
