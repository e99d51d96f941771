package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/shared"
)

// Service wraps registration and login business rules.
type Service struct {
	repo   Repository
	tokens *TokenManager
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a user with a hashed password and returns a fresh access
// token bound to the new identity. The plaintext password is never stored.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	user, err := s.repo.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, shared.ErrDuplicate) {
			return "", fmt.Errorf("email %w", shared.ErrDuplicate)
		}
		return "", err
	}

	return s.tokens.Issue(user.ID)
}

// Login validates email/password credentials and returns a fresh access
// token. An unknown email and a wrong password return the identical error
// so the response never reveals which identifiers exist.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", shared.ErrInvalidCredentials
		}
		return "", err
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return "", shared.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}
