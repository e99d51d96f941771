package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/auth"
)

var tokenSecret = []byte("test-signing-secret")

func TestTokenRoundTrip(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := auth.IssueToken(42, tokenSecret, time.Hour, issued)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := auth.VerifyToken(token, tokenSecret, issued.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestTokenExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	token, err := auth.IssueToken(7, tokenSecret, time.Hour, issued)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token, tokenSecret, issued.Add(59*time.Minute))
	assert.NoError(t, err, "token should be valid before expiry")

	_, err = auth.VerifyToken(token, tokenSecret, issued.Add(61*time.Minute))
	assert.Error(t, err, "token should be rejected after expiry")
}

func TestTokenWrongSecret(t *testing.T) {
	issued := time.Now()

	token, err := auth.IssueToken(7, []byte("other-secret"), time.Hour, issued)
	require.NoError(t, err)

	_, err = auth.VerifyToken(token, tokenSecret, issued.Add(time.Minute))
	assert.Error(t, err)
}

func TestTokenTampered(t *testing.T) {
	issued := time.Now()

	token, err := auth.IssueToken(7, tokenSecret, time.Hour, issued)
	require.NoError(t, err)

	// Flip a character in the claims segment; the signature must no
	// longer verify.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = auth.VerifyToken(string(tampered), tokenSecret, issued.Add(time.Minute))
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := auth.VerifyToken("not-a-token", tokenSecret, time.Now())
	assert.Error(t, err)
}

func TestTokenManagerDefaults(t *testing.T) {
	tokens := auth.NewTokenManager("secret", 0)

	signed, err := tokens.Issue(1)
	require.NoError(t, err)

	userID, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}
