package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is how long an issued access token stays valid.
const DefaultTokenTTL = time.Hour

// Claims carries the signed token payload. The subject is the user's
// storage id; no audience or issuer is set, single-secret single-issuer.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs an access token for userID expiring exactly ttl after
// now. The signature makes subject and expiry tamper-evident.
func IssueToken(userID int64, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the token signature and expiry against the given
// clock and returns the embedded user id. It performs no I/O.
func VerifyToken(tokenString string, secret []byte, now time.Time) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return 0, fmt.Errorf("parsing access token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid access token")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing token subject: %w", err)
	}
	return userID, nil
}

// TokenManager issues and verifies tokens against the wall clock with a
// fixed secret, so handlers never touch signing details.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager. A non-positive ttl falls back
// to DefaultTokenTTL.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a fresh token for userID.
func (m *TokenManager) Issue(userID int64) (string, error) {
	return IssueToken(userID, m.secret, m.ttl, time.Now())
}

// Verify validates tokenString and returns the embedded user id.
func (m *TokenManager) Verify(tokenString string) (int64, error) {
	return VerifyToken(tokenString, m.secret, time.Now())
}
