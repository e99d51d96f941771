package auth

import "time"

// User represents a registered account. The password is stored only as a
// bcrypt hash; plaintext never leaves the register/login handlers.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
