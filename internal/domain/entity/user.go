package entity

import (
	"strings"
	"time"

	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
)

// User represents an account that owns income, expenses and budgets
type User struct {
	ID           uint64    // Unique identifier for the user
	Name         string    // Display name
	Email        string    // Unique login email
	PasswordHash []byte    // bcrypt hash; the plaintext password is never stored
	IsFirstLogin bool      // True until the user completes initial budget setup
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with a hashed credential. Name and email must be
// non-blank; the hash is produced by the caller so the entity never sees the
// plaintext password.
func NewUser(name, email string, passwordHash []byte, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || len(passwordHash) == 0 {
		return nil, errs.ErrMissingField
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		IsFirstLogin: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// CompleteFirstLogin clears the first-login flag
func (u *User) CompleteFirstLogin(timeProvider coreport.TimeProvider) {
	u.IsFirstLogin = false
	u.UpdatedAt = timeProvider.Now()
}
