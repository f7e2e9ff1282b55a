package usecase

import "context"

// UserSummary is what the API exposes about a user after signup or login.
// The credential hash never leaves the domain.
type UserSummary struct {
	UserID       uint64 `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

// LoginResult carries the user summary plus a signed session token
type LoginResult struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// UserUseCase defines account operations
type UserUseCase interface {
	// Signup registers a new user with a hashed credential.
	// Fails with ErrDuplicateEmail if the email is taken.
	Signup(ctx context.Context, name, email, password string) (*UserSummary, error)

	// Login verifies the credential and issues a session token.
	// Any mismatch fails with ErrInvalidCredentials; unknown email and wrong
	// password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// CompleteFirstLogin clears the user's first-login flag
	CompleteFirstLogin(ctx context.Context, userID uint64) error
}
