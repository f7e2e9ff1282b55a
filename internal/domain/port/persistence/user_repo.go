package persistence

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
)

// UserRepository defines the persistence operations for user accounts
type UserRepository interface {
	// Create persists a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateEmail: If a user with the same email already exists
	// - ErrDatabaseConnection: If the database cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with this ID exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by exact email match
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with this email exists
	// - ErrDatabaseConnection: If the database cannot be reached
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing user
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrDatabaseConnection: If the database cannot be reached
	Update(ctx context.Context, user *entity.User) error
}
