package persistence

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
)

// BudgetRepository defines the persistence operations for budget rows.
// A unique index on (userID, category) backs the one-row-per-pair invariant.
type BudgetRepository interface {
	// Create persists a new budget row and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateBudget: If a row for (userID, category) already exists
	Create(ctx context.Context, budget *entity.Budget) error

	// ListByUser returns all budget rows for a user in insertion order
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Budget, error)

	// GetByUserAndCategory returns the budget row for an exact category match
	//
	// Possible errors:
	// - ErrBudgetNotFound: If no row exists for the pair
	GetByUserAndCategory(ctx context.Context, userID uint64, category string) (*entity.Budget, error)

	// UpdateLimit changes the limit of an existing budget row
	//
	// Possible errors:
	// - ErrBudgetNotFound: If the row doesn't exist
	UpdateLimit(ctx context.Context, budgetID uint64, limitCents int64) error

	// SumLimits returns the sum of all limits for a user in cents
	SumLimits(ctx context.Context, userID uint64) (int64, error)

	// DeleteByID removes one of a user's budget rows by ID. The row must
	// belong to the user; another user's row is treated as absent.
	//
	// Possible errors:
	// - ErrBudgetNotFound: If the user has no row with this ID
	DeleteByID(ctx context.Context, userID, id uint64) error

	// DeleteByUserAndCategory removes the budget row for a (user, category) pair
	//
	// Possible errors:
	// - ErrBudgetNotFound: If no row exists for the pair
	DeleteByUserAndCategory(ctx context.Context, userID uint64, category string) error
}
