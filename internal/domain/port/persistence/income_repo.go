package persistence

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
)

// IncomeRepository defines the persistence operations for income records.
// Income rows are append-only: created and deleted, never updated.
type IncomeRepository interface {
	// Create persists a new income record and assigns its ID
	Create(ctx context.Context, income *entity.Income) error

	// ListByUser returns all income records for a user, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Income, error)

	// SumByUser returns the total income for a user in cents
	SumByUser(ctx context.Context, userID uint64) (int64, error)

	// Delete removes one of a user's income records by ID. The row must
	// belong to the user; another user's row is treated as absent.
	//
	// Possible errors:
	// - ErrIncomeNotFound: If the user has no record with this ID
	Delete(ctx context.Context, userID, id uint64) error
}
