package persistence

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
)

// ExpenseRepository defines the persistence operations for expense records
type ExpenseRepository interface {
	// Create persists a new expense and assigns its ID
	Create(ctx context.Context, expense *entity.Expense) error

	// ListByUser returns all expenses for a user, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Expense, error)

	// ListRecent returns the most recent expenses for a user, newest first,
	// capped at limit
	ListRecent(ctx context.Context, userID uint64, limit int) ([]*entity.Expense, error)

	// ListByCategory returns a user's expenses in one category, newest first.
	// The category is matched exactly and case-sensitively.
	ListByCategory(ctx context.Context, userID uint64, category string) ([]*entity.Expense, error)

	// SumByUser returns the total expenses for a user in cents
	SumByUser(ctx context.Context, userID uint64) (int64, error)

	// SumByCategory returns the total spent by a user in one category in cents
	SumByCategory(ctx context.Context, userID uint64, category string) (int64, error)

	// Delete removes one of a user's expenses by ID. The row must belong to
	// the user; another user's row is treated as absent.
	//
	// Possible errors:
	// - ErrExpenseNotFound: If the user has no expense with this ID
	Delete(ctx context.Context, userID, id uint64) error
}
