package entity

import (
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
)

// Budget represents a per-category spending limit. There is at most one row
// per (user, category) pair; rows appear the first time a limit is set for a
// category and are deleted explicitly, leaving any expenses in that category
// untouched.
type Budget struct {
	ID         uint64 // Unique identifier
	UserID     uint64 // Owning user
	Category   string // Normalized free-text category label
	LimitCents int64  // Advisory spending ceiling in cents
}

// NewBudget creates a budget row with a non-negative limit and a non-empty
// normalized category.
func NewBudget(userID uint64, category, limit string) (*Budget, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	category = NormalizeCategory(category)
	if category == "" {
		return nil, errs.ErrEmptyCategory
	}

	limitCents, err := ValidateAndConvertAmount(limit)
	if err != nil {
		return nil, err
	}

	return &Budget{
		UserID:     userID,
		Category:   category,
		LimitCents: limitCents,
	}, nil
}

// Limit returns the limit formatted with two decimal places
func (b *Budget) Limit() string {
	return AmountInCentsToString(b.LimitCents)
}
