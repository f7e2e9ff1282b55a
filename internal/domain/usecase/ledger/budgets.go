package ledger

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
)

// AddBudget inserts a raw budget row. Unlike SetCategoryLimit this never
// updates an existing row; a second row for the same (user, category) pair is
// rejected so the one-row-per-pair invariant holds through this path too.
func (s *Service) AddBudget(ctx context.Context, userID uint64, category, limit string) (*entity.Budget, error) {
	budget, err := entity.NewBudget(userID, category, limit)
	if err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	s.logger.Info("Budget row created", map[string]any{
		"user_id":  userID,
		"category": budget.Category,
		"limit":    budget.Limit(),
	})
	return budget, nil
}

// ListBudgets returns all raw budget rows for a user in insertion order
func (s *Service) ListBudgets(ctx context.Context, userID uint64) ([]*entity.Budget, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.budgetRepo.ListByUser(ctx, userID)
}

// DeleteBudget removes one of the user's budget rows by ID. The delete is
// scoped to the user, so a row belonging to someone else reads as not found
// rather than being removed.
func (s *Service) DeleteBudget(ctx context.Context, userID, budgetID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	if err := s.budgetRepo.DeleteByID(ctx, userID, budgetID); err != nil {
		return err
	}

	s.logger.Info("Budget row deleted", map[string]any{
		"user_id":   userID,
		"budget_id": budgetID,
	})
	return nil
}
