package ledger

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
)

// AddIncome appends an income record
func (s *Service) AddIncome(ctx context.Context, userID uint64, amount, source string) (*entity.Income, error) {
	income, err := entity.NewIncome(userID, amount, source, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.incomeRepo.Create(ctx, income); err != nil {
		return nil, err
	}

	s.logger.Info("Income recorded", map[string]any{
		"user_id":   userID,
		"income_id": income.ID,
		"amount":    income.Amount(),
		"source":    income.Source,
	})
	return income, nil
}

// ListIncome returns all income records for a user, newest first
func (s *Service) ListIncome(ctx context.Context, userID uint64) ([]*entity.Income, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.incomeRepo.ListByUser(ctx, userID)
}

// TotalIncome returns the user's total income formatted with two decimal places
func (s *Service) TotalIncome(ctx context.Context, userID uint64) (string, error) {
	if userID == 0 {
		return "", errs.ErrInvalidUserID
	}

	total, err := s.incomeRepo.SumByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return entity.AmountInCentsToString(total), nil
}

// DeleteIncome removes one of the user's income records by ID. The delete is
// scoped to the user, so a record belonging to someone else reads as not
// found rather than being removed.
func (s *Service) DeleteIncome(ctx context.Context, userID, incomeID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	if err := s.incomeRepo.Delete(ctx, userID, incomeID); err != nil {
		return err
	}

	s.logger.Info("Income deleted", map[string]any{
		"user_id":   userID,
		"income_id": incomeID,
	})
	return nil
}
