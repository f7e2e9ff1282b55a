package ledger

import (
	"context"
	"errors"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
)

// ListCategorySummaries returns one {category, limit, used} entry per budget
// row in budget-row order. Used is recomputed on demand from the user's
// expenses and never stored.
func (s *Service) ListCategorySummaries(ctx context.Context, userID uint64) ([]usecase.CategorySummary, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	budgets, err := s.budgetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	usedByCategory, err := s.usedByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]usecase.CategorySummary, 0, len(budgets))
	for _, b := range budgets {
		summaries = append(summaries, usecase.CategorySummary{
			Category: b.Category,
			Limit:    b.Limit(),
			Used:     entity.AmountInCentsToString(usedByCategory[b.Category]),
		})
	}

	return summaries, nil
}

// SetCategoryLimit upserts the limit for a category.
//
// Two guards apply, in order:
//  1. An existing limit may not drop below the category's current spend; the
//     rejection names the minimum permitted value.
//  2. On create, or on an increase of an existing limit, the sum of all the
//     user's limits may not exceed the balance (income minus expenses) at
//     this moment. A decrease never re-triggers the balance guard.
func (s *Service) SetCategoryLimit(ctx context.Context, userID uint64, category, newLimit string) (*entity.Budget, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	category = entity.NormalizeCategory(category)
	if category == "" {
		return nil, errs.ErrEmptyCategory
	}

	limitCents, err := entity.ValidateAndConvertAmount(newLimit)
	if err != nil {
		return nil, err
	}

	existing, err := s.budgetRepo.GetByUserAndCategory(ctx, userID, category)
	switch {
	case err == nil:
		used, sumErr := s.expenseRepo.SumByCategory(ctx, userID, category)
		if sumErr != nil {
			return nil, sumErr
		}
		if limitCents < used {
			s.logger.Warn("Limit below current spend rejected", map[string]any{
				"user_id":   userID,
				"category":  category,
				"requested": entity.AmountInCentsToString(limitCents),
				"used":      entity.AmountInCentsToString(used),
			})
			return nil, errs.NewLimitBelowSpendError(category, limitCents, used)
		}
		if limitCents > existing.LimitCents {
			if err := s.checkBalanceHeadroom(ctx, userID, category, limitCents, existing.LimitCents); err != nil {
				return nil, err
			}
		}
		if err := s.budgetRepo.UpdateLimit(ctx, existing.ID, limitCents); err != nil {
			return nil, err
		}
		existing.LimitCents = limitCents
		s.logger.Info("Category limit updated", map[string]any{
			"user_id":  userID,
			"category": category,
			"limit":    existing.Limit(),
		})
		return existing, nil

	case errors.Is(err, errs.ErrBudgetNotFound):
		if err := s.checkBalanceHeadroom(ctx, userID, category, limitCents, 0); err != nil {
			return nil, err
		}
		budget, newErr := entity.NewBudget(userID, category, newLimit)
		if newErr != nil {
			return nil, newErr
		}
		if err := s.budgetRepo.Create(ctx, budget); err != nil {
			return nil, err
		}
		s.logger.Info("Category limit created", map[string]any{
			"user_id":  userID,
			"category": category,
			"limit":    budget.Limit(),
		})
		return budget, nil

	default:
		return nil, err
	}
}

// DeleteCategory removes the budget row for a category. Expenses in that
// category remain, simply unbounded afterwards.
func (s *Service) DeleteCategory(ctx context.Context, userID uint64, category string) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	category = entity.NormalizeCategory(category)
	if category == "" {
		return errs.ErrEmptyCategory
	}

	if err := s.budgetRepo.DeleteByUserAndCategory(ctx, userID, category); err != nil {
		return err
	}

	s.logger.Info("Category budget deleted", map[string]any{
		"user_id":  userID,
		"category": category,
	})
	return nil
}

// CategoryBreakdown returns {name, used-amount} pairs for the dashboard pie
// chart, one per budget row.
func (s *Service) CategoryBreakdown(ctx context.Context, userID uint64) ([]usecase.CategoryAmount, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	budgets, err := s.budgetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	usedByCategory, err := s.usedByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]usecase.CategoryAmount, 0, len(budgets))
	for _, b := range budgets {
		breakdown = append(breakdown, usecase.CategoryAmount{
			Name:  b.Category,
			Value: entity.AmountInCentsToString(usedByCategory[b.Category]),
		})
	}

	return breakdown, nil
}

// usedByCategory sums the user's expenses per category in a single pass
func (s *Service) usedByCategory(ctx context.Context, userID uint64) (map[string]int64, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	used := make(map[string]int64, len(expenses))
	for _, e := range expenses {
		used[e.Category] += e.AmountCents
	}
	return used, nil
}

// checkBalanceHeadroom rejects a limit that would push the sum of the user's
// limits above the current balance. currentLimitCents is the limit the row
// holds today (zero for a new row) so the row's own contribution is not
// double-counted.
func (s *Service) checkBalanceHeadroom(ctx context.Context, userID uint64, category string, limitCents, currentLimitCents int64) error {
	totalIncome, err := s.incomeRepo.SumByUser(ctx, userID)
	if err != nil {
		return err
	}
	totalExpenses, err := s.expenseRepo.SumByUser(ctx, userID)
	if err != nil {
		return err
	}
	allLimits, err := s.budgetRepo.SumLimits(ctx, userID)
	if err != nil {
		return err
	}

	balance := totalIncome - totalExpenses
	otherLimits := allLimits - currentLimitCents
	if otherLimits+limitCents > balance {
		available := balance - otherLimits
		s.logger.Warn("Limit exceeds remaining balance", map[string]any{
			"user_id":   userID,
			"category":  category,
			"requested": entity.AmountInCentsToString(limitCents),
			"available": entity.AmountInCentsToString(available),
		})
		return errs.NewBudgetExceedsBalanceError(category, limitCents, available)
	}
	return nil
}
