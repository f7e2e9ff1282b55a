package ledger

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
)

// recentExpenseLimit caps the dashboard's recent-transactions list
const recentExpenseLimit = 10

// RecordExpense appends an expense row. Budget limits are advisory ceilings:
// a user can freely spend past them, so no limit check happens here.
func (s *Service) RecordExpense(ctx context.Context, userID uint64, category, amount, billImageBase64 string) (*entity.Expense, error) {
	expense, err := entity.NewExpense(userID, category, amount, billImageBase64, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("Expense recorded", map[string]any{
		"user_id":    userID,
		"expense_id": expense.ID,
		"category":   expense.Category,
		"amount":     expense.Amount(),
		"has_image":  expense.BillImageBase64 != "",
	})
	return expense, nil
}

// ListExpenses returns all expenses for a user, newest first
func (s *Service) ListExpenses(ctx context.Context, userID uint64) ([]*entity.Expense, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.expenseRepo.ListByUser(ctx, userID)
}

// RecentExpenses returns the 10 most recent expenses for a user
func (s *Service) RecentExpenses(ctx context.Context, userID uint64) ([]*entity.Expense, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.expenseRepo.ListRecent(ctx, userID, recentExpenseLimit)
}

// CategoryExpenses returns a user's expenses in one category, newest first
func (s *Service) CategoryExpenses(ctx context.Context, userID uint64, category string) ([]*entity.Expense, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	category = entity.NormalizeCategory(category)
	if category == "" {
		return nil, errs.ErrEmptyCategory
	}
	return s.expenseRepo.ListByCategory(ctx, userID, category)
}

// DeleteExpense removes one of the user's expenses by ID. The delete is
// scoped to the user, so an expense belonging to someone else reads as
// not found rather than being removed.
func (s *Service) DeleteExpense(ctx context.Context, userID, expenseID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	if err := s.expenseRepo.Delete(ctx, userID, expenseID); err != nil {
		return err
	}

	s.logger.Info("Expense deleted", map[string]any{
		"user_id":    userID,
		"expense_id": expenseID,
	})
	return nil
}
