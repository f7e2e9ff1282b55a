package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
)

func TestAddBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful raw insert", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.UserID == 1 && b.Category == "Food" && b.LimitCents == 25000
		})).Return(nil).Once()

		budget, err := svc.AddBudget(ctx, 1, "Food", "250.00")

		require.NoError(t, err)
		assert.Equal(t, "250.00", budget.Limit())
	})

	t.Run("Duplicate pair is rejected", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateBudget).Once()

		budget, err := svc.AddBudget(ctx, 1, "Food", "250.00")

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrDuplicateBudget)
	})

	t.Run("Invalid input", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		_, err := svc.AddBudget(ctx, 0, "Food", "100")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = svc.AddBudget(ctx, 1, " ", "100")
		assert.ErrorIs(t, err, errs.ErrEmptyCategory)

		_, err = svc.AddBudget(ctx, 1, "Food", "-1")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestListBudgets(t *testing.T) {
	ctx := context.Background()

	t.Run("Delegates to the repository", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		expected := []*entity.Budget{{ID: 1, UserID: 1, Category: "Food", LimitCents: 25000}}
		m.budgetRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return(expected, nil).Once()

		budgets, err := svc.ListBudgets(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, expected, budgets)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		_, err := svc.ListBudgets(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestDeleteBudget(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful delete", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().DeleteByID(mock.Anything, uint64(1), uint64(3)).Return(nil).Once()

		require.NoError(t, svc.DeleteBudget(ctx, 1, 3))
	})

	t.Run("Missing row surfaces not found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().DeleteByID(mock.Anything, uint64(1), uint64(99)).Return(errs.ErrBudgetNotFound).Once()

		err := svc.DeleteBudget(ctx, 1, 99)
		assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
	})

	t.Run("Another user's row reads as not found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().DeleteByID(mock.Anything, uint64(1), uint64(3)).Return(errs.ErrBudgetNotFound).Once()

		err := svc.DeleteBudget(ctx, 1, 3)
		assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		err := svc.DeleteBudget(ctx, 0, 3)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
