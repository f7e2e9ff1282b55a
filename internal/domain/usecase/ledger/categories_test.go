package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coremocks "github.com/moneymates/budget-ledger/mocks/port/core"
	persistencemocks "github.com/moneymates/budget-ledger/mocks/port/persistence"
)

type serviceMocks struct {
	incomeRepo  *persistencemocks.MockIncomeRepository
	expenseRepo *persistencemocks.MockExpenseRepository
	budgetRepo  *persistencemocks.MockBudgetRepository
	timeMock    *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newServiceWithMocks(t *testing.T) (*Service, serviceMocks) {
	m := serviceMocks{
		incomeRepo:  persistencemocks.NewMockIncomeRepository(t),
		expenseRepo: persistencemocks.NewMockExpenseRepository(t),
		budgetRepo:  persistencemocks.NewMockBudgetRepository(t),
		timeMock:    coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewService(m.incomeRepo, m.expenseRepo, m.budgetRepo, m.timeMock, m.logger).(*Service)
	return svc, m
}

func TestListCategorySummaries(t *testing.T) {
	ctx := context.Background()

	t.Run("One entry per budget row with recomputed spend", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Budget{
			{ID: 1, UserID: 1, Category: "Food", LimitCents: 25000},
			{ID: 2, UserID: 1, Category: "Rent", LimitCents: 80000},
		}, nil).Once()
		m.expenseRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Expense{
			{ID: 10, UserID: 1, Category: "Food", AmountCents: 20000},
			{ID: 11, UserID: 1, Category: "Food", AmountCents: 10000},
		}, nil).Once()

		summaries, err := svc.ListCategorySummaries(ctx, 1)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, "Food", summaries[0].Category)
		assert.Equal(t, "250.00", summaries[0].Limit)
		assert.Equal(t, "300.00", summaries[0].Used)
		assert.Equal(t, "Rent", summaries[1].Category)
		assert.Equal(t, "800.00", summaries[1].Limit)
		assert.Equal(t, "0.00", summaries[1].Used)
	})

	t.Run("No budget rows yields empty list", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Budget{}, nil).Once()
		m.expenseRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Expense{}, nil).Once()

		summaries, err := svc.ListCategorySummaries(ctx, 1)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		summaries, err := svc.ListCategorySummaries(ctx, 0)

		assert.Nil(t, summaries)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		dbErr := errors.New("database down")
		m.budgetRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return(nil, dbErr).Once()

		summaries, err := svc.ListCategorySummaries(ctx, 1)

		assert.Nil(t, summaries)
		assert.Equal(t, dbErr, err)
	})
}

func TestSetCategoryLimit(t *testing.T) {
	ctx := context.Background()

	t.Run("Decrease within spend skips balance check", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		existing := &entity.Budget{ID: 7, UserID: 1, Category: "Food", LimitCents: 30000}
		m.budgetRepo.EXPECT().GetByUserAndCategory(mock.Anything, uint64(1), "Food").Return(existing, nil).Once()
		m.expenseRepo.EXPECT().SumByCategory(mock.Anything, uint64(1), "Food").Return(int64(25000), nil).Once()
		m.budgetRepo.EXPECT().UpdateLimit(mock.Anything, uint64(7), int64(28000)).Return(nil).Once()

		budget, err := svc.SetCategoryLimit(ctx, 1, "Food", "280.00")

		require.NoError(t, err)
		assert.Equal(t, int64(28000), budget.LimitCents)
		assert.Equal(t, "280.00", budget.Limit())
	})

	t.Run("Limit below current spend is rejected with the minimum", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		existing := &entity.Budget{ID: 7, UserID: 1, Category: "Food", LimitCents: 25000}
		m.budgetRepo.EXPECT().GetByUserAndCategory(mock.Anything, uint64(1), "Food").Return(existing, nil).Once()
		m.expenseRepo.EXPECT().SumByCategory(mock.Anything, uint64(1), "Food").Return(int64(30000), nil).Once()

		budget, err := svc.SetCategoryLimit(ctx, 1, "Food", "200.00")

		assert.Nil(t, budget)
		require.ErrorIs(t, err, errs.ErrLimitBelowSpend)
		var detailed *errs.LimitBelowSpendError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(30000), detailed.UsedCents)
		assert.Equal(t, int64(20000), detailed.RequestedCents)
	})

	t.Run("Limit equal to spend succeeds", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		existing := &entity.Budget{ID: 7, UserID: 1, Category: "Food", LimitCents: 25000}
		m.budgetRepo.EXPECT().GetByUserAndCategory(mock.Anything, uint64(1), "Food").Return(existing, nil).Once()
		m.expenseRepo.EXPECT().SumByCategory(mock.Anything, uint64(1), "Food").Return(int64(30000), nil).Once()
		// 30000 > 25000 is an increase, so the balance guard runs
		m.incomeRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(100000), nil).Once()
		m.expenseRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(30000), nil).Once()
		m.budgetRepo.EXPECT().SumLimits(mock.Anything, uint64(1)).Return(int64(25000), nil).Once()
		m.budgetRepo.EXPECT().UpdateLimit(mock.Anything, uint64(7), int64(30000)).Return(nil).Once()

		budget, err := svc.SetCategoryLimit(ctx, 1, "Food", "300.00")

		require.NoError(t, err)
		assert.Equal(t, int64(30000), budget.LimitCents)
	})

	t.Run("Increase past the balance is rejected", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		existing := &entity.Budget{ID: 7, UserID: 1, Category: "Food", LimitCents: 25000}
		m.budgetRepo.EXPECT().GetByUserAndCategory(mock.Anything, uint64(1), "Food").Return(existing, nil).Once()
		m.expenseRepo.EXPECT().SumByCategory(mock.Anything, uint64(1), "Food").Return(int64(10000), nil).Once()
		// balance = 1000.00 - 300.00 = 700.00; other limits = 400.00 - 250.00 = 150.00
		m.incomeRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(100000), nil).Once()
		m.expenseRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(30000), nil).Once()
		m.budgetRepo.EXPECT().SumLimits(mock.Anything, uint64(1)).Return(int64(40000), nil).Once()

		budget, err := svc.SetCategoryLimit(ctx, 1, "Food", "900.00")

		assert.Nil(t, budget)
		require.ErrorIs(t, err, errs.ErrBudgetExceedsBalance)
		var detailed *errs.BudgetExceedsBalanceError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(90000), detailed.RequestedCents)
		assert.Equal(t, int64(55000), detailed.AvailableCents)
	})

	t.Run("Creates a new row when the category has no budget", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().GetByUserAndCategory(mock.Anything, uint64(1), "Travel").Return(nil, errs.ErrBudgetNotFound).Once()
		m.incomeRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(100000), nil).Once()
		m.expenseRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(0), nil).Once()
		m.budgetRepo.EXPECT().SumLimits(mock.Anything, uint64(1)).Return(int64(0), nil).Once()
		m.budgetRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.UserID == 1 && b.Category == "Travel" && b.LimitCents == 50000
		})).Return(nil).Once()

		budget, err := svc.SetCategoryLimit(ctx, 1, "Travel", "500.00")

		require.NoError(t, err)
		assert.Equal(t, "Travel", budget.Category)
		assert.Equal(t, int64(50000), budget.LimitCents)
	})

	t.Run("Create past the balance is rejected", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().GetByUserAndCategory(mock.Anything, uint64(1), "Travel").Return(nil, errs.ErrBudgetNotFound).Once()
		// balance = 500.00 - 200.00 = 300.00; existing limits already claim 100.00
		m.incomeRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(50000), nil).Once()
		m.expenseRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(20000), nil).Once()
		m.budgetRepo.EXPECT().SumLimits(mock.Anything, uint64(1)).Return(int64(10000), nil).Once()

		budget, err := svc.SetCategoryLimit(ctx, 1, "Travel", "250.00")

		assert.Nil(t, budget)
		require.ErrorIs(t, err, errs.ErrBudgetExceedsBalance)
		var detailed *errs.BudgetExceedsBalanceError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(20000), detailed.AvailableCents)
	})

	t.Run("Category is normalized before lookup", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		existing := &entity.Budget{ID: 7, UserID: 1, Category: "Food", LimitCents: 30000}
		m.budgetRepo.EXPECT().GetByUserAndCategory(mock.Anything, uint64(1), "Food").Return(existing, nil).Once()
		m.expenseRepo.EXPECT().SumByCategory(mock.Anything, uint64(1), "Food").Return(int64(0), nil).Once()
		m.budgetRepo.EXPECT().UpdateLimit(mock.Anything, uint64(7), int64(20000)).Return(nil).Once()

		_, err := svc.SetCategoryLimit(ctx, 1, "  Food  ", "200.00")

		require.NoError(t, err)
	})

	t.Run("Invalid input", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		_, err := svc.SetCategoryLimit(ctx, 0, "Food", "100.00")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = svc.SetCategoryLimit(ctx, 1, "   ", "100.00")
		assert.ErrorIs(t, err, errs.ErrEmptyCategory)

		_, err = svc.SetCategoryLimit(ctx, 1, "Food", "-100.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)

		_, err = svc.SetCategoryLimit(ctx, 1, "Food", "abc")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful delete", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().DeleteByUserAndCategory(mock.Anything, uint64(1), "Food").Return(nil).Once()

		err := svc.DeleteCategory(ctx, 1, "Food")

		require.NoError(t, err)
	})

	t.Run("Missing row surfaces not found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().DeleteByUserAndCategory(mock.Anything, uint64(1), "Ghost").Return(errs.ErrBudgetNotFound).Once()

		err := svc.DeleteCategory(ctx, 1, "Ghost")

		assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
	})

	t.Run("Empty category", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		err := svc.DeleteCategory(ctx, 1, "  ")

		assert.ErrorIs(t, err, errs.ErrEmptyCategory)
	})
}

func TestCategoryBreakdown(t *testing.T) {
	ctx := context.Background()

	t.Run("One pair per budget row", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.budgetRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Budget{
			{ID: 1, UserID: 1, Category: "Food", LimitCents: 25000},
			{ID: 2, UserID: 1, Category: "Rent", LimitCents: 80000},
		}, nil).Once()
		m.expenseRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Expense{
			{ID: 10, UserID: 1, Category: "Food", AmountCents: 5000, DateAdded: time.Now()},
		}, nil).Once()

		breakdown, err := svc.CategoryBreakdown(ctx, 1)

		require.NoError(t, err)
		require.Len(t, breakdown, 2)
		assert.Equal(t, "Food", breakdown[0].Name)
		assert.Equal(t, "50.00", breakdown[0].Value)
		assert.Equal(t, "Rent", breakdown[1].Name)
		assert.Equal(t, "0.00", breakdown[1].Value)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		breakdown, err := svc.CategoryBreakdown(ctx, 0)

		assert.Nil(t, breakdown)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
