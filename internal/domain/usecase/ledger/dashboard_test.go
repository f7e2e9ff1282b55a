package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
)

func TestComputeTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("Balance is income minus expenses and savings mirrors it", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.incomeRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(100000), nil).Once()
		m.expenseRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(30000), nil).Once()

		totals, err := svc.ComputeTotals(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "1000.00", totals.TotalIncome)
		assert.Equal(t, "300.00", totals.TotalExpenses)
		assert.Equal(t, "700.00", totals.TotalBalance)
		assert.Equal(t, totals.TotalBalance, totals.TotalSavings)
	})

	t.Run("Negative balance is formatted with sign", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.incomeRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(10000), nil).Once()
		m.expenseRepo.EXPECT().SumByUser(mock.Anything, uint64(1)).Return(int64(15000), nil).Once()

		totals, err := svc.ComputeTotals(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "-50.00", totals.TotalBalance)
		assert.Equal(t, "-50.00", totals.TotalSavings)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		totals, err := svc.ComputeTotals(ctx, 0)

		assert.Nil(t, totals)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestComputeMonthlySeries(t *testing.T) {
	ctx := context.Background()

	monthDate := func(month time.Month) time.Time {
		return time.Date(2025, month, 10, 12, 0, 0, 0, time.UTC)
	}

	t.Run("Always exactly twelve zero-filled buckets", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.incomeRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Income{}, nil).Once()
		m.expenseRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Expense{}, nil).Once()

		series, err := svc.ComputeMonthlySeries(ctx, 1)

		require.NoError(t, err)
		require.Len(t, series, 12)
		for i, entry := range series {
			assert.Equal(t, i+1, entry.Month)
			assert.Equal(t, "0.00", entry.Income)
			assert.Equal(t, "0.00", entry.Expense)
		}
	})

	t.Run("Rows land in their calendar month", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.incomeRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Income{
			{ID: 1, UserID: 1, AmountCents: 100000, Source: "Salary", DateAdded: monthDate(time.March)},
		}, nil).Once()
		m.expenseRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Expense{
			{ID: 10, UserID: 1, Category: "Food", AmountCents: 20000, DateAdded: monthDate(time.March)},
			{ID: 11, UserID: 1, Category: "Food", AmountCents: 10000, DateAdded: monthDate(time.May)},
		}, nil).Once()

		series, err := svc.ComputeMonthlySeries(ctx, 1)

		require.NoError(t, err)
		require.Len(t, series, 12)

		march := series[2]
		assert.Equal(t, 3, march.Month)
		assert.Equal(t, "1000.00", march.Income)
		assert.Equal(t, "200.00", march.Expense)

		may := series[4]
		assert.Equal(t, 5, may.Month)
		assert.Equal(t, "0.00", may.Income)
		assert.Equal(t, "100.00", may.Expense)

		for i, entry := range series {
			if i == 2 || i == 4 {
				continue
			}
			assert.Equal(t, "0.00", entry.Income)
			assert.Equal(t, "0.00", entry.Expense)
		}
	})

	t.Run("Years collapse into the same buckets", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		m.incomeRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Income{
			{ID: 1, UserID: 1, AmountCents: 5000, DateAdded: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, UserID: 1, AmountCents: 7000, DateAdded: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
		}, nil).Once()
		m.expenseRepo.EXPECT().ListByUser(mock.Anything, uint64(1)).Return([]*entity.Expense{}, nil).Once()

		series, err := svc.ComputeMonthlySeries(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "120.00", series[6].Income)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		series, err := svc.ComputeMonthlySeries(ctx, 0)

		assert.Nil(t, series)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
