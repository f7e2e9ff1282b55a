package ledger

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
)

// monthsInSeries is the fixed bucket count of the monthly series. Charts
// always render a full year axis, so empty months are emitted as zeros
// rather than omitted.
const monthsInSeries = 12

// ComputeTotals returns the dashboard headline figures. totalSavings mirrors
// totalBalance until a distinct savings formula is decided.
func (s *Service) ComputeTotals(ctx context.Context, userID uint64) (*usecase.Totals, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	totalIncome, err := s.incomeRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenseRepo.SumByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalBalance := totalIncome - totalExpenses
	return &usecase.Totals{
		TotalBalance:  entity.AmountInCentsToString(totalBalance),
		TotalIncome:   entity.AmountInCentsToString(totalIncome),
		TotalExpenses: entity.AmountInCentsToString(totalExpenses),
		TotalSavings:  entity.AmountInCentsToString(totalBalance),
	}, nil
}

// ComputeMonthlySeries groups income and expenses by the calendar month of
// their dateAdded and merges them into exactly 12 ordered entries. Years are
// not partitioned: multi-year data collapses into the same 12 buckets.
func (s *Service) ComputeMonthlySeries(ctx context.Context, userID uint64) ([]usecase.MonthlyEntry, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	incomes, err := s.incomeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var incomeByMonth, expenseByMonth [monthsInSeries + 1]int64
	for _, in := range incomes {
		incomeByMonth[int(in.DateAdded.Month())] += in.AmountCents
	}
	for _, ex := range expenses {
		expenseByMonth[int(ex.DateAdded.Month())] += ex.AmountCents
	}

	series := make([]usecase.MonthlyEntry, 0, monthsInSeries)
	for month := 1; month <= monthsInSeries; month++ {
		series = append(series, usecase.MonthlyEntry{
			Month:   month,
			Income:  entity.AmountInCentsToString(incomeByMonth[month]),
			Expense: entity.AmountInCentsToString(expenseByMonth[month]),
		})
	}

	return series, nil
}
