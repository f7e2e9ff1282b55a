package usecase

import (
	"context"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
)

// CategorySummary pairs a budget row with the amount already spent in that
// category. Amounts are formatted with two decimal places.
type CategorySummary struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Used     string `json:"used"`
}

// Totals carries the dashboard headline figures. TotalSavings currently
// mirrors TotalBalance; a distinct savings formula is an open product
// question, so the identity is preserved rather than invented.
type Totals struct {
	TotalBalance  string `json:"totalBalance"`
	TotalIncome   string `json:"totalIncome"`
	TotalExpenses string `json:"totalExpenses"`
	TotalSavings  string `json:"totalSavings"`
}

// MonthlyEntry is one bucket of the fixed 12-month income/expense series.
// Month is the calendar month 1..12; years are not partitioned.
type MonthlyEntry struct {
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// CategoryAmount is one slice of the category breakdown pie chart
type CategoryAmount struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LedgerUseCase owns the budget/category rules: limit upserts guarded by
// current spend and balance, on-demand aggregates, and expense/income
// lifecycle. It assumes the caller has already resolved the user.
type LedgerUseCase interface {
	// ListCategorySummaries returns one {category, limit, used} entry per
	// budget row, in budget-row order
	ListCategorySummaries(ctx context.Context, userID uint64) ([]CategorySummary, error)

	// SetCategoryLimit upserts the limit for a category. An existing limit may
	// not be set below the category's current spend, and a create or increase
	// may not push the sum of all limits above the user's balance.
	SetCategoryLimit(ctx context.Context, userID uint64, category, newLimit string) (*entity.Budget, error)

	// DeleteCategory removes the budget row for a category, leaving the
	// category's expenses untouched
	DeleteCategory(ctx context.Context, userID uint64, category string) error

	// AddBudget inserts a raw budget row (no upsert); a duplicate
	// (user, category) pair is rejected
	AddBudget(ctx context.Context, userID uint64, category, limit string) (*entity.Budget, error)

	// ListBudgets returns all raw budget rows for a user
	ListBudgets(ctx context.Context, userID uint64) ([]*entity.Budget, error)

	// DeleteBudget removes one of the user's budget rows by ID; a row owned
	// by a different user reads as not found
	DeleteBudget(ctx context.Context, userID, budgetID uint64) error

	// RecordExpense appends an expense; budget limits are advisory and never
	// block a spend
	RecordExpense(ctx context.Context, userID uint64, category, amount, billImageBase64 string) (*entity.Expense, error)

	// ListExpenses returns all expenses for a user, newest first
	ListExpenses(ctx context.Context, userID uint64) ([]*entity.Expense, error)

	// RecentExpenses returns the 10 most recent expenses for a user
	RecentExpenses(ctx context.Context, userID uint64) ([]*entity.Expense, error)

	// CategoryExpenses returns a user's expenses in one category
	CategoryExpenses(ctx context.Context, userID uint64, category string) ([]*entity.Expense, error)

	// DeleteExpense removes one of the user's expenses by ID; a row owned by
	// a different user reads as not found
	DeleteExpense(ctx context.Context, userID, expenseID uint64) error

	// AddIncome appends an income record
	AddIncome(ctx context.Context, userID uint64, amount, source string) (*entity.Income, error)

	// ListIncome returns all income records for a user, newest first
	ListIncome(ctx context.Context, userID uint64) ([]*entity.Income, error)

	// TotalIncome returns the user's total income, formatted
	TotalIncome(ctx context.Context, userID uint64) (string, error)

	// DeleteIncome removes one of the user's income records by ID; a row
	// owned by a different user reads as not found
	DeleteIncome(ctx context.Context, userID, incomeID uint64) error

	// ComputeTotals returns income, expenses, balance and savings totals
	ComputeTotals(ctx context.Context, userID uint64) (*Totals, error)

	// ComputeMonthlySeries returns exactly 12 entries, months 1..12, with
	// income/expense sums zero-filled for empty months
	ComputeMonthlySeries(ctx context.Context, userID uint64) ([]MonthlyEntry, error)

	// CategoryBreakdown returns {name, used-amount} pairs, one per budget row
	CategoryBreakdown(ctx context.Context, userID uint64) ([]CategoryAmount, error)
}
