package ledger

import (
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/domain/port/persistence"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
)

// Service implements the budget ledger rules over the persistence ports.
// Every operation is a single request/response against the store; there is no
// locking discipline beyond per-statement persistence guarantees, which is
// acceptable for single-user personal data entry.
type Service struct {
	incomeRepo   persistence.IncomeRepository
	expenseRepo  persistence.ExpenseRepository
	budgetRepo   persistence.BudgetRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a ledger service instance
func NewService(
	incomeRepo persistence.IncomeRepository,
	expenseRepo persistence.ExpenseRepository,
	budgetRepo persistence.BudgetRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.LedgerUseCase {
	return &Service{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		budgetRepo:   budgetRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
