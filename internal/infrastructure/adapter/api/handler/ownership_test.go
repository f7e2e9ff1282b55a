package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	"github.com/moneymates/budget-ledger/internal/domain/usecase/ledger"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/logger"
	realtime "github.com/moneymates/budget-ledger/internal/infrastructure/adapter/time"
	persistencemocks "github.com/moneymates/budget-ledger/mocks/port/persistence"
)

var ownershipTokenSecret = []byte("test-secret")

type ledgerRepoMocks struct {
	incomeRepo  *persistencemocks.MockIncomeRepository
	expenseRepo *persistencemocks.MockExpenseRepository
	budgetRepo  *persistencemocks.MockBudgetRepository
}

// newLedgerRouter wires the write and delete routes through the real auth
// middleware and ledger service, with only the persistence layer mocked.
func newLedgerRouter(t *testing.T) (*gin.Engine, ledgerRepoMocks) {
	gin.SetMode(gin.TestMode)

	m := ledgerRepoMocks{
		incomeRepo:  persistencemocks.NewMockIncomeRepository(t),
		expenseRepo: persistencemocks.NewMockExpenseRepository(t),
		budgetRepo:  persistencemocks.NewMockBudgetRepository(t),
	}

	noop := logger.NewNoopLogger()
	ledgerUseCase := ledger.NewService(m.incomeRepo, m.expenseRepo, m.budgetRepo, realtime.NewRealTimeProvider(), noop)

	expenseHandler := NewExpenseHandler(ledgerUseCase, noop)
	incomeHandler := NewIncomeHandler(ledgerUseCase, noop)
	budgetHandler := NewBudgetHandler(ledgerUseCase, noop)

	requireAuth := middleware.RequireAuth(ownershipTokenSecret, noop)
	router := gin.New()
	router.POST("/expenses", requireAuth, expenseHandler.RecordExpense)
	router.DELETE("/expenses/:expenseId", requireAuth, expenseHandler.DeleteExpense)
	router.POST("/income", requireAuth, incomeHandler.AddIncome)
	router.DELETE("/income/:incomeId", requireAuth, incomeHandler.DeleteIncome)
	router.POST("/budgets", requireAuth, budgetHandler.AddBudget)
	router.DELETE("/budgets/:budgetId", requireAuth, budgetHandler.DeleteBudget)
	return router, m
}

func signToken(t *testing.T, subject string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(ownershipTokenSecret)
	require.NoError(t, err)
	return signed
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWriteEndpointsRejectForeignUser(t *testing.T) {
	testCases := []struct {
		name string
		path string
		body string
	}{
		{"Expense for another user", "/expenses", `{"userId":2,"category":"Food","amount":"10.00"}`},
		{"Income for another user", "/income", `{"userId":2,"amount":"100.00","source":"Salary"}`},
		{"Budget for another user", "/budgets", `{"userId":2,"category":"Food","limit":"250.00"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := newLedgerRouter(t)

			// No repository expectations: the write must be refused before
			// it reaches the store.
			w := doJSON(router, http.MethodPost, tc.path, signToken(t, "1"), tc.body)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Contains(t, w.Body.String(), "Token does not match requested user")
		})
	}
}

func TestWriteEndpointsAcceptOwner(t *testing.T) {
	router, m := newLedgerRouter(t)

	m.expenseRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.Expense) bool {
		return e.UserID == 1 && e.Category == "Food"
	})).Return(nil).Once()

	w := doJSON(router, http.MethodPost, "/expenses", signToken(t, "1"), `{"userId":1,"category":"Food","amount":"10.00"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteEndpointsRunAsTokenSubject(t *testing.T) {
	t.Run("Another user's expense reads as not found", func(t *testing.T) {
		router, m := newLedgerRouter(t)

		m.expenseRepo.EXPECT().Delete(mock.Anything, uint64(1), uint64(10)).Return(errs.ErrExpenseNotFound).Once()

		w := doJSON(router, http.MethodDelete, "/expenses/10", signToken(t, "1"), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Own income record is deleted", func(t *testing.T) {
		router, m := newLedgerRouter(t)

		m.incomeRepo.EXPECT().Delete(mock.Anything, uint64(1), uint64(5)).Return(nil).Once()

		w := doJSON(router, http.MethodDelete, "/income/5", signToken(t, "1"), "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Another user's budget row reads as not found", func(t *testing.T) {
		router, m := newLedgerRouter(t)

		m.budgetRepo.EXPECT().DeleteByID(mock.Anything, uint64(1), uint64(3)).Return(errs.ErrBudgetNotFound).Once()

		w := doJSON(router, http.MethodDelete, "/budgets/3", signToken(t, "1"), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
