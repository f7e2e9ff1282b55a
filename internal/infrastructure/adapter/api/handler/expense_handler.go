package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/dto"
)

// ExpenseHandler handles the expense endpoints
type ExpenseHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewExpenseHandler creates a new expense handler instance
func NewExpenseHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// RecordExpense handles the POST /expenses endpoint
func (h *ExpenseHandler) RecordExpense(c *gin.Context) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if !requireBodyOwner(c, req.UserID) {
		return
	}

	expense, err := h.ledgerUseCase.RecordExpense(c.Request.Context(), req.UserID, req.Category, req.Amount, req.BillImageBase64)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseResponse(expense))
}

// ListExpenses handles the GET /expenses/{userId} endpoint
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	expenses, err := h.ledgerUseCase.ListExpenses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseResponses(expenses))
}

// RecentExpenses handles the GET /expenses/recent/{userId} endpoint
func (h *ExpenseHandler) RecentExpenses(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	expenses, err := h.ledgerUseCase.RecentExpenses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseResponses(expenses))
}

// CategoryExpenses handles the GET /categories/{userId}/{category}/expenses endpoint
func (h *ExpenseHandler) CategoryExpenses(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	expenses, err := h.ledgerUseCase.CategoryExpenses(c.Request.Context(), userID, c.Param("category"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewExpenseResponses(expenses))
}

// DeleteExpense handles the DELETE /expenses/{expenseId} endpoint. The
// delete runs as the authenticated user, so another user's expense reads
// as not found.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, ok := parseIDParam(c, "expenseId")
	if !ok {
		return
	}

	if err := h.ledgerUseCase.DeleteExpense(c.Request.Context(), authUserID(c), expenseID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted."})
}
