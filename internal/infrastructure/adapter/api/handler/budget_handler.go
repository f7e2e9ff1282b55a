package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/dto"
)

// BudgetHandler handles the raw budget-row endpoints
type BudgetHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *BudgetHandler {
	return &BudgetHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// AddBudget handles the POST /budgets endpoint
func (h *BudgetHandler) AddBudget(c *gin.Context) {
	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if !requireBodyOwner(c, req.UserID) {
		return
	}

	budget, err := h.ledgerUseCase.AddBudget(c.Request.Context(), req.UserID, req.Category, req.Limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// ListBudgets handles the GET /budgets/{userId} endpoint
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	budgets, err := h.ledgerUseCase.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponses(budgets))
}

// DeleteBudget handles the DELETE /budgets/{budgetId} endpoint. The delete
// runs as the authenticated user, so another user's row reads as not found.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	budgetID, ok := parseIDParam(c, "budgetId")
	if !ok {
		return
	}

	if err := h.ledgerUseCase.DeleteBudget(c.Request.Context(), authUserID(c), budgetID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted."})
}
