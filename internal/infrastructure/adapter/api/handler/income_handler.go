package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/dto"
)

// IncomeHandler handles the income endpoints
type IncomeHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewIncomeHandler creates a new income handler instance
func NewIncomeHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *IncomeHandler {
	return &IncomeHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// AddIncome handles the POST /income endpoint
func (h *IncomeHandler) AddIncome(c *gin.Context) {
	var req dto.IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	if !requireBodyOwner(c, req.UserID) {
		return
	}

	income, err := h.ledgerUseCase.AddIncome(c.Request.Context(), req.UserID, req.Amount, req.Source)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIncomeResponse(income))
}

// ListIncome handles the GET /income/{userId} endpoint
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	incomes, err := h.ledgerUseCase.ListIncome(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIncomeResponses(incomes))
}

// TotalIncome handles the GET /income/total/{userId} endpoint
func (h *IncomeHandler) TotalIncome(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	total, err := h.ledgerUseCase.TotalIncome(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TotalIncomeResponse{TotalIncome: total})
}

// DeleteIncome handles the DELETE /income/{incomeId} endpoint. The delete
// runs as the authenticated user, so another user's record reads as not found.
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	incomeID, ok := parseIDParam(c, "incomeId")
	if !ok {
		return
	}

	if err := h.ledgerUseCase.DeleteIncome(c.Request.Context(), authUserID(c), incomeID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Income deleted."})
}
