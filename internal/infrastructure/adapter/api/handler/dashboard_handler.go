package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/dto"
)

// DashboardHandler handles the aggregate dashboard endpoints
type DashboardHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *DashboardHandler {
	return &DashboardHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// Totals handles the GET /dashboard/totals/{userId} endpoint
func (h *DashboardHandler) Totals(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	totals, err := h.ledgerUseCase.ComputeTotals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.TotalsResponse{
		TotalBalance:  totals.TotalBalance,
		TotalIncome:   totals.TotalIncome,
		TotalExpenses: totals.TotalExpenses,
		TotalSavings:  totals.TotalSavings,
	})
}

// MonthlySeries handles the GET /dashboard/spending/{userId} endpoint
func (h *DashboardHandler) MonthlySeries(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	series, err := h.ledgerUseCase.ComputeMonthlySeries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.MonthlySpendingResponse, 0, len(series))
	for _, entry := range series {
		responses = append(responses, dto.MonthlySpendingResponse{
			Month:   entry.Month,
			Income:  entry.Income,
			Expense: entry.Expense,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// CategoryBreakdown handles the GET /dashboard/categories/{userId} endpoint
func (h *DashboardHandler) CategoryBreakdown(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	breakdown, err := h.ledgerUseCase.CategoryBreakdown(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.CategoryValueResponse, 0, len(breakdown))
	for _, entry := range breakdown {
		responses = append(responses, dto.CategoryValueResponse{
			Name:  entry.Name,
			Value: entry.Value,
		})
	}

	c.JSON(http.StatusOK, responses)
}
