package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/dto"
)

// CategoryHandler handles the per-category budget endpoints: summaries of
// limit vs. spend, limit upserts and category removal.
type CategoryHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// ListCategorySummaries handles the GET /categories/{userId} endpoint
func (h *CategoryHandler) ListCategorySummaries(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	summaries, err := h.ledgerUseCase.ListCategorySummaries(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.CategorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, dto.CategorySummaryResponse{
			Category: s.Category,
			Limit:    s.Limit,
			Used:     s.Used,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// SetCategoryLimit handles the PUT /categories/{userId}/{category} endpoint
func (h *CategoryHandler) SetCategoryLimit(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.CategoryLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	budget, err := h.ledgerUseCase.SetCategoryLimit(c.Request.Context(), userID, c.Param("category"), req.NewLimit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// DeleteCategory handles the DELETE /categories/{userId}/{category} endpoint
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.ledgerUseCase.DeleteCategory(c.Request.Context(), userID, c.Param("category")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted."})
}
