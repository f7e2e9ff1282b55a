package dto

import "github.com/moneymates/budget-ledger/internal/domain/entity"

// BudgetRequest represents the API request for creating a raw budget row
type BudgetRequest struct {
	UserID   uint64 `json:"userId" binding:"required"`
	Category string `json:"category" binding:"required"`
	Limit    string `json:"limit" binding:"required"`
}

// BudgetResponse represents the API response for a budget row
type BudgetResponse struct {
	ID       uint64 `json:"id"`
	UserID   uint64 `json:"userId"`
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

// NewBudgetResponse maps a budget entity to its API shape
func NewBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       b.ID,
		UserID:   b.UserID,
		Category: b.Category,
		Limit:    b.Limit(),
	}
}

// NewBudgetResponses maps a slice of budget entities
func NewBudgetResponses(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		responses = append(responses, NewBudgetResponse(b))
	}
	return responses
}

// CategoryLimitRequest represents the API request for upserting a category limit
type CategoryLimitRequest struct {
	NewLimit string `json:"newLimit" binding:"required"`
}

// CategorySummaryResponse pairs a category limit with its current spend
type CategorySummaryResponse struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Used     string `json:"used"`
}
