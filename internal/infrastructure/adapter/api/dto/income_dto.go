package dto

import (
	"time"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
)

// IncomeRequest represents the API request for recording income
type IncomeRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Source string `json:"source" binding:"required"`
}

// IncomeResponse represents the API response for an income row
type IncomeResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Amount    string    `json:"amount"`
	Source    string    `json:"source"`
	DateAdded time.Time `json:"dateAdded"`
}

// NewIncomeResponse maps an income entity to its API shape
func NewIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:        i.ID,
		UserID:    i.UserID,
		Amount:    i.Amount(),
		Source:    i.Source,
		DateAdded: i.DateAdded,
	}
}

// NewIncomeResponses maps a slice of income entities
func NewIncomeResponses(incomes []*entity.Income) []IncomeResponse {
	responses := make([]IncomeResponse, 0, len(incomes))
	for _, i := range incomes {
		responses = append(responses, NewIncomeResponse(i))
	}
	return responses
}

// TotalIncomeResponse represents the API response for a user's income total
type TotalIncomeResponse struct {
	TotalIncome string `json:"totalIncome"`
}
