package dto

import (
	"time"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
)

// ExpenseRequest represents the API request for recording an expense.
// BillImageBase64 is an opaque encoded blob carried inside the JSON payload.
type ExpenseRequest struct {
	UserID          uint64 `json:"userId" binding:"required"`
	Category        string `json:"category" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	BillImageBase64 string `json:"billImageBase64"`
}

// ExpenseResponse represents the API response for an expense row
type ExpenseResponse struct {
	ID              uint64    `json:"id"`
	UserID          uint64    `json:"userId"`
	Category        string    `json:"category"`
	Amount          string    `json:"amount"`
	DateAdded       time.Time `json:"dateAdded"`
	BillImageBase64 string    `json:"billImageBase64,omitempty"`
}

// NewExpenseResponse maps an expense entity to its API shape
func NewExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		Category:        e.Category,
		Amount:          e.Amount(),
		DateAdded:       e.DateAdded,
		BillImageBase64: e.BillImageBase64,
	}
}

// NewExpenseResponses maps a slice of expense entities
func NewExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, NewExpenseResponse(e))
	}
	return responses
}
