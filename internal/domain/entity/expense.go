package entity

import (
	"time"

	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
)

// Expense represents a single spend record. The category is a free-text label
// matched against budget rows by exact string equality. The optional bill
// image travels as an opaque base64 blob and is stored verbatim.
type Expense struct {
	ID              uint64    // Unique identifier
	UserID          uint64    // Owning user
	Category        string    // Normalized free-text category label
	AmountCents     int64     // Amount in cents, always > 0
	DateAdded       time.Time // Defaults to creation time
	BillImageBase64 string    // Optional attached bill photo, base64-encoded
}

// NewExpense creates an expense record. The amount must be strictly positive
// and the category non-empty after normalization. Budget limits are advisory
// ceilings and are deliberately not checked here.
func NewExpense(userID uint64, category, amount, billImageBase64 string, timeProvider coreport.TimeProvider) (*Expense, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	category = NormalizeCategory(category)
	if category == "" {
		return nil, errs.ErrEmptyCategory
	}

	amountCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountCents == 0 {
		return nil, errs.ErrNonPositiveAmount
	}

	return &Expense{
		UserID:          userID,
		Category:        category,
		AmountCents:     amountCents,
		DateAdded:       timeProvider.Now(),
		BillImageBase64: billImageBase64,
	}, nil
}

// Amount returns the amount formatted with two decimal places
func (e *Expense) Amount() string {
	return AmountInCentsToString(e.AmountCents)
}
