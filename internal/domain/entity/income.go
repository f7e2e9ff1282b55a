package entity

import (
	"strings"
	"time"

	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
)

// Income represents a single income record. Income rows are created and
// deleted, never updated.
type Income struct {
	ID          uint64    // Unique identifier
	UserID      uint64    // Owning user
	AmountCents int64     // Amount in cents
	Source      string    // Free-text description of where the money came from
	DateAdded   time.Time // Defaults to creation time
}

// NewIncome creates an income record with a non-negative amount and a
// non-blank source.
func NewIncome(userID uint64, amount, source string, timeProvider coreport.TimeProvider) (*Income, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errs.ErrMissingField
	}

	amountCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Income{
		UserID:      userID,
		AmountCents: amountCents,
		Source:      source,
		DateAdded:   timeProvider.Now(),
	}, nil
}

// Amount returns the amount formatted with two decimal places
func (i *Income) Amount() string {
	return AmountInCentsToString(i.AmountCents)
}
