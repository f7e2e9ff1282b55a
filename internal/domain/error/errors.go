package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount        = 4001
	CodeInvalidUserID        = 4002
	CodeMissingField         = 4003
	CodeInvalidCredentials   = 4011
	CodeUserNotFound         = 4040
	CodeBudgetNotFound       = 4041
	CodeExpenseNotFound      = 4042
	CodeIncomeNotFound       = 4043
	CodeDuplicateEmail       = 4091
	CodeDuplicateBudget      = 4092
	CodeLimitBelowSpend      = 4221
	CodeBudgetExceedsBalance = 4222

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount string cannot be parsed as money
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrNonPositiveAmount is returned when an expense amount is zero or negative
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrEmptyCategory is returned when a category name is empty after trimming
	ErrEmptyCategory = errors.New("category cannot be empty")

	// ErrMissingField is returned when a required field is absent or blank
	ErrMissingField = errors.New("required field is missing")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrBudgetNotFound is returned when no budget row matches the id or category
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrExpenseNotFound is returned when the requested expense doesn't exist
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrIncomeNotFound is returned when the requested income record doesn't exist
	ErrIncomeNotFound = errors.New("income record not found")

	// ErrDuplicateEmail is returned on signup with an email that is already registered
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateBudget is returned when a budget row for the same user and
	// category already exists
	ErrDuplicateBudget = errors.New("budget for this category already exists")

	// ErrInvalidCredentials is returned when login email/password don't match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrLimitBelowSpend is returned when a category limit is set below the
	// amount already spent in that category
	ErrLimitBelowSpend = errors.New("limit is below current category spend")

	// ErrBudgetExceedsBalance is returned when the sum of category limits would
	// exceed the user's balance
	ErrBudgetExceedsBalance = errors.New("total category limits exceed balance")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrNonPositiveAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrEmptyCategory), errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrBudgetNotFound):
		return CodeBudgetNotFound
	case errors.Is(err, ErrExpenseNotFound):
		return CodeExpenseNotFound
	case errors.Is(err, ErrIncomeNotFound):
		return CodeIncomeNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrDuplicateBudget):
		return CodeDuplicateBudget
	case errors.Is(err, ErrLimitBelowSpend):
		return CodeLimitBelowSpend
	case errors.Is(err, ErrBudgetExceedsBalance):
		return CodeBudgetExceedsBalance
	default:
		return CodeInternalServer
	}
}

// LimitBelowSpendError carries the minimum limit a category will accept
type LimitBelowSpendError struct {
	Category       string
	RequestedCents int64
	UsedCents      int64
}

// Error implements the error interface
func (e *LimitBelowSpendError) Error() string {
	return fmt.Sprintf("limit for category %q is below current spend: minimum allowed is %d cents, requested %d cents",
		e.Category, e.UsedCents, e.RequestedCents)
}

// Is checks if the target error is an ErrLimitBelowSpend
func (e *LimitBelowSpendError) Is(target error) bool {
	return target == ErrLimitBelowSpend
}

// LogFields returns a map of fields for structured logging
func (e *LimitBelowSpendError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "limit_below_spend",
		"category":        e.Category,
		"requested_cents": e.RequestedCents,
		"used_cents":      e.UsedCents,
		"error_code":      CodeLimitBelowSpend,
	}
}

// NewLimitBelowSpendError creates a detailed limit-below-spend error
func NewLimitBelowSpendError(category string, requestedCents, usedCents int64) error {
	return &LimitBelowSpendError{
		Category:       category,
		RequestedCents: requestedCents,
		UsedCents:      usedCents,
	}
}

// BudgetExceedsBalanceError carries how much budget headroom the user has left
type BudgetExceedsBalanceError struct {
	Category       string
	RequestedCents int64
	AvailableCents int64
}

// Error implements the error interface
func (e *BudgetExceedsBalanceError) Error() string {
	return fmt.Sprintf("limit for category %q exceeds remaining balance: %d cents available, requested %d cents",
		e.Category, e.AvailableCents, e.RequestedCents)
}

// Is checks if the target error is an ErrBudgetExceedsBalance
func (e *BudgetExceedsBalanceError) Is(target error) bool {
	return target == ErrBudgetExceedsBalance
}

// LogFields returns a map of fields for structured logging
func (e *BudgetExceedsBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "budget_exceeds_balance",
		"category":        e.Category,
		"requested_cents": e.RequestedCents,
		"available_cents": e.AvailableCents,
		"error_code":      CodeBudgetExceedsBalance,
	}
}

// NewBudgetExceedsBalanceError creates a detailed over-balance error
func NewBudgetExceedsBalanceError(category string, requestedCents, availableCents int64) error {
	return &BudgetExceedsBalanceError{
		Category:       category,
		RequestedCents: requestedCents,
		AvailableCents: availableCents,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrBudgetNotFound) ||
		errors.Is(err, ErrExpenseNotFound) ||
		errors.Is(err, ErrIncomeNotFound)
}

// IsValidationError checks if the error comes from rejected input rather than
// a missing resource or an infrastructure failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrNonPositiveAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrEmptyCategory) ||
		errors.Is(err, ErrMissingField)
}

// IsLimitBelowSpendError checks if the error is a limit-below-spend rejection
func IsLimitBelowSpendError(err error) bool {
	return errors.Is(err, ErrLimitBelowSpend)
}

// IsBudgetExceedsBalanceError checks if the error is an over-balance rejection
func IsBudgetExceedsBalanceError(err error) bool {
	return errors.Is(err, ErrBudgetExceedsBalance)
}
