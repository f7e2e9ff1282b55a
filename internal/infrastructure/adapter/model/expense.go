package model

import (
	"time"
)

// Expense represents the database model for expense records
type Expense struct {
	ID              uint64    `gorm:"primaryKey"`
	UserID          uint64    `gorm:"index:idx_expenses_user_category;not null"`
	Category        string    `gorm:"index:idx_expenses_user_category;not null"`
	AmountCents     int64     `gorm:"not null"` // Amount in cents
	DateAdded       time.Time `gorm:"index;not null"`
	BillImageBase64 string    `gorm:"type:text"` // Opaque encoded bill photo, optional
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
