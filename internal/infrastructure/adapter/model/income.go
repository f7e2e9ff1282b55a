package model

import (
	"time"
)

// Income represents the database model for income records
type Income struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"index;not null"`
	AmountCents int64     `gorm:"not null"` // Amount in cents
	Source      string    `gorm:"not null"`
	DateAdded   time.Time `gorm:"index;not null"`
}

// TableName specifies the table name for Income
func (Income) TableName() string {
	return "income"
}
