package model

// Budget represents the database model for per-category budget limits.
// The composite unique index enforces one row per (user, category).
type Budget struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"uniqueIndex:idx_budgets_user_category;not null"`
	Category   string `gorm:"uniqueIndex:idx_budgets_user_category;not null"`
	LimitCents int64  `gorm:"not null"` // Limit in cents
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}
