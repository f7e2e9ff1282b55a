package repository

import (
	"context"
	"fmt"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ExpenseRepository implements the ExpenseRepository port using GORM
type ExpenseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewExpenseRepository creates a new ExpenseRepository instance
func NewExpenseRepository(db *gorm.DB, logger coreport.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an expense model to an entity
func (r *ExpenseRepository) modelToEntity(expenseModel *model.Expense) *entity.Expense {
	return &entity.Expense{
		ID:              expenseModel.ID,
		UserID:          expenseModel.UserID,
		Category:        expenseModel.Category,
		AmountCents:     expenseModel.AmountCents,
		DateAdded:       expenseModel.DateAdded,
		BillImageBase64: expenseModel.BillImageBase64,
	}
}

// modelsToEntities converts a slice of expense models
func (r *ExpenseRepository) modelsToEntities(expenseModels []model.Expense) []*entity.Expense {
	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, r.modelToEntity(&expenseModels[i]))
	}
	return expenses
}

// handleDatabaseError standardizes database error handling
func (r *ExpenseRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new expense and assigns its ID
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.Expense{
		UserID:          expense.UserID,
		Category:        expense.Category,
		AmountCents:     expense.AmountCents,
		DateAdded:       expense.DateAdded,
		BillImageBase64: expense.BillImageBase64,
	}

	result := r.db.WithContext(ctx).Create(&expenseModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating expense", result.Error)
	}

	expense.ID = expenseModel.ID
	return nil
}

// ListByUser returns all expenses for a user, newest first
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Expense, error) {
	var expenseModels []model.Expense
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_added DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing expenses", result.Error)
	}
	return r.modelsToEntities(expenseModels), nil
}

// ListRecent returns the most recent expenses for a user, capped at limit
func (r *ExpenseRepository) ListRecent(ctx context.Context, userID uint64, limit int) ([]*entity.Expense, error) {
	var expenseModels []model.Expense
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_added DESC").
		Limit(limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing recent expenses", result.Error)
	}
	return r.modelsToEntities(expenseModels), nil
}

// ListByCategory returns a user's expenses in one category, newest first
func (r *ExpenseRepository) ListByCategory(ctx context.Context, userID uint64, category string) ([]*entity.Expense, error) {
	var expenseModels []model.Expense
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Order("date_added DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing category expenses", result.Error)
	}
	return r.modelsToEntities(expenseModels), nil
}

// SumByUser returns the total expenses for a user in cents
func (r *ExpenseRepository) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing expenses", result.Error)
	}
	return total, nil
}

// SumByCategory returns the total spent by a user in one category in cents
func (r *ExpenseRepository) SumByCategory(ctx context.Context, userID uint64, category string) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("user_id = ? AND category = ?", userID, category).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing category expenses", result.Error)
	}
	return total, nil
}

// Delete removes one of a user's expenses by ID. The user scope means a row
// belonging to someone else matches nothing and reads as not found.
func (r *ExpenseRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Expense{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting expense", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrExpenseNotFound
	}
	return nil
}
