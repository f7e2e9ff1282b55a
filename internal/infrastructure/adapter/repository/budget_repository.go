package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BudgetRepository implements the BudgetRepository port using GORM.
// The unique index on (user_id, category) backs the one-row-per-pair invariant.
type BudgetRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a budget model to an entity
func (r *BudgetRepository) modelToEntity(budgetModel *model.Budget) *entity.Budget {
	return &entity.Budget{
		ID:         budgetModel.ID,
		UserID:     budgetModel.UserID,
		Category:   budgetModel.Category,
		LimitCents: budgetModel.LimitCents,
	}
}

// handleDatabaseError standardizes database error handling
func (r *BudgetRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateBudget
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new budget row and assigns its ID
func (r *BudgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.Budget{
		UserID:     budget.UserID,
		Category:   budget.Category,
		LimitCents: budget.LimitCents,
	}

	result := r.db.WithContext(ctx).Create(&budgetModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating budget", result.Error)
	}

	budget.ID = budgetModel.ID
	return nil
}

// ListByUser returns all budget rows for a user in insertion order
func (r *BudgetRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Budget, error) {
	var budgetModels []model.Budget
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing budgets", result.Error)
	}

	budgets := make([]*entity.Budget, 0, len(budgetModels))
	for i := range budgetModels {
		budgets = append(budgets, r.modelToEntity(&budgetModels[i]))
	}
	return budgets, nil
}

// GetByUserAndCategory returns the budget row for an exact category match
func (r *BudgetRepository) GetByUserAndCategory(ctx context.Context, userID uint64, category string) (*entity.Budget, error) {
	var budgetModel model.Budget
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBudgetNotFound
		}
		return nil, r.handleDatabaseError("getting budget", result.Error)
	}
	return r.modelToEntity(&budgetModel), nil
}

// UpdateLimit changes the limit of an existing budget row
func (r *BudgetRepository) UpdateLimit(ctx context.Context, budgetID uint64, limitCents int64) error {
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ?", budgetID).
		Update("limit_cents", limitCents)
	if result.Error != nil {
		return r.handleDatabaseError("updating budget limit", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}

// SumLimits returns the sum of all limits for a user in cents
func (r *BudgetRepository) SumLimits(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(limit_cents), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing budget limits", result.Error)
	}
	return total, nil
}

// DeleteByID removes one of a user's budget rows by ID. The user scope means
// a row belonging to someone else matches nothing and reads as not found.
func (r *BudgetRepository) DeleteByID(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Budget{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}

// DeleteByUserAndCategory removes the budget row for a (user, category) pair
func (r *BudgetRepository) DeleteByUserAndCategory(ctx context.Context, userID uint64, category string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Delete(&model.Budget{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting category budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}
