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

// IncomeRepository implements the IncomeRepository port using GORM
type IncomeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewIncomeRepository creates a new IncomeRepository instance
func NewIncomeRepository(db *gorm.DB, logger coreport.Logger) *IncomeRepository {
	return &IncomeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an income model to an entity
func (r *IncomeRepository) modelToEntity(incomeModel *model.Income) *entity.Income {
	return &entity.Income{
		ID:          incomeModel.ID,
		UserID:      incomeModel.UserID,
		AmountCents: incomeModel.AmountCents,
		Source:      incomeModel.Source,
		DateAdded:   incomeModel.DateAdded,
	}
}

// handleDatabaseError standardizes database error handling
func (r *IncomeRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create persists a new income record and assigns its ID
func (r *IncomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.Income{
		UserID:      income.UserID,
		AmountCents: income.AmountCents,
		Source:      income.Source,
		DateAdded:   income.DateAdded,
	}

	result := r.db.WithContext(ctx).Create(&incomeModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating income", result.Error)
	}

	income.ID = incomeModel.ID
	return nil
}

// ListByUser returns all income records for a user, newest first
func (r *IncomeRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Income, error) {
	var incomeModels []model.Income
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_added DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing income", result.Error)
	}

	incomes := make([]*entity.Income, 0, len(incomeModels))
	for i := range incomeModels {
		incomes = append(incomes, r.modelToEntity(&incomeModels[i]))
	}
	return incomes, nil
}

// SumByUser returns the total income for a user in cents
func (r *IncomeRepository) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&model.Income{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, r.handleDatabaseError("summing income", result.Error)
	}
	return total, nil
}

// Delete removes one of a user's income records by ID. The user scope means
// a row belonging to someone else matches nothing and reads as not found.
func (r *IncomeRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Income{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errs.ErrIncomeNotFound
		}
		return r.handleDatabaseError("deleting income", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrIncomeNotFound
	}
	return nil
}
