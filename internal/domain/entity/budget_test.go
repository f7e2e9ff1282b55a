package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/moneymates/budget-ledger/internal/domain/error"
)

func TestNewBudget(t *testing.T) {
	t.Run("Successful creation", func(t *testing.T) {
		budget, err := NewBudget(1, "Food", "250.00")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), budget.UserID)
		assert.Equal(t, "Food", budget.Category)
		assert.Equal(t, int64(25000), budget.LimitCents)
		assert.Equal(t, "250.00", budget.Limit())
	})

	t.Run("Category is normalized", func(t *testing.T) {
		budget, err := NewBudget(1, " Rent ", "800")

		require.NoError(t, err)
		assert.Equal(t, "Rent", budget.Category)
	})

	t.Run("Zero limit allowed", func(t *testing.T) {
		budget, err := NewBudget(1, "Misc", "0")

		require.NoError(t, err)
		assert.Equal(t, int64(0), budget.LimitCents)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		budget, err := NewBudget(0, "Food", "100")

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Empty category", func(t *testing.T) {
		budget, err := NewBudget(1, "  ", "100")

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrEmptyCategory)
	})

	t.Run("Negative limit rejected", func(t *testing.T) {
		budget, err := NewBudget(1, "Food", "-100")

		assert.Nil(t, budget)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}
