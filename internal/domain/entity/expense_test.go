package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coremocks "github.com/moneymates/budget-ledger/mocks/port/core"
)

func TestNewExpense(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		expense, err := NewExpense(1, "Food", "25.50", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), expense.UserID)
		assert.Equal(t, "Food", expense.Category)
		assert.Equal(t, int64(2550), expense.AmountCents)
		assert.Equal(t, "25.50", expense.Amount())
		assert.Equal(t, fixedTime, expense.DateAdded)
		assert.Empty(t, expense.BillImageBase64)
	})

	t.Run("Category is normalized", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		expense, err := NewExpense(1, "  Food  ", "10", "", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Food", expense.Category)
	})

	t.Run("Bill image stored verbatim", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		blob := "iVBORw0KGgoAAAANSUhEUg=="
		expense, err := NewExpense(1, "Food", "10", blob, mockTime)

		require.NoError(t, err)
		assert.Equal(t, blob, expense.BillImageBase64)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		expense, err := NewExpense(0, "Food", "10", "", mockTime)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Empty category", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		expense, err := NewExpense(1, "   ", "10", "", mockTime)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, errs.ErrEmptyCategory)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		expense, err := NewExpense(1, "Food", "0.00", "", mockTime)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, errs.ErrNonPositiveAmount)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		expense, err := NewExpense(1, "Food", "-5.00", "", mockTime)

		assert.Nil(t, expense)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}
