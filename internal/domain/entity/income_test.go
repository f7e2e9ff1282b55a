package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coremocks "github.com/moneymates/budget-ledger/mocks/port/core"
)

func TestNewIncome(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		income, err := NewIncome(1, "1000.00", "Salary", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), income.UserID)
		assert.Equal(t, int64(100000), income.AmountCents)
		assert.Equal(t, "1000.00", income.Amount())
		assert.Equal(t, "Salary", income.Source)
		assert.Equal(t, fixedTime, income.DateAdded)
	})

	t.Run("Zero amount allowed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		income, err := NewIncome(1, "0", "Adjustment", mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), income.AmountCents)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		income, err := NewIncome(0, "100", "Salary", mockTime)

		assert.Nil(t, income)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Blank source", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		income, err := NewIncome(1, "100", "  ", mockTime)

		assert.Nil(t, income)
		assert.ErrorIs(t, err, errs.ErrMissingField)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		income, err := NewIncome(1, "-100", "Salary", mockTime)

		assert.Nil(t, income)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}
