package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coremocks "github.com/moneymates/budget-ledger/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	hash := []byte("$2a$10$fakehashfortesting")

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser("Alice", "alice@example.com", hash, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, hash, user.PasswordHash)
		assert.True(t, user.IsFirstLogin)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Name and email trimmed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user, err := NewUser(" Alice ", " alice@example.com ", hash, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		testCases := []struct {
			name  string
			uname string
			email string
			hash  []byte
		}{
			{"Blank name", "  ", "alice@example.com", hash},
			{"Blank email", "Alice", "", hash},
			{"Empty hash", "Alice", "alice@example.com", nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				user, err := NewUser(tc.uname, tc.email, tc.hash, mockTime)
				assert.Nil(t, user)
				assert.ErrorIs(t, err, errs.ErrMissingField)
			})
		}
	})
}

func TestCompleteFirstLogin(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()

	user, err := NewUser("Alice", "alice@example.com", []byte("hash"), mockTime)
	require.NoError(t, err)
	require.True(t, user.IsFirstLogin)

	mockTime.EXPECT().Now().Return(later).Once()
	user.CompleteFirstLogin(mockTime)

	assert.False(t, user.IsFirstLogin)
	assert.Equal(t, later, user.UpdatedAt)
}
