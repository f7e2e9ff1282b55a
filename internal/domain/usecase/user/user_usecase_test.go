package user

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coremocks "github.com/moneymates/budget-ledger/mocks/port/core"
	persistencemocks "github.com/moneymates/budget-ledger/mocks/port/persistence"
)

var testTokenSecret = []byte("test-secret")

type userMocks struct {
	userRepo *persistencemocks.MockUserRepository
	timeMock *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newUserUseCaseWithMocks(t *testing.T) (*UserUseCase, userMocks) {
	m := userMocks{
		userRepo: persistencemocks.NewMockUserRepository(t),
		timeMock: coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc := NewUserUseCase(m.userRepo, m.timeMock, m.logger, testTokenSecret, 24*time.Hour).(*UserUseCase)
	return uc, m
}

func hashPassword(t *testing.T, password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful signup stores a hash, not the password", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" &&
				u.IsFirstLogin &&
				bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("secret123")) == nil
		})).Run(func(ctx context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()

		summary, err := uc.Signup(ctx, "Alice", "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), summary.UserID)
		assert.Equal(t, "Alice", summary.Name)
		assert.True(t, summary.IsFirstLogin)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(&entity.User{ID: 1}, nil).Once()

		summary, err := uc.Signup(ctx, "Alice", "alice@example.com", "secret123")

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("Missing or weak input", func(t *testing.T) {
		uc, _ := newUserUseCaseWithMocks(t)

		testCases := []struct {
			name     string
			uname    string
			email    string
			password string
		}{
			{"Blank name", " ", "alice@example.com", "secret123"},
			{"Blank email", "Alice", "", "secret123"},
			{"Empty password", "Alice", "alice@example.com", ""},
			{"Short password", "Alice", "alice@example.com", "abc"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				summary, err := uc.Signup(ctx, tc.uname, tc.email, tc.password)
				assert.Nil(t, summary)
				assert.ErrorIs(t, err, errs.ErrMissingField)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	t.Run("Successful login issues a token with the user ID subject", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		stored := &entity.User{
			ID:           42,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: hashPassword(t, "secret123"),
			IsFirstLogin: true,
		}
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil).Once()
		m.timeMock.EXPECT().Now().Return(fixedTime).Once()

		result, err := uc.Login(ctx, "alice@example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), result.User.UserID)
		assert.True(t, result.User.IsFirstLogin)
		require.NotEmpty(t, result.Token)

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(result.Token, claims, func(t *jwt.Token) (interface{}, error) {
			return testTokenSecret, nil
		}, jwt.WithTimeFunc(func() time.Time { return fixedTime }))
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, "42", claims.Subject)
		assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("Wrong password", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		stored := &entity.User{
			ID:           42,
			Email:        "alice@example.com",
			PasswordHash: hashPassword(t, "secret123"),
		}
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil).Once()

		result, err := uc.Login(ctx, "alice@example.com", "wrong-password")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Unknown email looks identical to a wrong password", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		result, err := uc.Login(ctx, "ghost@example.com", "secret123")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Blank credentials", func(t *testing.T) {
		uc, _ := newUserUseCaseWithMocks(t)

		result, err := uc.Login(ctx, "", "secret123")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)

		result, err = uc.Login(ctx, "alice@example.com", "")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestCompleteFirstLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)

	t.Run("Clears the flag and persists", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		stored := &entity.User{ID: 42, IsFirstLogin: true}
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(stored, nil).Once()
		m.timeMock.EXPECT().Now().Return(fixedTime).Once()
		m.userRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 42 && !u.IsFirstLogin
		})).Return(nil).Once()

		require.NoError(t, uc.CompleteFirstLogin(ctx, 42))
	})

	t.Run("Already completed is a no-op", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		stored := &entity.User{ID: 42, IsFirstLogin: false}
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(stored, nil).Once()

		require.NoError(t, uc.CompleteFirstLogin(ctx, 42))
	})

	t.Run("Unknown user", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		err := uc.CompleteFirstLogin(ctx, 99)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		uc, _ := newUserUseCaseWithMocks(t)

		err := uc.CompleteFirstLogin(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
