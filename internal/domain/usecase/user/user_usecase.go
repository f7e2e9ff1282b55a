package user

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/moneymates/budget-ledger/internal/domain/entity"
	errs "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/domain/port/persistence"
	"github.com/moneymates/budget-ledger/internal/domain/port/usecase"
)

// minPasswordLength is the basic password policy applied at signup
const minPasswordLength = 6

// UserUseCase implements account signup, login and first-login tracking.
// Credentials are stored as bcrypt hashes; login issues an HS256 session
// token whose subject is the user ID.
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	tokenSecret  []byte
	tokenTTL     time.Duration
}

// NewUserUseCase creates a user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	tokenSecret []byte,
	tokenTTL time.Duration,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
		tokenSecret:  tokenSecret,
		tokenTTL:     tokenTTL,
	}
}

// Signup registers a new user. The email must not be registered already and
// the password is hashed before it touches persistence.
func (u *UserUseCase) Signup(ctx context.Context, name, email, password string) (*usecase.UserSummary, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, errs.ErrMissingField
	}
	if len(password) < minPasswordLength {
		return nil, errs.ErrMissingField
	}

	// Pre-check the email; the unique index catches the race
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.ErrDuplicateEmail
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(name, email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User signed up", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})

	return &usecase.UserSummary{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		IsFirstLogin: user.IsFirstLogin,
	}, nil
}

// Login verifies the credential and issues a session token. Unknown email and
// wrong password both surface as ErrInvalidCredentials.
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		u.logger.Warn("Login rejected", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := u.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &usecase.LoginResult{
		User: usecase.UserSummary{
			UserID:       user.ID,
			Name:         user.Name,
			Email:        user.Email,
			IsFirstLogin: user.IsFirstLogin,
		},
		Token: token,
	}, nil
}

// CompleteFirstLogin clears the user's first-login flag
func (u *UserUseCase) CompleteFirstLogin(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.IsFirstLogin {
		return nil
	}

	user.CompleteFirstLogin(u.timeProvider)
	return u.userRepo.Update(ctx, user)
}

// issueToken signs an HS256 token with the user ID as subject
func (u *UserUseCase) issueToken(userID uint64) (string, error) {
	now := u.timeProvider.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.tokenSecret)
}
