package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/middleware"
)

// authUserID returns the token subject stored by the auth middleware
func authUserID(c *gin.Context) uint64 {
	return c.GetUint64(middleware.AuthUserIDKey)
}

// requireBodyOwner rejects a write whose payload names a user other than the
// token subject. The middleware enforces ownership on {userId} path segments;
// this closes the same gap for a userId carried in the request body.
func requireBodyOwner(c *gin.Context, userID uint64) bool {
	if userID != authUserID(c) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidCredentials,
			Message: "Token does not match requested user",
		})
		return false
	}
	return true
}

// parseIDParam extracts a positive numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidUserID,
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}

// respondBadRequest rejects an unparseable or invalid request body
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

// respondError maps domain errors to HTTP status codes. Validation problems
// are client errors, rule rejections map to 422, and anything unrecognized
// surfaces as a generic 500 without leaking internals.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case domainerr.IsValidationError(err):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = err.Error()
	case domainerr.IsNotFoundError(err):
		statusCode = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domainerr.ErrDuplicateEmail),
		errors.Is(err, domainerr.ErrDuplicateBudget):
		statusCode = http.StatusConflict
		message = err.Error()
	case domainerr.IsLimitBelowSpendError(err),
		domainerr.IsBudgetExceedsBalanceError(err):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	default:
		logger.Error("Unhandled error in API request", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
