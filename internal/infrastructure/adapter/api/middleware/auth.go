package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	domainerr "github.com/moneymates/budget-ledger/internal/domain/error"
	coreport "github.com/moneymates/budget-ledger/internal/domain/port/core"
	"github.com/moneymates/budget-ledger/internal/infrastructure/adapter/api/dto"
)

// AuthUserIDKey is the gin context key holding the authenticated user ID.
// Handlers read it to enforce ownership on writes that carry the user in the
// request body and on deletes that resolve by bare row ID.
const AuthUserIDKey = "authUserID"

// RequireAuth validates the Bearer token issued at login. When the route has
// a {userId} path segment the token subject must match it, so one user's
// token cannot read another user's data.
func RequireAuth(tokenSecret []byte, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "Missing bearer token",
			})
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return tokenSecret, nil
		})
		if err != nil || !token.Valid {
			logger.Warn("Rejected invalid token", map[string]any{
				"path": c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "Invalid or expired token",
			})
			return
		}

		authUserID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || authUserID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.CodeInvalidCredentials,
				Message: "Invalid token subject",
			})
			return
		}

		if pathUserID := c.Param("userId"); pathUserID != "" {
			if pathUserID != claims.Subject {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
					Code:    domainerr.CodeInvalidCredentials,
					Message: "Token does not match requested user",
				})
				return
			}
		}

		c.Set(AuthUserIDKey, authUserID)
		c.Next()
	}
}
