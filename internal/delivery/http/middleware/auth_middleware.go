package middleware

import (
	"strings"

	"userhub/internal/delivery/http/response"
	"userhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyUserID = "userID"

// AuthMiddleware validates the bearer access token on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's user ID
// on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(keyUserID, userID)

		return next(c)
	}
}

// GetUserID returns the authenticated caller's user ID set by Authenticate.
func GetUserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(keyUserID).(uint)

	return userID, ok
}
