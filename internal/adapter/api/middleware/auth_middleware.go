package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"arunika/internal/infrastructure/firebase"
)

type AuthMiddleware struct {
	authClient *firebase.FirebaseAuthClient
}

func NewAuthMiddleware(authClient *firebase.FirebaseAuthClient) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		uid, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", uid)

		return next(c)
	}
}
