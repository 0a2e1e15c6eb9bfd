package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/airbean/order-system/internal/core/token"
)

// TokenParser validates a raw token string and returns its claims.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// Auth authenticates the request's bearer token and injects the claims into
// context. A missing or garbled Authorization header is 401; a token that is
// present but fails signature or expiry checks is 403. Authentication always
// runs before any role check — downstream middleware reads only the claims
// set here.
func Auth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			// "Bearer " with nothing after it is an absent token, not a bad one.
			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			claims, err := parser.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set("username", claims.Username)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
