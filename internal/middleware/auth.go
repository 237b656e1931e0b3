package middleware

import (
	"net/http"
	"strings"

	"github.com/costeratours/experience-service/internal/auth"
	"github.com/labstack/echo/v4"
)

const userContextKey = "auth.user"

// requireRole validates the Bearer token and checks the decoded user against
// allow: 401 for a missing or invalid token, 403 when the role is rejected.
func requireRole(secret, forbiddenMsg string, allow func(auth.User) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header required")
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
			}

			user, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !allow(user) {
				return echo.NewHTTPError(http.StatusForbidden, forbiddenMsg)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireAdmin admits admins only. Booking administration stays behind it.
func RequireAdmin(secret string) echo.MiddlewareFunc {
	return requireRole(secret, "admin role required", auth.IsAdmin)
}

// RequireContentManager admits admins and editors for catalog content routes.
func RequireContentManager(secret string) echo.MiddlewareFunc {
	return requireRole(secret, "content management role required", auth.CanManageContent)
}

// CurrentUser returns the authenticated user set by the auth middleware.
func CurrentUser(c echo.Context) (auth.User, bool) {
	u, ok := c.Get(userContextKey).(auth.User)
	return u, ok
}
