package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aeropark/parking-system/internal/core/ports"
)

// RequireSession rejects requests whose bearer token is still valid but whose
// stored session record has been removed. Logout deletes that record, so this
// is what actually revokes an admin token before it expires.
func RequireSession(admin ports.AdminService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			loggedIn, err := admin.IsLoggedIn(c.Request().Context())
			if err != nil {
				return err
			}
			if !loggedIn {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			username, _ := c.Get("username").(string)
			session, err := admin.CurrentSession(c.Request().Context())
			if err != nil {
				return err
			}
			if session == nil || session.Username != username {
				return echo.NewHTTPError(http.StatusUnauthorized, "session does not match token")
			}

			return next(c)
		}
	}
}
