package identity

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Header carries the caller identity on every route except /users.
const Header = "X-Sharer-User-Id"

const contextKey = "user_id"

// Middleware rejects requests without a usable identity header and stores
// the parsed id in the request context.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(Header)
			if raw == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error": "missing required header: " + Header,
				})
			}
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{
					"error": "invalid " + Header + " header",
				})
			}
			c.Set(contextKey, id)
			return next(c)
		}
	}
}

// UserID reads the caller id stored by Middleware.
func UserID(c echo.Context) int64 {
	id, _ := c.Get(contextKey).(int64)
	return id
}
