// File: internal/handler/auth/logout.go
package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 清除 session cookie；JWT 本身無狀態，到期前仍然有效
// @Summary     登出
// @Tags        auth
// @Success     204
// @Router      /auth/logout [post]
func LogoutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(sessionCookie(c, "", time.Time{}))
		return c.NoContent(http.StatusNoContent)
	}
}
