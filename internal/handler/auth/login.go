// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"care-companion/internal/api"
	"care-companion/internal/apperr"
	"care-companion/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT，同時寫入 session cookie
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與到期時間
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(svc Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperr.Validation("Invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, apperr.Validation(api.ValidationMessage(err)))
		}

		res, err := svc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return api.WriteError(c, err)
		}

		c.SetCookie(sessionCookie(c, res.Token, res.ExpiresAt))
		expiresAt := res.ExpiresAt
		return c.JSON(http.StatusOK, api.AuthResponse{
			User:      api.NewUserResponse(res.User),
			Token:     res.Token,
			ExpiresAt: &expiresAt,
		})
	}
}

// sessionCookie value 為空時產生立即過期的 cookie
func sessionCookie(c echo.Context, value string, expiresAt time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		return cookie
	}
	cookie.Expires = expiresAt
	cookie.MaxAge = int(time.Until(expiresAt).Seconds())
	return cookie
}
