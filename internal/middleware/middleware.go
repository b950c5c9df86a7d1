package middleware

import (
	"net/http"
	"strings"

	"care-companion/internal/apperr"
	"care-companion/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// ContextSessionKey RequireAuth 將 *service.Session 存在 echo context 的 key
	ContextSessionKey = "session"
	// SessionCookieName 登入後下發的 cookie 名稱
	SessionCookieName = "session"
)

// Credentials 依序回傳 session cookie 與 Authorization: Bearer 中的憑證，空值略過
func Credentials(r *http.Request) []string {
	var creds []string
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		creds = append(creds, cookie.Value)
	}
	if bearer := bearerToken(r.Header.Get("Authorization")); bearer != "" {
		creds = append(creds, bearer)
	}
	return creds
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth 驗證憑證並把 session 放進 context，失敗一律回 401
// cookie 過期時仍會嘗試 Bearer token
func RequireAuth(tokens service.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, credential := range Credentials(c.Request()) {
				sess, err := tokens.Verify(credential)
				if err != nil {
					continue
				}
				c.Set(ContextSessionKey, sess)
				return next(c)
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
	}
}

// SessionFrom 取出 RequireAuth 放入的 session
func SessionFrom(c echo.Context) (*service.Session, bool) {
	sess, ok := c.Get(ContextSessionKey).(*service.Session)
	return sess, ok && sess != nil
}

// CurrentUserID 給 RequireAuth 之後的 handler 使用
func CurrentUserID(c echo.Context) (uuid.UUID, error) {
	sess, ok := SessionFrom(c)
	if !ok {
		return uuid.Nil, apperr.Unauthorized("Unauthorized")
	}
	return sess.UserID, nil
}
