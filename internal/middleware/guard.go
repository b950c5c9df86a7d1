package middleware

import (
	"net/http"
	"path"
	"strings"

	"care-companion/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginPath 未登入時導向的頁面
const LoginPath = "/auth/login"

// Access 頁面路徑的存取分類
type Access int

const (
	Public Access = iota
	Protected
)

func (a Access) String() string {
	if a == Protected {
		return "protected"
	}
	return "public"
}

// Classify 判斷頁面是否需要登入：
// /dashboard 及其子路徑、/care-plans/create、/care-plans/<id...>/edit
func Classify(p string) Access {
	if p == "" {
		return Public
	}
	p = path.Clean("/" + p)

	switch {
	case p == "/dashboard", strings.HasPrefix(p, "/dashboard/"):
		return Protected
	case p == "/care-plans/create":
		return Protected
	}

	rest, ok := strings.CutPrefix(p, "/care-plans/")
	if !ok {
		return Public
	}
	middle, ok := strings.CutSuffix(rest, "/edit")
	if ok && middle != "" {
		return Protected
	}
	return Public
}

// Verifier 判斷憑證是否有效
type Verifier interface {
	Verify(credential string) bool
}

// VerifierFunc 讓一般函式實作 Verifier
type VerifierFunc func(credential string) bool

func (f VerifierFunc) Verify(credential string) bool {
	return f(credential)
}

// TokenCredentialVerifier 以 JWT 驗證作為預設的 Verifier
func TokenCredentialVerifier(tokens service.TokenVerifier) Verifier {
	return VerifierFunc(func(credential string) bool {
		if credential == "" {
			return false
		}
		_, err := tokens.Verify(credential)
		return err == nil
	})
}

func anyVerified(v Verifier, creds []string) bool {
	for _, cred := range creds {
		if v.Verify(cred) {
			return true
		}
	}
	return false
}

// RouteGuard 受保護頁面沒有有效憑證時以 303 導向登入頁
func RouteGuard(v Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Classify(c.Request().URL.Path) == Protected && !anyVerified(v, Credentials(c.Request())) {
				return c.Redirect(http.StatusSeeOther, LoginPath)
			}
			return next(c)
		}
	}
}
