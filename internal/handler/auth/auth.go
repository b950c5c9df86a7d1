// File: internal/handler/auth/auth.go
package auth

import (
	"context"

	"care-companion/internal/service"
)

// Authenticator 註冊與登入
type Authenticator interface {
	Register(ctx context.Context, email, password string, name *string) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}
