// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"care-companion/internal/apperr"
	"care-companion/internal/model"
	"care-companion/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgTooManyAttempts    = "Too many login attempts"
	msgUserNotFound       = "User not found"
	msgPasswordTooLong    = "password must be at most 72 bytes"
)

// UserRepository 使用者資料存取
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
}

// AuthResult 註冊或登入成功後的結果
type AuthResult struct {
	User      *model.User
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users    UserRepository
	hasher   Hasher
	tokens   TokenIssuer
	throttle *LoginThrottle

	dummyOnce   sync.Once
	dummyDigest string
}

// NewAuthService throttle 可為 nil，代表不限制登入次數
func NewAuthService(users UserRepository, hasher Hasher, tokens TokenIssuer, throttle *LoginThrottle) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, throttle: throttle}
}

// Register 建立帳號並直接簽發憑證；email 已存在時回傳 Conflict
func (s *AuthService) Register(ctx context.Context, email, password string, name *string) (*AuthResult, error) {
	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperr.Conflict(msgUserExists)
	case !errors.Is(err, store.ErrNotFound):
		return nil, apperr.Unexpected(err)
	}

	digest, err := s.hasher.Hash(ctx, password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperr.Validation(msgPasswordTooLong)
		}
		return nil, apperr.Unexpected(err)
	}

	user, err := s.users.Create(ctx, &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: digest,
	})
	if err != nil {
		// 並發註冊同一 email 時由 unique constraint 擋下
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict(msgUserExists)
		}
		return nil, apperr.Unexpected(err)
	}

	return s.issue(user)
}

// Login 驗證帳密；帳號不存在與密碼錯誤回傳相同訊息
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if s.throttle.Blocked(ctx, email) {
		return nil, apperr.TooManyRequests(msgTooManyAttempts)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, apperr.Unexpected(err)
		}
		s.verifyDummy(ctx, password)
		s.throttle.RecordFailure(ctx, email)
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		s.throttle.RecordFailure(ctx, email)
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	s.throttle.Reset(ctx, email)
	return s.issue(user)
}

// CurrentUser 依 session 取得使用者資料
func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(msgUserNotFound)
		}
		return nil, apperr.Unexpected(err)
	}
	return user, nil
}

func (s *AuthService) issue(user *model.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// verifyDummy 帳號不存在時仍做一次 bcrypt 比對，讓回應時間與密碼錯誤相近
func (s *AuthService) verifyDummy(ctx context.Context, password string) {
	s.dummyOnce.Do(func() {
		s.dummyDigest, _ = s.hasher.Hash(context.WithoutCancel(ctx), "care-companion-dummy-password")
	})
	if s.dummyDigest != "" {
		s.hasher.Verify(ctx, password, s.dummyDigest)
	}
}
