// File: internal/service/token.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL 登入憑證有效期
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken 涵蓋簽章錯誤、演算法不符、格式錯誤、過期與缺少 userId
var ErrInvalidToken = errors.New("invalid token")

var timeNow = time.Now

// Claims 定義 JWT 負載內容
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Session 代表一個已驗證的登入狀態
type Session struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenIssuer 產生登入憑證
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, time.Time, error)
}

// TokenVerifier 驗證登入憑證
type TokenVerifier interface {
	Verify(token string) (*Session, error)
}

// TokenManager 以 HS256 簽發與驗證 JWT
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}, nil
}

// Issue 依據使用者 ID 產生 JWT，回傳憑證與到期時間
func (m *TokenManager) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := timeNow()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt.Truncate(time.Second), nil
}

// Verify 驗證並解析 JWT 令牌
func (m *TokenManager) Verify(tokenString string) (*Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(timeNow),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Session{UserID: userID, ExpiresAt: claims.ExpiresAt.Time}, nil
}
