// File: internal/service/password.go
package service

import (
	"context"

	"care-companion/internal/worker"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost 固定的 bcrypt 成本
const PasswordCost = 10

// 測試時可覆寫
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// Hasher 密碼雜湊與比對
type Hasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, digest string) bool
}

// BcryptHasher 將 bcrypt 運算排入 worker pool，限制同時進行的數量
type BcryptHasher struct {
	pool worker.Pool
}

func NewBcryptHasher(pool worker.Pool) *BcryptHasher {
	return &BcryptHasher{pool: pool}
}

// Hash 接收明文密碼，回傳 bcrypt 哈希字串；每次呼叫的 salt 都不同
func (h *BcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	var (
		digest []byte
		err    error
	)
	if perr := h.pool.Do(ctx, func() {
		digest, err = bcryptGenerateFromPassword([]byte(password), PasswordCost)
	}); perr != nil {
		return "", perr
	}
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify 比對明文密碼與哈希；不符、哈希格式錯誤或 ctx 結束皆回傳 false
func (h *BcryptHasher) Verify(ctx context.Context, password, digest string) bool {
	var err error
	if perr := h.pool.Do(ctx, func() {
		err = bcryptCompareHashAndPassword([]byte(digest), []byte(password))
	}); perr != nil {
		return false
	}
	return err == nil
}
