// File: internal/service/throttle.go
package service

import (
	"context"
	"errors"
	"time"

	"care-companion/internal/cache"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultLoginMaxAttempts = 5
	DefaultLoginLockout     = 15 * time.Minute
)

// LoginThrottle 以 Redis 計數每個 email 的登入失敗次數
// Redis 出錯時一律放行，只記錄 log
type LoginThrottle struct {
	cache       cache.Cache
	maxAttempts int
	lockout     time.Duration
}

// NewLoginThrottle maxAttempts / lockout <= 0 時使用預設值
func NewLoginThrottle(c cache.Cache, maxAttempts int, lockout time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = DefaultLoginMaxAttempts
	}
	if lockout <= 0 {
		lockout = DefaultLoginLockout
	}
	return &LoginThrottle{cache: c, maxAttempts: maxAttempts, lockout: lockout}
}

func loginFailuresKey(email string) string {
	return "login:failures:" + email
}

// Blocked 回傳該 email 是否已達失敗上限
func (t *LoginThrottle) Blocked(ctx context.Context, email string) bool {
	if t == nil {
		return false
	}
	n, err := t.cache.Get(ctx, loginFailuresKey(email)).Int()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("login throttle lookup failed", zap.Error(err))
		}
		return false
	}
	return n >= t.maxAttempts
}

// RecordFailure 累加失敗次數；每次都以 EXPIRE NX 補上鎖定時間，
// 已有 TTL 時不會延長，先前設定失敗時也能補回（需 Redis 7+）
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) {
	if t == nil {
		return
	}
	key := loginFailuresKey(email)
	n, err := t.cache.Incr(ctx, key).Result()
	if err != nil {
		zap.L().Warn("login throttle increment failed", zap.Error(err))
		return
	}
	if err := t.cache.ExpireNX(ctx, key, t.lockout).Err(); err != nil {
		zap.L().Warn("login throttle expire failed", zap.Int64("failures", n), zap.Error(err))
	}
}

// Reset 登入成功後清除計數
func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if t == nil {
		return
	}
	if err := t.cache.Del(ctx, loginFailuresKey(email)).Err(); err != nil {
		zap.L().Warn("login throttle reset failed", zap.Error(err))
	}
}
