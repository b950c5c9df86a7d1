// File: cmd/service/main.go
// @title        Care Companion API
// @version      1.0
// @description  病患與照護者健康管理的後端 API 文件
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"care-companion/internal/api"
	"care-companion/internal/cache"
	"care-companion/internal/database"
	"care-companion/internal/logger"
	"care-companion/internal/router"
	"care-companion/internal/service"
	"care-companion/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "care-companion/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

var (
	initLogger      = logger.Init
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

// config 由環境變數組成；必要的值缺少時 run() 直接失敗
type config struct {
	dbURL            string
	dbReset          bool
	redisAddr        string
	redisPassword    string
	redisDB          int
	jwtSecret        string
	workerCount      int
	httpAddr         string
	logLevel         string
	staticDir        string
	loginMaxAttempts int
	loginLockout     time.Duration
}

func loadConfig() (config, error) {
	cfg := config{
		redisPassword:    os.Getenv("REDIS_PASSWORD"),
		workerCount:      runtime.NumCPU(),
		httpAddr:         ":8080",
		logLevel:         "info",
		staticDir:        os.Getenv("STATIC_DIR"),
		loginMaxAttempts: service.DefaultLoginMaxAttempts,
		loginLockout:     service.DefaultLoginLockout,
	}

	cfg.dbURL = os.Getenv("DATABASE_URL")
	if cfg.dbURL == "" {
		return cfg, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if v := os.Getenv("DB_RESET"); v != "" {
		reset, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("無效的 DB_RESET: %v", err)
		}
		cfg.dbReset = reset
	}

	cfg.redisAddr = os.Getenv("REDIS_ADDR")
	if cfg.redisAddr == "" {
		return cfg, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return cfg, fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return cfg, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	cfg.redisDB = redisIndex

	cfg.jwtSecret = os.Getenv("JWT_SECRET")
	if cfg.jwtSecret == "" {
		return cfg, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return cfg, fmt.Errorf("無效的 WORKER_COUNT: %q", v)
		}
		cfg.workerCount = c
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.httpAddr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.logLevel = v
	}

	if v := os.Getenv("LOGIN_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("無效的 LOGIN_MAX_ATTEMPTS: %q", v)
		}
		cfg.loginMaxAttempts = n
	}
	if v := os.Getenv("LOGIN_LOCKOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("無效的 LOGIN_LOCKOUT: %q", v)
		}
		cfg.loginLockout = d
	}

	return cfg, nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Log.Info("request", fields...)
			return nil
		},
	}))
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := initLogger(cfg.logLevel); err != nil {
		return fmt.Errorf("無效的 LOG_LEVEL: %v", err)
	}
	defer func() { _ = logger.Log.Sync() }()

	tokens, err := service.NewTokenManager(cfg.jwtSecret)
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.redisAddr, cfg.redisPassword, cfg.redisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	// 開發環境重建資料表
	if cfg.dbReset {
		logger.Log.Warn("DB_RESET enabled, rolling back all migrations")
		if err := rollbackAllFn(cfg.dbURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %v", err)
		}
	}
	if err := runMigrationsFn(cfg.dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(cfg.workerCount)
	defer wp.Stop()

	e := newEcho()
	router.Setup(e, db, rdb, router.Options{
		Tokens:           tokens,
		Pool:             wp,
		LoginMaxAttempts: cfg.loginMaxAttempts,
		LoginLockout:     cfg.loginLockout,
	})

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// 前端靜態檔
	if cfg.staticDir != "" {
		e.Static("/", cfg.staticDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// done 先於 stop 關閉，run 正常返回時不觸發 Shutdown
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}
		select {
		case <-done:
			return
		default:
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Log.Info("starting HTTP server",
		zap.String("addr", cfg.httpAddr),
		zap.Int("workers", cfg.workerCount),
	)
	if err := startServer(e, cfg.httpAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		logger.Log.Error("service exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
