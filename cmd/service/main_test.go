package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"care-companion/internal/cache"
	"care-companion/internal/database"
	"care-companion/internal/logger"
	"care-companion/internal/worker"
)

func restoreGlobals() {
	initLogger = logger.Init
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn = database.RollbackAll
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "db")
	t.Setenv("REDIS_ADDR", "127")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("REDIS_PASSWORD", "pw")
	t.Setenv("JWT_SECRET", "secret")
}

func stubInfra(called map[string]bool) {
	initLogger = func(string) error { return nil }
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	rollbackAllFn = func(url string) error { called["rollback"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error { called["start"] = true; return nil }
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "db", cfg.dbURL)
	require.Equal(t, "127", cfg.redisAddr)
	require.Equal(t, "pw", cfg.redisPassword)
	require.Equal(t, 1, cfg.redisDB)
	require.Equal(t, "secret", cfg.jwtSecret)
	require.Equal(t, ":8080", cfg.httpAddr)
	require.Equal(t, "info", cfg.logLevel)
	require.Equal(t, 5, cfg.loginMaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.loginLockout)
	require.Greater(t, cfg.workerCount, 0)
	require.False(t, cfg.dbReset)

	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("WORKER_COUNT", "3")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "7")
	t.Setenv("LOGIN_LOCKOUT", "1h")
	t.Setenv("STATIC_DIR", "web/out")
	t.Setenv("DB_RESET", "true")
	cfg, err = loadConfig()
	require.NoError(t, err)
	require.Equal(t, "", cfg.redisPassword)
	require.Equal(t, 3, cfg.workerCount)
	require.Equal(t, ":9000", cfg.httpAddr)
	require.Equal(t, "debug", cfg.logLevel)
	require.Equal(t, 7, cfg.loginMaxAttempts)
	require.Equal(t, time.Hour, cfg.loginLockout)
	require.Equal(t, "web/out", cfg.staticDir)
	require.True(t, cfg.dbReset)
}

func TestLoadConfigErrors(t *testing.T) {
	setRequiredEnv(t)
	cases := []struct{ key, value string }{
		{"DATABASE_URL", ""},
		{"REDIS_ADDR", ""},
		{"REDIS_DB", ""},
		{"REDIS_DB", "bad"},
		{"JWT_SECRET", ""},
		{"WORKER_COUNT", "0"},
		{"WORKER_COUNT", "many"},
		{"LOGIN_MAX_ATTEMPTS", "-1"},
		{"LOGIN_LOCKOUT", "soon"},
		{"DB_RESET", "maybe"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := loadConfig()
			require.Error(t, err)
		})
	}
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubInfra(called)
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	var routes []string
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":8080", addr)
		for _, r := range e.Routes() {
			routes = append(routes, r.Method+" "+r.Path)
		}
		return nil
	}
	setRequiredEnv(t)

	require.NoError(t, run())
	for _, k := range []string{"pgx", "redis", "migrate", "start", "dbClose", "redisClose"} {
		require.True(t, called[k], k)
	}
	require.False(t, called["rollback"])
	require.Contains(t, routes, http.MethodGet+" /swagger/*")
	require.Contains(t, routes, http.MethodPost+" /api/auth/register")
}

func TestRunResetAndServerClosed(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubInfra(called)
	startServer = func(*echo.Echo, string) error { return http.ErrServerClosed }
	setRequiredEnv(t)
	t.Setenv("DB_RESET", "true")

	require.NoError(t, run())
	require.True(t, called["rollback"])
	require.True(t, called["migrate"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubInfra(called)

	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")
	require.Error(t, run())
	require.False(t, called["pgx"])
	t.Setenv("JWT_SECRET", "secret")

	initLogger = func(string) error { return errors.New("level") }
	require.Error(t, run())
	initLogger = func(string) error { return nil }

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	t.Setenv("DB_RESET", "true")
	rollbackAllFn = func(string) error { return errors.New("rollback") }
	require.Error(t, run())
	t.Setenv("DB_RESET", "")

	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestNewEcho(t *testing.T) {
	e := newEcho()
	e.GET("/boom", func(echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Something went wrong"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	stubInfra(map[string]bool{})
	setRequiredEnv(t)
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	stubInfra(map[string]bool{})
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	setRequiredEnv(t)
	main()
	require.Equal(t, 1, exitCode)
}
