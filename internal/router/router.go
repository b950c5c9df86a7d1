// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"care-companion/internal/cache"
	"care-companion/internal/database"
	"care-companion/internal/handler"
	"care-companion/internal/handler/auth"
	"care-companion/internal/handler/careplans"
	"care-companion/internal/handler/faqs"
	"care-companion/internal/handler/users"
	"care-companion/internal/middleware"
	"care-companion/internal/service"
	"care-companion/internal/store"
	"care-companion/internal/worker"
)

// Options 由 cmd/service 依環境變數組成
type Options struct {
	Tokens           *service.TokenManager
	Pool             worker.Pool
	LoginMaxAttempts int
	LoginLockout     time.Duration
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, opts Options) {
	authSvc := service.NewAuthService(
		store.NewUserStore(db),
		service.NewBcryptHasher(opts.Pool),
		opts.Tokens,
		service.NewLoginThrottle(cch, opts.LoginMaxAttempts, opts.LoginLockout),
	)
	carePlanSvc := service.NewCarePlanService(store.NewCarePlanStore(db))
	faqSvc := service.NewFaqService(store.NewFaqStore(db))

	// 前端頁面：未登入時導向登入頁
	e.Use(middleware.RouteGuard(middleware.TokenCredentialVerifier(opts.Tokens)))

	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(db, cch))

	// 註冊、登入、登出
	api.POST("/auth/register", auth.RegisterHandler(authSvc))
	api.POST("/auth/login", auth.LoginHandler(authSvc))
	api.POST("/auth/logout", auth.LogoutHandler())

	// 公開 FAQ 目錄
	api.GET("/questions", faqs.ListQuestionsHandler(faqSvc))

	requireAuth := middleware.RequireAuth(opts.Tokens)

	api.GET("/users/me", users.GetMeHandler(authSvc), requireAuth)
	api.GET("/saved-faqs", faqs.ListSavedHandler(faqSvc), requireAuth)

	// 照護計畫 CRUD，只能存取自己的計畫
	apiCarePlans := api.Group("/care-plans", requireAuth)
	apiCarePlans.GET("", careplans.ListHandler(carePlanSvc))
	apiCarePlans.POST("", careplans.CreateHandler(carePlanSvc))
	apiCarePlans.GET("/:id", careplans.GetHandler(carePlanSvc))
	apiCarePlans.PUT("/:id", careplans.UpdateHandler(carePlanSvc))
	apiCarePlans.DELETE("/:id", careplans.DeleteHandler(carePlanSvc))
}
