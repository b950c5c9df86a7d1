// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"care-companion/internal/api"
	"care-companion/internal/cache"
	"care-companion/internal/database"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			zap.L().Error("database ping failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
		}
		if err := cch.Set(ctx, "health:ping", "pong", 10*time.Second).Err(); err != nil {
			zap.L().Error("cache ping failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
