// File: internal/handler/careplans/list.go
package careplans

import (
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ListHandler 列出登入者的照護計畫
// @Summary     列出照護計畫
// @Description 依最後更新時間由新到舊
// @Tags        care-plans
// @Produce     json
// @Success     200 {array}  model.CarePlan
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /care-plans [get]
func ListHandler(svc Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return api.WriteError(c, err)
		}
		plans, err := svc.List(c.Request().Context(), userID)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, plans)
	}
}
