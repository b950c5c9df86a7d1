// File: internal/handler/careplans/get.go
package careplans

import (
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/apperr"
	"care-companion/internal/middleware"

	"github.com/labstack/echo/v4"
)

// GetHandler 取得單一照護計畫；查無或不屬於登入者時 data 為 null
// @Summary     取得照護計畫
// @Tags        care-plans
// @Produce     json
// @Param       id  path     string true "計畫 ID"
// @Success     200 {object} api.CarePlanEnvelope
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /care-plans/{id} [get]
func GetHandler(svc Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return api.WriteError(c, err)
		}
		id, ok := planID(c)
		if !ok {
			return c.JSON(http.StatusOK, api.CarePlanEnvelope{})
		}

		plan, err := svc.Get(c.Request().Context(), userID, id)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				return c.JSON(http.StatusOK, api.CarePlanEnvelope{})
			}
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.CarePlanEnvelope{Data: plan})
	}
}
