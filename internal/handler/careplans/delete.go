// File: internal/handler/careplans/delete.go
package careplans

import (
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/apperr"
	"care-companion/internal/middleware"

	"github.com/labstack/echo/v4"
)

// DeleteHandler 刪除登入者的照護計畫
// @Summary     刪除照護計畫
// @Tags        care-plans
// @Produce     json
// @Param       id  path     string true "計畫 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /care-plans/{id} [delete]
func DeleteHandler(svc Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return api.WriteError(c, err)
		}
		id, ok := planID(c)
		if !ok {
			return api.WriteError(c, apperr.NotFound("Care plan not found"))
		}

		if err := svc.Delete(c.Request().Context(), userID, id); err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Care plan deleted successfully"})
	}
}
