// File: internal/handler/careplans/update.go
package careplans

import (
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/apperr"
	"care-companion/internal/middleware"

	"github.com/labstack/echo/v4"
)

// UpdateHandler 整筆取代照護計畫內容
// @Summary     更新照護計畫
// @Tags        care-plans
// @Accept      json
// @Produce     json
// @Param       id   path     string              true "計畫 ID"
// @Param       body body     api.CarePlanRequest true "計畫內容"
// @Success     200  {object} model.CarePlan
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /care-plans/{id} [put]
func UpdateHandler(svc Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return api.WriteError(c, err)
		}
		id, ok := planID(c)
		if !ok {
			return api.WriteError(c, apperr.NotFound("Care plan not found"))
		}

		var req api.CarePlanRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperr.Validation("Invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, apperr.Validation(api.ValidationMessage(err)))
		}

		plan, err := svc.Update(c.Request().Context(), userID, id, toInput(req))
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, plan)
	}
}
