// File: internal/handler/careplans/create.go
package careplans

import (
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/apperr"
	"care-companion/internal/middleware"

	"github.com/labstack/echo/v4"
)

// CreateHandler 建立照護計畫
// @Summary     建立照護計畫
// @Tags        care-plans
// @Accept      json
// @Produce     json
// @Param       body body     api.CarePlanRequest true "計畫內容"
// @Success     200  {object} model.CarePlan
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /care-plans [post]
func CreateHandler(svc Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return api.WriteError(c, err)
		}

		var req api.CarePlanRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperr.Validation("Invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, apperr.Validation(api.ValidationMessage(err)))
		}

		plan, err := svc.Create(c.Request().Context(), userID, toInput(req))
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, plan)
	}
}
