// File: internal/handler/users/me.go
package users

import (
	"context"
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/middleware"
	"care-companion/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserReader 讀取當前登入的使用者
type UserReader interface {
	CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// GetMeHandler 取得當前使用者個人資料
// @Summary     取得個人資料
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(svc UserReader) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return api.WriteError(c, err)
		}
		user, err := svc.CurrentUser(c.Request().Context(), userID)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}
