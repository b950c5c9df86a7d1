// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/apperr"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 建立帳號並回傳 JWT
// @Summary     註冊使用者
// @Description 以 email 與密碼建立帳號，成功後直接回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.AuthResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(svc Authenticator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return api.WriteError(c, apperr.Validation("Invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return api.WriteError(c, apperr.Validation(api.ValidationMessage(err)))
		}

		res, err := svc.Register(c.Request().Context(), req.Email, req.Password, req.Name)
		if err != nil {
			return api.WriteError(c, err)
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			User:    api.NewUserResponse(res.User),
			Token:   res.Token,
			Message: "user created successfully",
		})
	}
}
