package api

import (
	"errors"
	"fmt"
	"net/http"

	"care-companion/internal/apperr"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WriteError 依 apperr 分類寫出 {error} 回應；Unexpected 只記錄原因，不對外
func WriteError(c echo.Context, err error) error {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnexpected {
		zap.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}
	return c.JSON(apperr.HTTPStatus(kind), ErrorResponse{Error: apperr.PublicMessage(err)})
}

// HTTPErrorHandler 取代 echo 預設的錯誤處理，讓所有錯誤都使用 ErrorResponse
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = WriteError(c, err)
		return
	}

	if he.Code >= http.StatusInternalServerError {
		_ = WriteError(c, apperr.Unexpected(err))
		return
	}
	msg, ok := he.Message.(string)
	if !ok {
		msg = fmt.Sprint(he.Message)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, ErrorResponse{Error: msg})
}
