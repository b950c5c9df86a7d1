// File: internal/handler/faqs/faqs.go
package faqs

import (
	"context"
	"net/http"

	"care-companion/internal/api"
	"care-companion/internal/apperr"
	"care-companion/internal/middleware"
	"care-companion/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Reader interface {
	ListSaved(ctx context.Context, userID uuid.UUID) ([]model.SavedFaq, error)
	ListQuestions(ctx context.Context, category, search string) ([]model.FaqQuestion, error)
}

// ListSavedHandler 列出登入者收藏的 FAQ
// @Summary     列出收藏的 FAQ
// @Description 依收藏時間由新到舊
// @Tags        faqs
// @Produce     json
// @Success     200 {array}  model.SavedFaq
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /saved-faqs [get]
func ListSavedHandler(svc Reader) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return api.WriteError(c, err)
		}
		saved, err := svc.ListSaved(c.Request().Context(), userID)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, saved)
	}
}

// ListQuestionsHandler 公開的 FAQ 目錄
// @Summary     列出 FAQ
// @Tags        faqs
// @Produce     json
// @Param       category query    string false "分類" Enums(diagnosis, treatments, side-effects, wellbeing)
// @Param       search   query    string false "關鍵字，不分大小寫"
// @Success     200      {array}  model.FaqQuestion
// @Failure     400      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /questions [get]
func ListQuestionsHandler(svc Reader) echo.HandlerFunc {
	return func(c echo.Context) error {
		var q api.QuestionQuery
		if err := c.Bind(&q); err != nil {
			return api.WriteError(c, apperr.Validation("Invalid query"))
		}
		if err := c.Validate(&q); err != nil {
			return api.WriteError(c, apperr.Validation(api.ValidationMessage(err)))
		}
		questions, err := svc.ListQuestions(c.Request().Context(), q.Category, q.Search)
		if err != nil {
			return api.WriteError(c, err)
		}
		return c.JSON(http.StatusOK, questions)
	}
}
