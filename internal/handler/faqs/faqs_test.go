package faqs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"care-companion/internal/api"
	"care-companion/internal/apperr"
	"care-companion/internal/middleware"
	"care-companion/internal/model"
	"care-companion/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	ListSavedFn     func(ctx context.Context, userID uuid.UUID) ([]model.SavedFaq, error)
	ListQuestionsFn func(ctx context.Context, category, search string) ([]model.FaqQuestion, error)
}

func (s *stubReader) ListSaved(ctx context.Context, userID uuid.UUID) ([]model.SavedFaq, error) {
	return s.ListSavedFn(ctx, userID)
}

func (s *stubReader) ListQuestions(ctx context.Context, category, search string) ([]model.FaqQuestion, error) {
	return s.ListQuestionsFn(ctx, category, search)
}

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec), rec
}

func TestListSavedHandler(t *testing.T) {
	owner := uuid.New()
	svc := &stubReader{
		ListSavedFn: func(_ context.Context, id uuid.UUID) ([]model.SavedFaq, error) {
			if id != owner {
				return []model.SavedFaq{}, nil
			}
			return []model.SavedFaq{
				{QuestionID: "q2", Question: "What treatments are available?", CreatedAt: time.Now()},
				{QuestionID: "q1", Question: "What is my diagnosis?", CreatedAt: time.Now().Add(-time.Hour)},
			}, nil
		},
	}

	c, rec := newContext("/api/saved-faqs")
	c.Set(middleware.ContextSessionKey, &service.Session{UserID: owner})
	require.NoError(t, ListSavedHandler(svc)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"questionId":"q2"`)

	c, rec = newContext("/api/saved-faqs")
	c.Set(middleware.ContextSessionKey, &service.Session{UserID: uuid.New()})
	require.NoError(t, ListSavedHandler(svc)(c))
	require.JSONEq(t, `[]`, rec.Body.String())

	c, rec = newContext("/api/saved-faqs")
	require.NoError(t, ListSavedHandler(svc)(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	svc.ListSavedFn = func(context.Context, uuid.UUID) ([]model.SavedFaq, error) {
		return nil, apperr.Unexpected(errors.New("db"))
	}
	c, rec = newContext("/api/saved-faqs")
	c.Set(middleware.ContextSessionKey, &service.Session{UserID: owner})
	require.NoError(t, ListSavedHandler(svc)(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Something went wrong"}`, rec.Body.String())
}

func TestListQuestionsHandler(t *testing.T) {
	var gotCategory, gotSearch string
	svc := &stubReader{
		ListQuestionsFn: func(_ context.Context, category, search string) ([]model.FaqQuestion, error) {
			gotCategory, gotSearch = category, search
			return []model.FaqQuestion{{ID: "q1", Category: "diagnosis"}}, nil
		},
	}

	c, rec := newContext("/api/questions?category=diagnosis&search=stage")
	require.NoError(t, ListQuestionsHandler(svc)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "diagnosis", gotCategory)
	require.Equal(t, "stage", gotSearch)
	require.Contains(t, rec.Body.String(), `"id":"q1"`)

	c, rec = newContext("/api/questions")
	require.NoError(t, ListQuestionsHandler(svc)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "", gotCategory)

	c, rec = newContext("/api/questions?category=billing")
	require.NoError(t, ListQuestionsHandler(svc)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
