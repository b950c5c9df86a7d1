// File: internal/service/faq.go
package service

import (
	"context"
	"slices"

	"care-companion/internal/apperr"
	"care-companion/internal/model"

	"github.com/google/uuid"
)

// FaqCategories FAQ 頁面的分類
var FaqCategories = []string{"diagnosis", "treatments", "side-effects", "wellbeing"}

type FaqRepository interface {
	ListSavedByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.SavedFaq, error)
	ListQuestions(ctx context.Context, category, search string) ([]model.FaqQuestion, error)
}

type FaqService struct {
	faqs FaqRepository
}

func NewFaqService(faqs FaqRepository) *FaqService {
	return &FaqService{faqs: faqs}
}

// ListSaved 依收藏時間由新到舊
func (s *FaqService) ListSaved(ctx context.Context, userID uuid.UUID) ([]model.SavedFaq, error) {
	saved, err := s.faqs.ListSavedByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return saved, nil
}

// ListQuestions category 與 search 皆可為空字串
func (s *FaqService) ListQuestions(ctx context.Context, category, search string) ([]model.FaqQuestion, error) {
	if category != "" && !slices.Contains(FaqCategories, category) {
		return nil, apperr.Validation("Invalid category")
	}
	questions, err := s.faqs.ListQuestions(ctx, category, search)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return questions, nil
}
