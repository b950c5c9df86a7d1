// File: internal/service/care_plan.go
package service

import (
	"context"
	"errors"

	"care-companion/internal/apperr"
	"care-companion/internal/model"
	"care-companion/internal/store"

	"github.com/google/uuid"
)

const msgCarePlanNotFound = "Care plan not found"

// CarePlanRepository 照護計畫資料存取；Update 與 Delete 只作用於 owner 自己的計畫
type CarePlanRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.CarePlan, error)
	Create(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CarePlan, error)
	Update(ctx context.Context, p *model.CarePlan) (*model.CarePlan, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// CarePlanInput 建立或取代計畫時的欄位
type CarePlanInput struct {
	Name        string
	Description *string
	Conditions  []string
	Medications []string
}

type CarePlanService struct {
	plans CarePlanRepository
}

func NewCarePlanService(plans CarePlanRepository) *CarePlanService {
	return &CarePlanService{plans: plans}
}

func (s *CarePlanService) List(ctx context.Context, userID uuid.UUID) ([]model.CarePlan, error) {
	plans, err := s.plans.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return plans, nil
}

func (s *CarePlanService) Create(ctx context.Context, userID uuid.UUID, in CarePlanInput) (*model.CarePlan, error) {
	plan, err := s.plans.Create(ctx, &model.CarePlan{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Conditions:  in.Conditions,
		Medications: in.Medications,
	})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return plan, nil
}

// Get 不存在或不屬於 userID 的計畫一律回傳 NotFound
func (s *CarePlanService) Get(ctx context.Context, userID, id uuid.UUID) (*model.CarePlan, error) {
	plan, err := s.plans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(msgCarePlanNotFound)
		}
		return nil, apperr.Unexpected(err)
	}
	if plan.UserID != userID {
		return nil, apperr.NotFound(msgCarePlanNotFound)
	}
	return plan, nil
}

// Update 以 in 整筆取代既有內容
func (s *CarePlanService) Update(ctx context.Context, userID, id uuid.UUID, in CarePlanInput) (*model.CarePlan, error) {
	plan, err := s.plans.Update(ctx, &model.CarePlan{
		ID:          id,
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Conditions:  in.Conditions,
		Medications: in.Medications,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound(msgCarePlanNotFound)
		}
		return nil, apperr.Unexpected(err)
	}
	return plan, nil
}

func (s *CarePlanService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.plans.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound(msgCarePlanNotFound)
		}
		return apperr.Unexpected(err)
	}
	return nil
}
