package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"care-companion/internal/apperr"
	"care-companion/internal/model"
	"care-companion/internal/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCarePlanList(t *testing.T) {
	owner := uuid.New()
	var gotOwner uuid.UUID
	svc := NewCarePlanService(&fakePlans{
		ListByOwnerFn: func(_ context.Context, id uuid.UUID) ([]model.CarePlan, error) {
			gotOwner = id
			return []model.CarePlan{{UserID: id, Name: "Diabetes Plan"}}, nil
		},
	})
	plans, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, owner, gotOwner)
	require.Len(t, plans, 1)
	require.Equal(t, "Diabetes Plan", plans[0].Name)

	svc = NewCarePlanService(&fakePlans{
		ListByOwnerFn: func(context.Context, uuid.UUID) ([]model.CarePlan, error) {
			return nil, errors.New("db")
		},
	})
	_, err = svc.List(context.Background(), owner)
	require.Equal(t, apperr.KindUnexpected, apperr.KindOf(err))
}

func TestCarePlanCreate(t *testing.T) {
	owner := uuid.New()
	svc := NewCarePlanService(&fakePlans{
		CreateFn: func(_ context.Context, p *model.CarePlan) (*model.CarePlan, error) {
			p.ID = uuid.New()
			return p, nil
		},
	})
	plan, err := svc.Create(context.Background(), owner, CarePlanInput{
		Name:        "Diabetes Plan",
		Conditions:  []string{"Type 2 diabetes"},
		Medications: []string{"Metformin"},
	})
	require.NoError(t, err)
	require.Equal(t, owner, plan.UserID)
	require.Equal(t, []string{"Type 2 diabetes"}, plan.Conditions)
	require.Nil(t, plan.Description)
}

func TestCarePlanGet(t *testing.T) {
	owner, other := uuid.New(), uuid.New()
	id := uuid.New()
	svc := NewCarePlanService(&fakePlans{
		FindByIDFn: func(_ context.Context, got uuid.UUID) (*model.CarePlan, error) {
			if got != id {
				return nil, fmt.Errorf("FindCarePlanByID: %w", store.ErrNotFound)
			}
			return &model.CarePlan{ID: id, UserID: owner}, nil
		},
	})

	plan, err := svc.Get(context.Background(), owner, id)
	require.NoError(t, err)
	require.Equal(t, id, plan.ID)

	_, err = svc.Get(context.Background(), other, id)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Get(context.Background(), owner, uuid.New())
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Equal(t, "Care plan not found", apperr.PublicMessage(err))
}

func TestCarePlanUpdate(t *testing.T) {
	owner, id := uuid.New(), uuid.New()
	svc := NewCarePlanService(&fakePlans{
		UpdateFn: func(_ context.Context, p *model.CarePlan) (*model.CarePlan, error) {
			if p.ID != id || p.UserID != owner {
				return nil, fmt.Errorf("UpdateCarePlan: %w", store.ErrNotFound)
			}
			return p, nil
		},
	})
	plan, err := svc.Update(context.Background(), owner, id, CarePlanInput{Name: "Renamed"})
	require.NoError(t, err)
	require.Equal(t, "Renamed", plan.Name)

	_, err = svc.Update(context.Background(), uuid.New(), id, CarePlanInput{Name: "x"})
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCarePlanDelete(t *testing.T) {
	owner, id := uuid.New(), uuid.New()
	svc := NewCarePlanService(&fakePlans{
		DeleteFn: func(_ context.Context, ownerID, got uuid.UUID) error {
			if ownerID != owner || got != id {
				return fmt.Errorf("DeleteCarePlan: %w", store.ErrNotFound)
			}
			return nil
		},
	})
	require.NoError(t, svc.Delete(context.Background(), owner, id))

	err := svc.Delete(context.Background(), owner, uuid.New())
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Equal(t, "Care plan not found", apperr.PublicMessage(err))

	svc = NewCarePlanService(&fakePlans{
		DeleteFn: func(context.Context, uuid.UUID, uuid.UUID) error { return errors.New("db") },
	})
	err = svc.Delete(context.Background(), owner, id)
	require.Equal(t, apperr.KindUnexpected, apperr.KindOf(err))
}
