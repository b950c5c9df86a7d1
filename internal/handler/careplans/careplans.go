// File: internal/handler/careplans/careplans.go
package careplans

import (
	"context"

	"care-companion/internal/api"
	"care-companion/internal/model"
	"care-companion/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Manager 照護計畫的讀寫，皆以登入者為範圍
type Manager interface {
	List(ctx context.Context, userID uuid.UUID) ([]model.CarePlan, error)
	Create(ctx context.Context, userID uuid.UUID, in service.CarePlanInput) (*model.CarePlan, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*model.CarePlan, error)
	Update(ctx context.Context, userID, id uuid.UUID, in service.CarePlanInput) (*model.CarePlan, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

func toInput(req api.CarePlanRequest) service.CarePlanInput {
	return service.CarePlanInput{
		Name:        req.Name,
		Description: req.Description,
		Conditions:  req.Conditions,
		Medications: req.Medications,
	}
}

// planID 非 UUID 的路徑參數視同查無此計畫
func planID(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}
