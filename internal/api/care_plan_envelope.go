package api

import "care-companion/internal/model"

// CarePlanEnvelope 查無資料時 data 為 null
// swagger:model api.CarePlanEnvelope
type CarePlanEnvelope struct {
	Data *model.CarePlan `json:"data"`
}
