package api

// CarePlanRequest 建立與整筆取代照護計畫共用
// swagger:model api.CarePlanRequest
type CarePlanRequest struct {
	Name        string   `json:"name" validate:"required,max=200" example:"Diabetes Plan"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000" example:"Daily glucose checks"`
	Conditions  []string `json:"conditions" validate:"dive,required,max=200" example:"Type 2 diabetes"`
	Medications []string `json:"medications" validate:"dive,required,max=200" example:"Metformin"`
}
