package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string  `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string  `json:"password" form:"password" validate:"required,min=8,max=72,maxbytes=72" example:"password123"`
	Name     *string `json:"name,omitempty" form:"name" validate:"omitempty,max=100" example:"Alice"`
}
