package api

import (
	"care-companion/internal/model"

	"github.com/google/uuid"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID    uuid.UUID `json:"id" example:"4f1c1a6e-8f1e-4d6a-9a0e-2b7f3c9d1e55"`
	Email string    `json:"email" example:"alice@example.com"`
	Name  *string   `json:"name" example:"Alice"`
}

// NewUserResponse 不帶出 password_hash
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
