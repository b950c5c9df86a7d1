package api

import "time"

// AuthResponse 註冊與登入成功的回應
// swagger:model api.AuthResponse
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt *time.Time   `json:"expiresAt,omitempty" example:"2025-05-09T15:04:05Z"`
	Message   string       `json:"message,omitempty" example:"user created successfully"`
}
