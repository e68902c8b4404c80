package response_models

import "github.com/google/uuid"

type UserOutput struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	Token             string `json:"token"`
	IsUserHavePremium bool   `json:"is_user_have_premium"`
}
