package response_models

import (
	"github.com/google/uuid"
)

type ProductOutput struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Type  string    `json:"type"` // "MONTHLY" | "YEARLY"
	Price int64     `json:"price"`
}

type SubscriptionOutput struct {
	ID            uuid.UUID     `json:"id"`
	ExpiredAt     int64         `json:"expired_at"`      // unix seconds
	ExpiredAtText string        `json:"expired_at_text"` // RFC3339, KST
	Product       ProductOutput `json:"product"`
}
