package request_models

import "github.com/google/uuid"

type CheckoutRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	// Optional gateway outcome to simulate; defaults to "success".
	State string `json:"state" binding:"omitempty,oneof=success fail requested"`
}

type RefundRequest struct {
	Reason string `json:"reason" binding:"required"`
	State  string `json:"state" binding:"omitempty,oneof=success fail requested"`
}
