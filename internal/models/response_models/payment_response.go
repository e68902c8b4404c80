package response_models

import (
	"github.com/google/uuid"
)

type LatestPaymentOutput struct {
	ID          uuid.UUID     `json:"id"`
	PgPaymentID string        `json:"pg_payment_id"`
	Status      string        `json:"status"`
	PaidAt      *int64        `json:"paid_at,omitempty"`
	FailReason  string        `json:"fail_reason,omitempty"`
	Product     ProductOutput `json:"product"`
}

type CheckoutResponse struct {
	PaymentID   uuid.UUID `json:"payment_id"`
	PgPaymentID string    `json:"pg_payment_id"`
	Status      string    `json:"status"`
	Amount      int64     `json:"amount"`
	PaidAt      *int64    `json:"paid_at,omitempty"`
	FailReason  string    `json:"fail_reason,omitempty"`
}

type RefundOutput struct {
	RequestAmount int64  `json:"request_amount"`
	RefundAmount  *int64 `json:"refund_amount,omitempty"`
	ResultMessage string `json:"result_message"`
	ResultStatus  string `json:"result_status"` // "FAILED" | "REQUESTED" | "SUCCEED"
}
