package portone

import (
	"time"

	"github.com/google/uuid"
	"subly/pkg/utils"
)

type PaymentStatus string

const (
	PaymentSucceed PaymentStatus = "SUCCEED"
	PaymentFailed  PaymentStatus = "FAILED"
)

// PurchaseResult is the mocked gateway response to a purchase attempt.
type PurchaseResult struct {
	PgPaymentID string // gateway transaction id, absent on failure
	Status      PaymentStatus
	PaidAt      string // gateway date format, absent on failure
	FailReason  string
}

// BuildPurchaseResult mocks the gateway's purchase response. A failed
// purchase carries no transaction id and no settlement time.
func BuildPurchaseResult(outcome Outcome) PurchaseResult {
	if outcome == OutcomeFail {
		return PurchaseResult{
			Status:     PaymentFailed,
			FailReason: "card declined",
		}
	}
	return PurchaseResult{
		PgPaymentID: uuid.NewString(),
		Status:      PaymentSucceed,
		PaidAt:      utils.FormatGatewayDate(time.Now()),
	}
}
