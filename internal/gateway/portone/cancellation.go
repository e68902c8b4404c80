package portone

import (
	"time"

	"github.com/google/uuid"
	"subly/pkg/utils"
)

type CancellationStatus string

const (
	CancellationSucceed   CancellationStatus = "SUCCEED"
	CancellationRequested CancellationStatus = "REQUESTED"
	CancellationFailed    CancellationStatus = "FAILED"
)

// Outcome selects which cancellation variant the mocked gateway produces.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeFail      Outcome = "fail"
	OutcomeRequested Outcome = "requested"
)

type CancelRequest struct {
	Reason string
	Amount int64 // minor units
}

// Cancellation holds the fields common to every cancellation variant.
type Cancellation struct {
	ID            string // id of the cancellation attempt itself
	TotalAmount   int64
	TaxFreeAmount int64
	VATAmount     int64
	Reason        string
	RequestedAt   string
}

// CancellationResult is the closed set of shapes the gateway returns for a
// cancellation request. Variant-only fields (receipt url, settlement time,
// the cancelled transaction id) live on SucceededCancellation alone.
type CancellationResult interface {
	Status() CancellationStatus
	Detail() Cancellation
}

type SucceededCancellation struct {
	Cancellation
	PgCancellationID string
	CancelledAt      string
	ReceiptURL       string
}

func (SucceededCancellation) Status() CancellationStatus { return CancellationSucceed }
func (c SucceededCancellation) Detail() Cancellation     { return c.Cancellation }

type RequestedCancellation struct {
	Cancellation
}

func (RequestedCancellation) Status() CancellationStatus { return CancellationRequested }
func (c RequestedCancellation) Detail() Cancellation     { return c.Cancellation }

type FailedCancellation struct {
	Cancellation
}

func (FailedCancellation) Status() CancellationStatus { return CancellationFailed }
func (c FailedCancellation) Detail() Cancellation     { return c.Cancellation }

// BuildCancellationResult mocks the gateway's response to a cancellation
// request. Tax-free and VAT amounts split the requested amount 90/10; the
// integer split always sums back to the requested amount.
func BuildCancellationResult(pgPaymentID string, req CancelRequest, outcome Outcome) CancellationResult {
	taxFree := req.Amount * 9 / 10
	base := Cancellation{
		ID:            uuid.NewString(),
		TotalAmount:   req.Amount,
		TaxFreeAmount: taxFree,
		VATAmount:     req.Amount - taxFree,
		Reason:        req.Reason,
		RequestedAt:   utils.FormatGatewayDate(time.Now()),
	}

	switch outcome {
	case OutcomeSuccess:
		return SucceededCancellation{
			Cancellation:     base,
			PgCancellationID: pgPaymentID,
			CancelledAt:      utils.FormatGatewayDate(time.Now()),
			ReceiptURL:       "https://receipts.portone.example/" + base.ID,
		}
	case OutcomeFail:
		return FailedCancellation{Cancellation: base}
	default:
		return RequestedCancellation{Cancellation: base}
	}
}
