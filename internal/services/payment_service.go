package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"subly/internal/gateway/portone"
	"subly/internal/models/db_models"
	"subly/internal/models/request_models"
	"subly/internal/models/response_models"
	"subly/internal/repositories"
	"subly/pkg/utils"
)

type PaymentService interface {
	GetLatestPayment(ctx context.Context, userID uuid.UUID) (*response_models.LatestPaymentOutput, error)
	Checkout(ctx context.Context, userID uuid.UUID, request request_models.CheckoutRequest) (*response_models.CheckoutResponse, error)
	Refund(ctx context.Context, userID uuid.UUID, request request_models.RefundRequest) (*response_models.RefundOutput, error)
}

type paymentService struct {
	paymentRepo repositories.IPaymentRepository
	productRepo repositories.IProductRepository
	now         func() time.Time
}

func NewPaymentService(
	paymentRepo repositories.IPaymentRepository,
	productRepo repositories.IProductRepository,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

func (p *paymentService) GetLatestPayment(ctx context.Context, userID uuid.UUID) (*response_models.LatestPaymentOutput, error) {

	payment, err := p.paymentRepo.GetLatestByUserID(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}

	return &response_models.LatestPaymentOutput{
		ID:          payment.ID,
		PgPaymentID: payment.PgPaymentID,
		Status:      string(payment.Status),
		PaidAt:      payment.PaidAt,
		FailReason:  payment.FailReason,
		Product: response_models.ProductOutput{
			ID:    payment.Product.ID,
			Name:  payment.Product.Name,
			Type:  string(payment.Product.Type),
			Price: payment.Product.PriceMinor,
		},
	}, nil
}

// Checkout records a pending payment for a product and settles it against
// the mocked gateway purchase response.
func (p *paymentService) Checkout(ctx context.Context, userID uuid.UUID, request request_models.CheckoutRequest) (*response_models.CheckoutResponse, error) {

	product, err := p.productRepo.FindByID(ctx, request.ProductID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	payment := &db_models.Payment{
		UserID:      userID,
		ProductID:   product.ID,
		AmountMinor: product.PriceMinor,
		Currency:    product.Currency,
		Status:      db_models.PaymentStatusPending,
	}

	if err := p.paymentRepo.Create(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := portone.BuildPurchaseResult(outcomeFromState(request.State))

	fields := map[string]interface{}{
		"receipt": jsonRaw(result),
	}
	if result.Status == portone.PaymentSucceed {
		paidAt := p.now().Unix()
		payment.Status = db_models.PaymentStatusPaid
		payment.PgPaymentID = result.PgPaymentID
		payment.PaidAt = &paidAt
		fields["status"] = db_models.PaymentStatusPaid
		fields["pg_payment_id"] = result.PgPaymentID
		fields["paid_at"] = paidAt
	} else {
		payment.Status = db_models.PaymentStatusFailed
		payment.FailReason = result.FailReason
		fields["status"] = db_models.PaymentStatusFailed
		fields["fail_reason"] = result.FailReason
	}

	if err := p.paymentRepo.Update(ctx, payment, fields); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CheckoutResponse{
		PaymentID:   payment.ID,
		PgPaymentID: payment.PgPaymentID,
		Status:      string(payment.Status),
		Amount:      payment.AmountMinor,
		PaidAt:      payment.PaidAt,
		FailReason:  payment.FailReason,
	}, nil
}

// Refund runs the user's latest paid payment through the mocked gateway
// cancellation and folds the variant into the refund projection.
func (p *paymentService) Refund(ctx context.Context, userID uuid.UUID, request request_models.RefundRequest) (*response_models.RefundOutput, error) {

	payment, err := p.paymentRepo.GetLatestByUserID(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil || payment.Status != db_models.PaymentStatusPaid {
		return nil, utils.ErrPaymentNotFound
	}

	result := portone.BuildCancellationResult(payment.PgPaymentID, portone.CancelRequest{
		Reason: request.Reason,
		Amount: payment.AmountMinor,
	}, outcomeFromState(request.State))

	output := &response_models.RefundOutput{
		RequestAmount: payment.AmountMinor,
		ResultStatus:  string(result.Status()),
	}

	switch result.Status() {
	case portone.CancellationSucceed:
		refundedAt := p.now().Unix()
		if err := p.paymentRepo.Update(ctx, payment, map[string]interface{}{
			"status":      db_models.PaymentStatusRefunded,
			"refunded_at": refundedAt,
			"receipt":     jsonRaw(result),
		}); err != nil {
			return nil, utils.ErrDatabaseError
		}
		refunded := result.Detail().TotalAmount
		output.RefundAmount = &refunded
		output.ResultMessage = "refund completed"
	case portone.CancellationRequested:
		output.ResultMessage = "refund requested"
	default:
		output.ResultMessage = "refund failed: " + result.Detail().Reason
	}

	return output, nil
}

func outcomeFromState(state string) portone.Outcome {
	switch state {
	case "fail":
		return portone.OutcomeFail
	case "requested":
		return portone.OutcomeRequested
	default:
		return portone.OutcomeSuccess
	}
}

func jsonRaw(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshalling gateway payload: %v", err)
	}
	return b
}
