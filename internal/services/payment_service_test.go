package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"subly/internal/gateway/portone"
	"subly/internal/models/db_models"
	"subly/internal/models/request_models"
	"subly/pkg/utils"
)

type paymentRepoStub struct {
	latest  *db_models.Payment
	updates []map[string]interface{}
	repoErr error
}

func (s *paymentRepoStub) GetLatestByUserID(_ context.Context, _ string) (*db_models.Payment, error) {
	if s.repoErr != nil {
		return nil, s.repoErr
	}
	return s.latest, nil
}

func (s *paymentRepoStub) FindByID(_ context.Context, _ string) (*db_models.Payment, error) {
	return s.latest, nil
}

func (s *paymentRepoStub) Create(_ context.Context, payment *db_models.Payment) error {
	if s.repoErr != nil {
		return s.repoErr
	}
	payment.ID = uuid.New()
	s.latest = payment
	return nil
}

func (s *paymentRepoStub) Update(_ context.Context, _ *db_models.Payment, fields map[string]interface{}) error {
	if s.repoErr != nil {
		return s.repoErr
	}
	s.updates = append(s.updates, fields)
	return nil
}

func newTestPaymentService(payments *paymentRepoStub, products *productRepoStub, now time.Time) *paymentService {
	svc := NewPaymentService(payments, products).(*paymentService)
	svc.now = func() time.Time { return now }
	return svc
}

func paidPayment(product *db_models.Product) *db_models.Payment {
	paidAt := time.Now().Add(-time.Hour).Unix()
	return &db_models.Payment{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		UserID:      uuid.New(),
		ProductID:   product.ID,
		AmountMinor: product.PriceMinor,
		Currency:    product.Currency,
		Status:      db_models.PaymentStatusPaid,
		PgPaymentID: uuid.NewString(),
		PaidAt:      &paidAt,
		Product:     *product,
	}
}

func TestGetLatestPaymentNotFound(t *testing.T) {
	svc := newTestPaymentService(&paymentRepoStub{}, newProductRepoStub(), time.Now())

	_, err := svc.GetLatestPayment(context.Background(), uuid.New())

	require.ErrorIs(t, err, utils.ErrPaymentNotFound)
}

func TestGetLatestPaymentProjectsProduct(t *testing.T) {
	product := basicProduct()
	payment := paidPayment(product)
	svc := newTestPaymentService(&paymentRepoStub{latest: payment}, newProductRepoStub(product), time.Now())

	out, err := svc.GetLatestPayment(context.Background(), payment.UserID)

	require.NoError(t, err)
	assert.Equal(t, payment.ID, out.ID)
	assert.Equal(t, payment.PgPaymentID, out.PgPaymentID)
	assert.Equal(t, "paid", out.Status)
	assert.Equal(t, product.ID, out.Product.ID)
	assert.Equal(t, "MONTHLY", out.Product.Type)
	assert.Equal(t, int64(1000), out.Product.Price)
}

func TestCheckoutSuccess(t *testing.T) {
	product := basicProduct()
	payments := &paymentRepoStub{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestPaymentService(payments, newProductRepoStub(product), now)

	out, err := svc.Checkout(context.Background(), uuid.New(), request_models.CheckoutRequest{
		ProductID: product.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "paid", out.Status)
	assert.NotEmpty(t, out.PgPaymentID)
	assert.Equal(t, product.PriceMinor, out.Amount)
	require.NotNil(t, out.PaidAt)
	assert.Equal(t, now.Unix(), *out.PaidAt)

	require.Len(t, payments.updates, 1)
	assert.Equal(t, db_models.PaymentStatusPaid, payments.updates[0]["status"])
}

func TestCheckoutGatewayFailure(t *testing.T) {
	product := basicProduct()
	payments := &paymentRepoStub{}
	svc := newTestPaymentService(payments, newProductRepoStub(product), time.Now())

	out, err := svc.Checkout(context.Background(), uuid.New(), request_models.CheckoutRequest{
		ProductID: product.ID,
		State:     "fail",
	})

	require.NoError(t, err)
	assert.Equal(t, "failed", out.Status)
	assert.Empty(t, out.PgPaymentID)
	assert.Nil(t, out.PaidAt)
	assert.NotEmpty(t, out.FailReason)
}

func TestCheckoutProductNotFound(t *testing.T) {
	svc := newTestPaymentService(&paymentRepoStub{}, newProductRepoStub(), time.Now())

	_, err := svc.Checkout(context.Background(), uuid.New(), request_models.CheckoutRequest{
		ProductID: uuid.New(),
	})

	require.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestRefundSuccess(t *testing.T) {
	product := basicProduct()
	payment := paidPayment(product)
	payments := &paymentRepoStub{latest: payment}
	svc := newTestPaymentService(payments, newProductRepoStub(product), time.Now())

	out, err := svc.Refund(context.Background(), payment.UserID, request_models.RefundRequest{
		Reason: "changed my mind",
	})

	require.NoError(t, err)
	assert.Equal(t, "SUCCEED", out.ResultStatus)
	assert.Equal(t, payment.AmountMinor, out.RequestAmount)
	require.NotNil(t, out.RefundAmount)
	assert.Equal(t, payment.AmountMinor, *out.RefundAmount)

	require.Len(t, payments.updates, 1)
	assert.Equal(t, db_models.PaymentStatusRefunded, payments.updates[0]["status"])
}

func TestRefundRequested(t *testing.T) {
	product := basicProduct()
	payment := paidPayment(product)
	payments := &paymentRepoStub{latest: payment}
	svc := newTestPaymentService(payments, newProductRepoStub(product), time.Now())

	out, err := svc.Refund(context.Background(), payment.UserID, request_models.RefundRequest{
		Reason: "pending review",
		State:  "requested",
	})

	require.NoError(t, err)
	assert.Equal(t, "REQUESTED", out.ResultStatus)
	assert.Nil(t, out.RefundAmount)
	assert.Empty(t, payments.updates, "a requested cancellation must not settle the payment")
}

func TestRefundFailed(t *testing.T) {
	product := basicProduct()
	payment := paidPayment(product)
	payments := &paymentRepoStub{latest: payment}
	svc := newTestPaymentService(payments, newProductRepoStub(product), time.Now())

	out, err := svc.Refund(context.Background(), payment.UserID, request_models.RefundRequest{
		Reason: "too late",
		State:  "fail",
	})

	require.NoError(t, err)
	assert.Equal(t, "FAILED", out.ResultStatus)
	assert.Nil(t, out.RefundAmount)
	assert.Empty(t, payments.updates)
}

func TestJSONRawEncodesGatewayPayload(t *testing.T) {
	result := portone.BuildCancellationResult("pg-tx", portone.CancelRequest{
		Reason: "receipt snapshot",
		Amount: 10000,
	}, portone.OutcomeSuccess)

	raw := jsonRaw(result)
	require.NotEmpty(t, raw)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "receipt snapshot", decoded["Reason"])
}

func TestRefundRequiresPaidPayment(t *testing.T) {
	product := basicProduct()
	payment := paidPayment(product)
	payment.Status = db_models.PaymentStatusPending
	svc := newTestPaymentService(&paymentRepoStub{latest: payment}, newProductRepoStub(product), time.Now())

	_, err := svc.Refund(context.Background(), payment.UserID, request_models.RefundRequest{Reason: "x"})

	require.ErrorIs(t, err, utils.ErrPaymentNotFound)
}
