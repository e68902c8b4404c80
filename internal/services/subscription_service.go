package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"subly/internal/models/db_models"
	"subly/internal/models/response_models"
	"subly/internal/repositories"
	"subly/pkg/utils"
)

type CreateSubscriptionInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Period    db_models.PeriodType
	PaymentID uuid.UUID
}

// UserLookup is the narrow read-only contract the reissue workflow needs
// from the user side; the concrete user service satisfies it.
type UserLookup interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*response_models.UserOutput, error)
}

// LatestPaymentSource resolves the caller's most recent payment, product
// joined. Ordering and the zero-payment failure mode belong to the
// implementation.
type LatestPaymentSource interface {
	GetLatestPayment(ctx context.Context, userID uuid.UUID) (*response_models.LatestPaymentOutput, error)
}

type SubscriptionService interface {
	CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*response_models.SubscriptionOutput, error)
	ReissueSubscription(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionOutput, error)
	GetCurrentSubscription(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error)
}

type subscriptionService struct {
	subscriptionRepo repositories.ISubscriptionRepository
	productRepo      repositories.IProductRepository
	users            UserLookup
	payments         LatestPaymentSource
	now              func() time.Time
}

func NewSubscriptionService(
	subscriptionRepo repositories.ISubscriptionRepository,
	productRepo repositories.IProductRepository,
	users UserLookup,
	payments LatestPaymentSource,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		productRepo:      productRepo,
		users:            users,
		payments:         payments,
		now:              time.Now,
	}
}

// CalculateExpiration computes a subscription's expiry from its start.
// YEARLY adds one calendar year, everything else one calendar month, with
// time.AddDate's normalization at month/year boundaries (Jan 31 + 1 month
// lands in early March, Feb 29 + 1 year on Mar 1).
func CalculateExpiration(start time.Time, period db_models.PeriodType) time.Time {
	if period == db_models.PeriodYearly {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}

// CreateSubscription issues one subscription for a completed payment.
// The duplicate-payment check runs before the product lookup, so a repeated
// payment id reports Conflict even when its product is gone.
func (s *subscriptionService) CreateSubscription(ctx context.Context, input CreateSubscriptionInput) (*response_models.SubscriptionOutput, error) {

	duplicate, err := s.subscriptionRepo.FindByPaymentID(ctx, input.PaymentID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if duplicate != nil {
		return nil, utils.ErrSubscriptionAlreadyIssued
	}

	product, err := s.productRepo.FindByID(ctx, input.ProductID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	expiredAt := CalculateExpiration(s.now(), input.Period)

	subscription := &db_models.Subscription{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		PaymentID: input.PaymentID,
		ExpiredAt: expiredAt.Unix(),
	}

	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		// A concurrent issuance for the same payment trips the unique
		// index instead of the check above; same caller-visible outcome.
		if errors.Is(err, repositories.ErrDuplicatePayment) {
			return nil, utils.ErrSubscriptionAlreadyIssued
		}
		return nil, utils.ErrDatabaseError
	}

	return buildSubscriptionOutput(subscription, product), nil
}

// ReissueSubscription re-runs issuance for the user's latest payment. Safe
// to retry: a payment that already has its subscription hits the Conflict
// path in CreateSubscription.
func (s *subscriptionService) ReissueSubscription(ctx context.Context, userID uuid.UUID) (*response_models.SubscriptionOutput, error) {

	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	payment, err := s.payments.GetLatestPayment(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.CreateSubscription(ctx, CreateSubscriptionInput{
		UserID:    userID,
		ProductID: payment.Product.ID,
		Period:    db_models.PeriodType(payment.Product.Type),
		PaymentID: payment.ID,
	})
}

// GetCurrentSubscription returns the user's unexpired subscription, or nil
// when there is none. No subscription is a normal state, not an error.
func (s *subscriptionService) GetCurrentSubscription(ctx context.Context, userID uuid.UUID) (*db_models.Subscription, error) {

	subscription, err := s.subscriptionRepo.FindActiveByUserID(ctx, userID.String(), s.now().Unix())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return subscription, nil
}

func buildSubscriptionOutput(subscription *db_models.Subscription, product *db_models.Product) *response_models.SubscriptionOutput {
	return &response_models.SubscriptionOutput{
		ID:            subscription.ID,
		ExpiredAt:     subscription.ExpiredAt,
		ExpiredAtText: utils.FormatRFC3339KST(utils.FromUnixSecondsKST(subscription.ExpiredAt)),
		Product: response_models.ProductOutput{
			ID:    product.ID,
			Name:  product.Name,
			Type:  string(product.Type),
			Price: product.PriceMinor,
		},
	}
}
