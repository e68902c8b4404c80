package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"subly/internal/models/db_models"
)

// ErrDuplicatePayment is returned by Create when the payment_id unique index
// rejects a second subscription for the same payment.
var ErrDuplicatePayment = errors.New("duplicate subscription for payment")

type ISubscriptionRepository interface {
	FindByPaymentID(ctx context.Context, paymentID string) (*db_models.Subscription, error)
	FindActiveByUserID(ctx context.Context, userID string, now int64) (*db_models.Subscription, error)
	Create(ctx context.Context, subscription *db_models.Subscription) error
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (s SubscriptionRepository) FindByPaymentID(ctx context.Context, paymentID string) (*db_models.Subscription, error) {

	var subscription db_models.Subscription
	err := s.db.WithContext(ctx).First(&subscription, "payment_id = ?", paymentID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &subscription, nil
}

// FindActiveByUserID returns the user's unexpired subscription, or nil when
// none exists. When several are unexpired the latest-expiring one wins.
func (s SubscriptionRepository) FindActiveByUserID(ctx context.Context, userID string, now int64) (*db_models.Subscription, error) {

	var subscription db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND expired_at > ?", userID, now).
		Order("expired_at DESC").
		First(&subscription).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &subscription, nil
}

func (s SubscriptionRepository) Create(ctx context.Context, subscription *db_models.Subscription) error {
	err := s.db.WithContext(ctx).Create(subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePayment
		}
		return err
	}
	return nil
}
