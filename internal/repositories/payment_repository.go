package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"subly/internal/models/db_models"
)

type IPaymentRepository interface {
	GetLatestByUserID(ctx context.Context, userID string) (*db_models.Payment, error)
	FindByID(ctx context.Context, paymentID string) (*db_models.Payment, error)
	Create(ctx context.Context, payment *db_models.Payment) error
	Update(ctx context.Context, payment *db_models.Payment, fields map[string]interface{}) error
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

// GetLatestByUserID returns the user's most recent payment with its product
// joined, or nil when the user has no payments yet.
func (p PaymentRepository) GetLatestByUserID(ctx context.Context, userID string) (*db_models.Payment, error) {

	var payment db_models.Payment
	err := p.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&payment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

func (p PaymentRepository) FindByID(ctx context.Context, paymentID string) (*db_models.Payment, error) {

	var payment db_models.Payment
	err := p.db.WithContext(ctx).Preload("Product").First(&payment, "id = ?", paymentID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

func (p PaymentRepository) Create(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Create(payment).Error
}

func (p PaymentRepository) Update(ctx context.Context, payment *db_models.Payment, fields map[string]interface{}) error {
	return p.db.WithContext(ctx).Model(payment).Updates(fields).Error
}
