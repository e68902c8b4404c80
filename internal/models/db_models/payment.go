package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	BaseModel
	UserID    uuid.UUID `gorm:"index"`
	ProductID uuid.UUID `gorm:"index"`

	AmountMinor int64
	Currency    string        `gorm:"size:3"`
	Status      PaymentStatus `gorm:"type:payment_status;index"`

	// Gateway fields
	PgPaymentID string `gorm:"index"` // gateway transaction id (UUID issued by the PG)
	FailReason  string

	// Important timestamps (unix seconds)
	PaidAt     *int64
	RefundedAt *int64

	// Raw gateway payloads (purchase / cancellation snapshots)
	Receipt  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User    User    `gorm:"foreignKey:UserID"`
	Product Product `gorm:"foreignKey:ProductID"`
}
