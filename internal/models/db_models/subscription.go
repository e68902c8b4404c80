package db_models

import (
	"github.com/google/uuid"
)

type Subscription struct {
	BaseModel
	UserID    uuid.UUID `gorm:"index"`
	ProductID uuid.UUID `gorm:"index"`

	// One subscription per payment; the index makes the duplicate check
	// hold under concurrent issuance as well.
	PaymentID uuid.UUID `gorm:"uniqueIndex"`

	ExpiredAt int64 `gorm:"not null;index"`

	User    User    `gorm:"foreignKey:UserID"`
	Product Product `gorm:"foreignKey:ProductID"`
	Payment Payment `gorm:"foreignKey:PaymentID"`
}
