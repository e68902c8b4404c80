package db_models

import (
	"github.com/lib/pq"
)

type PeriodType string

const (
	PeriodMonthly PeriodType = "MONTHLY"
	PeriodYearly  PeriodType = "YEARLY"
)

type Product struct {
	BaseModel
	Name       string         `gorm:"uniqueIndex"` // e.g., "BASIC", "PREMIUM"
	Type       PeriodType     `gorm:"type:period_type"`
	PriceMinor int64          // 999 = $9.99
	Currency   string         `gorm:"size:3"` // ISO 4217 (e.g., "KRW","USD")
	Features   pq.StringArray `gorm:"type:text[]"`
	IsActive   bool           `gorm:"default:true"`
}
