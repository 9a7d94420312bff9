package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type ServiceOption struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	MenuID         uint            `gorm:"not null;index" json:"menu_id"`
	ServiceType    ServiceType     `gorm:"not null" json:"service_type"`
	PricePerPerson decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_person"`
	Description    *string         `json:"description"`
	CreatedAt      time.Time       `json:"created_at"`
}
