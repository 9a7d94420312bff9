package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventRequest struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	CustomerName        string          `gorm:"not null" json:"customer_name"`
	CustomerEmail       string          `gorm:"not null" json:"customer_email"`
	CustomerPhone       *string         `json:"customer_phone"`
	MenuID              uint            `gorm:"not null" json:"menu_id"`
	ServiceOptionID     uint            `gorm:"not null" json:"service_option_id"`
	EventDate           string          `gorm:"type:date;not null" json:"event_date"`
	EventTime           string          `gorm:"not null" json:"event_time"`
	Location            string          `gorm:"not null" json:"location"`
	GuestCount          int             `gorm:"not null" json:"guest_count"`
	SpecialRequests     *string         `json:"special_requests"`
	DietaryRestrictions *string         `json:"dietary_restrictions"`
	TotalPrice          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status              EventStatus     `gorm:"not null;default:pending" json:"status"`
	ExternalRequestID   *string         `json:"external_request_id"`
	CheckoutURL         *string         `json:"checkout_url"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`

	// no cascade: an event request survives the deletion of its menu
	Menu          Menu          `json:"-"`
	ServiceOption ServiceOption `json:"-"`
}
