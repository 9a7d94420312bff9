package entity

import (
	"time"
)

type Review struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MenuID        uint      `gorm:"not null;index" json:"menu_id"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	CustomerEmail string    `gorm:"not null" json:"customer_email"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       *string   `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}
