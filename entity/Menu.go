package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Menu struct {
	ID                uint             `gorm:"primaryKey" json:"id"`
	Name              string           `gorm:"not null" json:"name"`
	Description       *string          `json:"description"`
	ThumbnailImageURL *string          `json:"thumbnail_image_url"`
	AverageRating     *decimal.Decimal `gorm:"type:decimal(3,2)" json:"average_rating"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`

	// deleting a menu takes its options and reviews with it
	ServiceOptions []ServiceOption `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reviews        []Review        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
