// repository/review_repository.go
package repository

import (
	"fmt"

	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	if err := r.DB.Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// FindByMenu does no existence check on the menu: an unknown menu id
// yields an empty slice.
func (r *ReviewRepository) FindByMenu(menuID uint) ([]entity.Review, error) {
	reviews := []entity.Review{}
	if err := r.DB.Where("menu_id = ?", menuID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews for menu %d: %w", menuID, err)
	}
	return reviews, nil
}
