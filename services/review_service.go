// services/review_service.go
package services

import (
	"backend/entity"
	"backend/repository"
)

type ReviewService struct {
	Reviews *repository.ReviewRepository
	Menus   *repository.MenuRepository
}

func NewReviewService(reviews *repository.ReviewRepository, menus *repository.MenuRepository) *ReviewService {
	return &ReviewService{Reviews: reviews, Menus: menus}
}

// Create stores the review. menus.average_rating is not recomputed
// here; no write path aggregates reviews back onto the menu.
func (s *ReviewService) Create(in *entity.CreateReviewInput) (*entity.Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	exists, err := s.Menus.Exists(in.MenuID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrMenuNotFound
	}
	review := &entity.Review{
		MenuID:        in.MenuID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}
	if err := s.Reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByMenu(menuID uint) ([]entity.Review, error) {
	return s.Reviews.FindByMenu(menuID)
}
