// repository/event_request_repository.go
package repository

import (
	"errors"
	"fmt"

	"backend/entity"

	"gorm.io/gorm"
)

type EventRequestRepository struct {
	DB *gorm.DB
}

func NewEventRequestRepository(db *gorm.DB) *EventRequestRepository {
	return &EventRequestRepository{DB: db}
}

func (r *EventRequestRepository) Create(request *entity.EventRequest) error {
	if err := r.DB.Create(request).Error; err != nil {
		return fmt.Errorf("create event request: %w", err)
	}
	return nil
}

// FindByID loads the request with its menu and service option as they
// are now. Returns (nil, nil) when no request matches.
func (r *EventRequestRepository) FindByID(id uint) (*entity.EventRequest, error) {
	var request entity.EventRequest
	err := r.DB.
		Preload("Menu").
		Preload("ServiceOption").
		First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event request %d: %w", id, err)
	}
	return &request, nil
}

func (r *EventRequestRepository) FindAll() ([]entity.EventRequest, error) {
	requests := []entity.EventRequest{}
	err := r.DB.
		Preload("Menu").
		Preload("ServiceOption").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("list event requests: %w", err)
	}
	return requests, nil
}

// UpdateStatus touches status, checkout_url and updated_at only, and
// reports how many rows matched so the caller can tell a missing id
// from a no-op.
func (r *EventRequestRepository) UpdateStatus(id uint, status entity.EventStatus, checkoutURL *string) (int64, error) {
	res := r.DB.Model(&entity.EventRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"checkout_url": checkoutURL,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("update event request %d status: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
