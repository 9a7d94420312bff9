// repository/service_option_repository.go
package repository

import (
	"errors"
	"fmt"

	"backend/entity"

	"gorm.io/gorm"
)

type ServiceOptionRepository struct {
	DB *gorm.DB
}

func NewServiceOptionRepository(db *gorm.DB) *ServiceOptionRepository {
	return &ServiceOptionRepository{DB: db}
}

func (r *ServiceOptionRepository) Create(option *entity.ServiceOption) error {
	if err := r.DB.Create(option).Error; err != nil {
		return fmt.Errorf("create service option: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no service option matches.
func (r *ServiceOptionRepository) FindByID(id uint) (*entity.ServiceOption, error) {
	var option entity.ServiceOption
	err := r.DB.First(&option, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service option %d: %w", id, err)
	}
	return &option, nil
}

// FindByMenu does no existence check on the menu: an unknown menu id
// yields an empty slice, same as a menu with no options.
func (r *ServiceOptionRepository) FindByMenu(menuID uint) ([]entity.ServiceOption, error) {
	options := []entity.ServiceOption{}
	if err := r.DB.Where("menu_id = ?", menuID).Order("service_type").Find(&options).Error; err != nil {
		return nil, fmt.Errorf("list service options for menu %d: %w", menuID, err)
	}
	return options, nil
}

// FindAll returns every service option across menus, ordered by service
// type within each menu. Used to assemble the browse view in one pass.
func (r *ServiceOptionRepository) FindAll() ([]entity.ServiceOption, error) {
	options := []entity.ServiceOption{}
	if err := r.DB.Order("service_type").Find(&options).Error; err != nil {
		return nil, fmt.Errorf("list service options: %w", err)
	}
	return options, nil
}
