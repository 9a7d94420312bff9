// repository/menu_repository.go
package repository

import (
	"errors"
	"fmt"

	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	if err := r.DB.Create(menu).Error; err != nil {
		return fmt.Errorf("create menu: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no menu matches.
func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find menu %d: %w", id, err)
	}
	return &menu, nil
}

// FindAll returns every menu ordered by name for deterministic listing.
func (r *MenuRepository) FindAll() ([]entity.Menu, error) {
	menus := []entity.Menu{}
	if err := r.DB.Order("name").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return menus, nil
}

func (r *MenuRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Menu{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check menu %d: %w", id, err)
	}
	return count > 0, nil
}
