// services/menu_service.go
package services

import (
	"backend/entity"
	"backend/repository"
)

type MenuService struct {
	Menus   *repository.MenuRepository
	Options *repository.ServiceOptionRepository
	Reviews *repository.ReviewRepository
}

func NewMenuService(menus *repository.MenuRepository, options *repository.ServiceOptionRepository, reviews *repository.ReviewRepository) *MenuService {
	return &MenuService{Menus: menus, Options: options, Reviews: reviews}
}

func (s *MenuService) Create(in *entity.CreateMenuInput) (*entity.Menu, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	menu := &entity.Menu{
		Name:              in.Name,
		Description:       in.Description,
		ThumbnailImageURL: in.ThumbnailImageURL,
	}
	if err := s.Menus.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// List returns every menu with its service options and min price,
// ordered by menu name.
func (s *MenuService) List() ([]entity.MenuWithServiceOptions, error) {
	menus, err := s.Menus.FindAll()
	if err != nil {
		return nil, err
	}
	options, err := s.Options.FindAll()
	if err != nil {
		return nil, err
	}
	return assembleMenuList(menus, options), nil
}

// Get returns the menu detail view with its full review list, or
// (nil, nil) when the menu does not exist.
func (s *MenuService) Get(id uint) (*entity.MenuWithReviews, error) {
	menu, err := s.Menus.FindByID(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, nil
	}
	options, err := s.Options.FindByMenu(id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.FindByMenu(id)
	if err != nil {
		return nil, err
	}
	return assembleMenuDetail(menu, options, reviews), nil
}
