// services/service_option_service.go
package services

import (
	"backend/entity"
	"backend/repository"
)

type ServiceOptionService struct {
	Options *repository.ServiceOptionRepository
	Menus   *repository.MenuRepository
}

func NewServiceOptionService(options *repository.ServiceOptionRepository, menus *repository.MenuRepository) *ServiceOptionService {
	return &ServiceOptionService{Options: options, Menus: menus}
}

func (s *ServiceOptionService) Create(in *entity.CreateServiceOptionInput) (*entity.ServiceOption, error) {
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
	option := &entity.ServiceOption{
		MenuID:         in.MenuID,
		ServiceType:    in.ServiceType,
		PricePerPerson: in.PricePerPerson,
		Description:    in.Description,
	}
	if err := s.Options.Create(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *ServiceOptionService) ListByMenu(menuID uint) ([]entity.ServiceOption, error) {
	return s.Options.FindByMenu(menuID)
}
