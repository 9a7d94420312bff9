// services/views.go
package services

import (
	"backend/entity"

	"github.com/shopspring/decimal"
)

// View assembly: pure functions joining rows into the nested shapes the
// client consumes, plus the min-price aggregate.

// MinPrice returns the lowest price-per-person among the options, or
// nil when there are none. Comparison is exact decimal, never string.
func MinPrice(options []entity.ServiceOption) *decimal.Decimal {
	if len(options) == 0 {
		return nil
	}
	min := options[0].PricePerPerson
	for _, option := range options[1:] {
		if option.PricePerPerson.LessThan(min) {
			min = option.PricePerPerson
		}
	}
	return &min
}

func assembleMenuList(menus []entity.Menu, options []entity.ServiceOption) []entity.MenuWithServiceOptions {
	byMenu := make(map[uint][]entity.ServiceOption)
	for _, option := range options {
		byMenu[option.MenuID] = append(byMenu[option.MenuID], option)
	}

	views := make([]entity.MenuWithServiceOptions, 0, len(menus))
	for _, menu := range menus {
		menuOptions := byMenu[menu.ID]
		if menuOptions == nil {
			menuOptions = []entity.ServiceOption{}
		}
		views = append(views, entity.MenuWithServiceOptions{
			Menu:           menu,
			ServiceOptions: menuOptions,
			MinPrice:       MinPrice(menuOptions),
		})
	}
	return views
}

func assembleMenuDetail(menu *entity.Menu, options []entity.ServiceOption, reviews []entity.Review) *entity.MenuWithReviews {
	return &entity.MenuWithReviews{
		Menu:           *menu,
		ServiceOptions: options,
		Reviews:        reviews,
		MinPrice:       MinPrice(options),
	}
}

func assembleEventRequest(request *entity.EventRequest) *entity.EventRequestWithDetails {
	return &entity.EventRequestWithDetails{
		EventRequest:  *request,
		Menu:          request.Menu,
		ServiceOption: request.ServiceOption,
	}
}
