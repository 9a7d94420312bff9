// services/event_request_service.go
package services

import (
	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
)

type EventRequestService struct {
	Requests *repository.EventRequestRepository
	Menus    *repository.MenuRepository
	Options  *repository.ServiceOptionRepository
}

func NewEventRequestService(requests *repository.EventRequestRepository, menus *repository.MenuRepository, options *repository.ServiceOptionRepository) *EventRequestService {
	return &EventRequestService{Requests: requests, Menus: menus, Options: options}
}

// Create validates the booking, checks that the menu and service option
// exist and belong together, snapshots total_price and inserts the row
// as pending. The checks and the insert are independent statements; a
// menu deleted in between is a known race we accept for this workload.
func (s *EventRequestService) Create(in *entity.CreateEventRequestInput) (*entity.EventRequestWithDetails, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	menu, err := s.Menus.FindByID(in.MenuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}

	option, err := s.Options.FindByID(in.ServiceOptionID)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, ErrServiceOptionNotFound
	}
	if option.MenuID != in.MenuID {
		return nil, ErrServiceOptionMenuMismatch
	}

	// snapshot: later price changes must not touch past bookings
	total := option.PricePerPerson.Mul(decimal.NewFromInt(int64(in.GuestCount)))

	request := &entity.EventRequest{
		CustomerName:        in.CustomerName,
		CustomerEmail:       in.CustomerEmail,
		CustomerPhone:       in.CustomerPhone,
		MenuID:              in.MenuID,
		ServiceOptionID:     in.ServiceOptionID,
		EventDate:           in.EventDate,
		EventTime:           in.EventTime,
		Location:            in.Location,
		GuestCount:          in.GuestCount,
		SpecialRequests:     in.SpecialRequests,
		DietaryRestrictions: in.DietaryRestrictions,
		TotalPrice:          total,
		Status:              entity.StatusPending,
	}
	if err := s.Requests.Create(request); err != nil {
		return nil, err
	}

	request.Menu = *menu
	request.ServiceOption = *option
	return assembleEventRequest(request), nil
}

func (s *EventRequestService) List() ([]entity.EventRequestWithDetails, error) {
	requests, err := s.Requests.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]entity.EventRequestWithDetails, 0, len(requests))
	for i := range requests {
		views = append(views, *assembleEventRequest(&requests[i]))
	}
	return views, nil
}

// Get returns (nil, nil) when the event request does not exist.
func (s *EventRequestService) Get(id uint) (*entity.EventRequestWithDetails, error) {
	request, err := s.Requests.FindByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	return assembleEventRequest(request), nil
}

// UpdateStatus sets status and checkout_url on an existing request and
// returns the refreshed detail view. Any status from the set is
// accepted regardless of the current one.
func (s *EventRequestService) UpdateStatus(in *entity.UpdateEventRequestStatusInput) (*entity.EventRequestWithDetails, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	affected, err := s.Requests.UpdateStatus(in.ID, in.Status, in.CheckoutURL)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrEventRequestNotFound
	}
	request, err := s.Requests.FindByID(in.ID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrEventRequestNotFound
	}
	return assembleEventRequest(request), nil
}
