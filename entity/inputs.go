package entity

import (
	"net/mail"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs for every write operation, with the acceptance rules
// attached. Controllers bind these from JSON; services call Validate
// before touching storage so the rules hold no matter who calls them.

type CreateMenuInput struct {
	Name              string  `json:"name" binding:"required"`
	Description       *string `json:"description"`
	ThumbnailImageURL *string `json:"thumbnail_image_url"`
}

func (in *CreateMenuInput) Validate() error {
	if in.Name == "" {
		return invalid("name", "must not be empty")
	}
	if in.ThumbnailImageURL != nil && !wellFormedURL(*in.ThumbnailImageURL) {
		return invalid("thumbnail_image_url", "must be a valid URL")
	}
	return nil
}

type CreateServiceOptionInput struct {
	MenuID         uint            `json:"menu_id" binding:"required"`
	ServiceType    ServiceType     `json:"service_type" binding:"required"`
	PricePerPerson decimal.Decimal `json:"price_per_person"`
	Description    *string         `json:"description"`
}

func (in *CreateServiceOptionInput) Validate() error {
	if in.MenuID == 0 {
		return invalid("menu_id", "is required")
	}
	if !in.ServiceType.Valid() {
		return invalid("service_type", "must be one of plated, buffet, cook-along")
	}
	if !in.PricePerPerson.IsPositive() {
		return invalid("price_per_person", "must be a positive number")
	}
	return nil
}

type CreateEventRequestInput struct {
	CustomerName        string  `json:"customer_name" binding:"required"`
	CustomerEmail       string  `json:"customer_email" binding:"required"`
	CustomerPhone       *string `json:"customer_phone"`
	MenuID              uint    `json:"menu_id" binding:"required"`
	ServiceOptionID     uint    `json:"service_option_id" binding:"required"`
	EventDate           string  `json:"event_date" binding:"required"`
	EventTime           string  `json:"event_time"`
	Location            string  `json:"location" binding:"required"`
	GuestCount          int     `json:"guest_count" binding:"required"`
	SpecialRequests     *string `json:"special_requests"`
	DietaryRestrictions *string `json:"dietary_restrictions"`
}

func (in *CreateEventRequestInput) Validate() error {
	if in.CustomerName == "" {
		return invalid("customer_name", "must not be empty")
	}
	if !validEmail(in.CustomerEmail) {
		return invalid("customer_email", "must be a valid email address")
	}
	if in.MenuID == 0 {
		return invalid("menu_id", "is required")
	}
	if in.ServiceOptionID == 0 {
		return invalid("service_option_id", "is required")
	}
	// any calendar date is fine, past dates included
	if _, err := time.Parse("2006-01-02", in.EventDate); err != nil {
		return invalid("event_date", "must be a date in YYYY-MM-DD format")
	}
	if in.Location == "" {
		return invalid("location", "must not be empty")
	}
	if in.GuestCount <= 0 {
		return invalid("guest_count", "must be a positive integer")
	}
	return nil
}

type UpdateEventRequestStatusInput struct {
	ID          uint        `json:"id"`
	Status      EventStatus `json:"status" binding:"required"`
	CheckoutURL *string     `json:"checkout_url"`
}

func (in *UpdateEventRequestStatusInput) Validate() error {
	if !in.Status.Valid() {
		return invalid("status", "must be one of pending, accepted, rejected, confirmed, completed")
	}
	if in.CheckoutURL != nil && !wellFormedURL(*in.CheckoutURL) {
		return invalid("checkout_url", "must be a valid URL")
	}
	return nil
}

type CreateReviewInput struct {
	MenuID        uint    `json:"menu_id" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required"`
	Rating        int     `json:"rating" binding:"required,min=1,max=5"`
	Comment       *string `json:"comment"`
}

func (in *CreateReviewInput) Validate() error {
	if in.MenuID == 0 {
		return invalid("menu_id", "is required")
	}
	if in.CustomerName == "" {
		return invalid("customer_name", "must not be empty")
	}
	if !validEmail(in.CustomerEmail) {
		return invalid("customer_email", "must be a valid email address")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return invalid("rating", "must be between 1 and 5")
	}
	return nil
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func wellFormedURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
