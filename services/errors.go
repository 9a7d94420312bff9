package services

import "errors"

// Typed failures the transport layer maps onto status codes. Validation
// failures are *entity.ValidationError; anything else wrapping a storage
// error passes through untouched.
var (
	ErrMenuNotFound              = errors.New("menu not found")
	ErrServiceOptionNotFound     = errors.New("service option not found")
	ErrEventRequestNotFound      = errors.New("event request not found")
	ErrServiceOptionMenuMismatch = errors.New("service option does not belong to the specified menu")
)
