package entity

import (
	"github.com/shopspring/decimal"
)

// Nested response shapes consumed by the storefront client.

// MenuWithServiceOptions backs the browse view. MinPrice is nil for a
// menu with no service options yet.
type MenuWithServiceOptions struct {
	Menu
	ServiceOptions []ServiceOption  `json:"service_options"`
	MinPrice       *decimal.Decimal `json:"min_price"`
}

// MenuWithReviews backs the menu detail view, review list unbounded.
type MenuWithReviews struct {
	Menu
	ServiceOptions []ServiceOption  `json:"service_options"`
	Reviews        []Review         `json:"reviews"`
	MinPrice       *decimal.Decimal `json:"min_price"`
}

// EventRequestWithDetails embeds the menu and service option rows as
// they are at read time, not as they were when the request was made.
type EventRequestWithDetails struct {
	EventRequest
	Menu          Menu          `json:"menu"`
	ServiceOption ServiceOption `json:"service_option"`
}
