package entity

// ServiceType is how a menu is delivered to guests.
type ServiceType string

const (
	ServiceTypePlated    ServiceType = "plated"
	ServiceTypeBuffet    ServiceType = "buffet"
	ServiceTypeCookAlong ServiceType = "cook-along"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypePlated, ServiceTypeBuffet, ServiceTypeCookAlong:
		return true
	}
	return false
}
