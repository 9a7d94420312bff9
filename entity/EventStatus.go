package entity

// EventStatus is the lifecycle state of an event request. The intended
// progression is pending -> accepted|rejected -> confirmed -> completed,
// but updates accept any member of the set; nothing enforces the order.
type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusAccepted  EventStatus = "accepted"
	StatusRejected  EventStatus = "rejected"
	StatusConfirmed EventStatus = "confirmed"
	StatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}
