package domain

import "time"

type RequestStatus string

const (
	StatusSubmitted RequestStatus = "submitted"
	StatusAssigned  RequestStatus = "assigned"
	StatusAccepted  RequestStatus = "accepted"
	StatusPickedUp  RequestStatus = "picked_up"
	StatusCompleted RequestStatus = "completed"
)

// ParseStatus validates a wire-level status string against the closed status
// set. It does not enforce any ordering between statuses; an administrator or
// the assigned collector may move a request to any status.
func ParseStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusSubmitted, StatusAssigned, StatusAccepted, StatusPickedUp, StatusCompleted:
		return RequestStatus(s), nil
	}
	return "", ErrInvalidInput
}

type PickupRequest struct {
	ID                  string        `json:"id"`
	UserID              string        `json:"user_id"`
	Description         string        `json:"description"`
	Quantity            string        `json:"quantity"`
	PickupAddress       string        `json:"pickup_address"`
	ContactInfo         string        `json:"contact_info"`
	Status              RequestStatus `json:"status"`
	AssignedCollectorID *string       `json:"assigned_collector_id"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
