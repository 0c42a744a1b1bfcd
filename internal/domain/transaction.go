package domain

import "time"

// Transaction is one audit log entry for a pickup request. Entries are
// append-only; they are never updated or deleted.
type Transaction struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id"`
	Action      string    `json:"action"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
}
