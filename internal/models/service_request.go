package models

import (
	"time"
)

// ServiceRequest is a consumer's ask for help. Its status is derived from
// the states of its responses and is refreshed whenever a response changes;
// callers must treat it as recomputable, not authoritative.
type ServiceRequest struct {
	ID          int        `json:"id"`
	ConsumerID  int        `json:"consumer_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category,omitempty"`
	City        string     `json:"city,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
