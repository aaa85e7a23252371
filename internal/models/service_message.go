package models

import "time"

// ServiceMessage is one entry in the request/response thread between a
// consumer and a provider. Rows are append-only; only the read flag is
// ever updated.
type ServiceMessage struct {
	ID          int       `json:"id"`
	RequestID   int       `json:"request_id"`
	ResponseID  *int      `json:"response_id,omitempty"`
	SenderID    int       `json:"sender_id"`
	RecipientID int       `json:"recipient_id"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
