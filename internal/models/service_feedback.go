package models

import "time"

// ServiceFeedback is a consumer's review of a completed response. At most
// one row exists per (response_id, consumer_id); submits after the first
// update the existing row.
type ServiceFeedback struct {
	ID            int        `json:"id"`
	RequestID     int        `json:"request_id"`
	ResponseID    int        `json:"response_id"`
	ConsumerID    int        `json:"consumer_id"`
	ProviderID    int        `json:"provider_id"`
	Rating        int        `json:"rating"`
	Quality       *int       `json:"quality,omitempty"`
	Communication *int       `json:"communication,omitempty"`
	Timeliness    *int       `json:"timeliness,omitempty"`
	Value         *int       `json:"value,omitempty"`
	Title         string     `json:"title"`
	Comment       string     `json:"comment"`
	Recommend     bool       `json:"recommend"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
