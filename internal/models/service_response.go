package models

import (
	"time"
)

// ServiceResponses is the single shared shape for a provider's offer on a
// request. All optional fields are declared here once; no per-handler
// variants.
type ServiceResponses struct {
	ID            int        `json:"id"`
	RequestID     int        `json:"request_id"`
	ProviderID    int        `json:"provider_id"`
	Message       string     `json:"message"`
	ContactEmail  *string    `json:"contact_email,omitempty"`
	ContactPhone  *string    `json:"contact_phone,omitempty"`
	EstimatedCost *string    `json:"estimated_cost,omitempty"`
	Availability  *string    `json:"availability,omitempty"`
	Status        string     `json:"response_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
