package models

import "time"

// Complaint is a moderation report against a post, listing or user.
type Complaint struct {
	ID         int       `json:"id"`
	ReporterID int       `json:"reporter_id"`
	TargetType string    `json:"target_type"`
	TargetID   int       `json:"target_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
