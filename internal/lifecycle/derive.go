package lifecycle

import (
	"errors"

	"townhubBack/internal/models"
)

// ErrTransitionDenied is returned by Apply when the requested move is not
// in the transition table.
var ErrTransitionDenied = errors.New("lifecycle: transition not permitted")

// Request status values derived from the request's responses.
const (
	RequestSubmitted = "submitted"
	RequestAccepted  = "accepted"
	RequestCompleted = "completed"
)

// DeriveRequestStatus computes a request's effective status from its
// responses: completed if any response completed, else accepted if any
// accepted, else submitted. Declined and pending responses never advance
// the request. This is the only definition of the derivation; every call
// site uses it.
func DeriveRequestStatus(responses []models.ServiceResponses) string {
	status := RequestSubmitted
	for _, r := range responses {
		switch r.Status {
		case StatusCompleted:
			return RequestCompleted
		case StatusAccepted:
			status = RequestAccepted
		}
	}
	return status
}
