package lifecycle

import (
	"testing"

	"townhubBack/internal/models"
)

func TestDeriveRequestStatus(t *testing.T) {
	if got := DeriveRequestStatus(nil); got != RequestSubmitted {
		t.Fatalf("expected submitted for no responses, got %s", got)
	}

	responses := []models.ServiceResponses{
		{ID: 1, Status: StatusPending},
		{ID: 2, Status: StatusDeclined},
		{ID: 3, Status: StatusAccepted},
	}
	if got := DeriveRequestStatus(responses); got != RequestAccepted {
		t.Fatalf("expected accepted, got %s", got)
	}

	responses[2].Status = StatusCompleted
	if got := DeriveRequestStatus(responses); got != RequestCompleted {
		t.Fatalf("expected completed, got %s", got)
	}
}

func TestDeriveRequestStatusIgnoresDeclined(t *testing.T) {
	responses := []models.ServiceResponses{
		{ID: 1, Status: StatusDeclined},
		{ID: 2, Status: StatusDeclined},
	}
	if got := DeriveRequestStatus(responses); got != RequestSubmitted {
		t.Fatalf("expected submitted when all responses declined, got %s", got)
	}
}
