package services

import (
	"context"
	"errors"
	"testing"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

func newFeedbackService(store *stubStore) *ServiceFeedbackService {
	return &ServiceFeedbackService{
		FeedbackRepo: store,
		ResponseRepo: store,
		RequestRepo:  stubRequests{store: store},
	}
}

func completedResponse(t *testing.T, store *stubStore, consumerID, providerID int) (models.ServiceRequest, models.ServiceResponses) {
	t.Helper()
	svc := newResponseService(store)
	ctx := context.Background()

	req := store.addRequest(consumerID, "need plumbing help")
	resp, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: providerID, Message: "I can help"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusAccepted, consumerID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusCompleted, providerID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	return req, store.responses[resp.ID]
}

func TestSubmitFeedbackRequiresCompletedResponse(t *testing.T) {
	store := newStubStore()
	respSvc := newResponseService(store)
	fbSvc := newFeedbackService(store)
	ctx := context.Background()

	const c1, p1 = 1, 2
	req := store.addRequest(c1, "need plumbing help")
	resp, err := respSvc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p1, Message: "I can help"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	fb := models.ServiceFeedback{ResponseID: resp.ID, Rating: 5, Title: "great", Comment: "solid work"}

	// pending
	if _, err := fbSvc.SubmitFeedback(ctx, fb, c1); !errors.Is(err, models.ErrInvalidState) {
		t.Fatalf("expected invalid state for pending response, got %v", err)
	}

	// accepted
	if _, err := respSvc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusAccepted, c1); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := fbSvc.SubmitFeedback(ctx, fb, c1); !errors.Is(err, models.ErrInvalidState) {
		t.Fatalf("expected invalid state for accepted response, got %v", err)
	}

	// completed
	if _, err := respSvc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusCompleted, p1); err != nil {
		t.Fatalf("complete: %v", err)
	}
	created, err := fbSvc.SubmitFeedback(ctx, fb, c1)
	if err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	if created.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", created.Rating)
	}
	if created.ProviderID != p1 || created.ConsumerID != c1 {
		t.Fatalf("ownership fields not filled from store: %+v", created)
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	store := newStubStore()
	fbSvc := newFeedbackService(store)
	ctx := context.Background()

	const c1, p1 = 1, 2
	_, resp := completedResponse(t, store, c1, p1)

	bad := []models.ServiceFeedback{
		{ResponseID: resp.ID, Rating: 0, Title: "t", Comment: "c"},
		{ResponseID: resp.ID, Rating: 6, Title: "t", Comment: "c"},
		{ResponseID: resp.ID, Rating: 3, Title: " ", Comment: "c"},
		{ResponseID: resp.ID, Rating: 3, Title: "t", Comment: ""},
	}
	for i, fb := range bad {
		if _, err := fbSvc.SubmitFeedback(ctx, fb, c1); !errors.Is(err, models.ErrValidation) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}

	six := 6
	fb := models.ServiceFeedback{ResponseID: resp.ID, Rating: 3, Title: "t", Comment: "c", Quality: &six}
	if _, err := fbSvc.SubmitFeedback(ctx, fb, c1); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for sub-rating out of range, got %v", err)
	}
}

func TestSubmitFeedbackForbiddenForNonConsumer(t *testing.T) {
	store := newStubStore()
	fbSvc := newFeedbackService(store)
	ctx := context.Background()

	const c1, p1 = 1, 2
	_, resp := completedResponse(t, store, c1, p1)

	fb := models.ServiceFeedback{ResponseID: resp.ID, Rating: 5, Title: "great", Comment: "nice"}
	if _, err := fbSvc.SubmitFeedback(ctx, fb, p1); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected forbidden for provider, got %v", err)
	}
	if len(store.feedback) != 0 {
		t.Fatalf("expected no feedback stored, got %d", len(store.feedback))
	}
}

// Re-submitting updates the existing feedback in place; the pair
// (response, consumer) never gains a second row.
func TestSubmitFeedbackUpserts(t *testing.T) {
	store := newStubStore()
	fbSvc := newFeedbackService(store)
	ctx := context.Background()

	const c1, p1 = 1, 2
	_, resp := completedResponse(t, store, c1, p1)

	first, err := fbSvc.SubmitFeedback(ctx, models.ServiceFeedback{ResponseID: resp.ID, Rating: 5, Title: "great", Comment: "solid"}, c1)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := fbSvc.SubmitFeedback(ctx, models.ServiceFeedback{ResponseID: resp.ID, Rating: 4, Title: "good", Comment: "revised"}, c1)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected update of existing feedback, got new id %d != %d", second.ID, first.ID)
	}
	if second.Rating != 4 {
		t.Fatalf("expected rating 4 after update, got %d", second.Rating)
	}
	if len(store.feedback) != 1 {
		t.Fatalf("expected exactly one feedback row, got %d", len(store.feedback))
	}
}
