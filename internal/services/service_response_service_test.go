package services

import (
	"context"
	"errors"
	"testing"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

func newResponseService(store *stubStore) *ServiceResponseService {
	return &ServiceResponseService{
		ResponseRepo: store,
		RequestRepo:  stubRequests{store: store},
	}
}

func TestSubmitResponse(t *testing.T) {
	store := newStubStore()
	svc := newResponseService(store)
	ctx := context.Background()

	req := store.addRequest(1, "need plumbing help")

	if _, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: 2, Message: "   "}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for empty message, got %v", err)
	}
	if _, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: 999, ProviderID: 2, Message: "hi"}); !errors.Is(err, models.ErrRequestNotFound) {
		t.Fatalf("expected request not found, got %v", err)
	}
	if _, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: 1, Message: "hi"}); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected forbidden for responding to own request, got %v", err)
	}

	resp, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: 2, Message: "I can help"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if resp.Status != lifecycle.StatusPending {
		t.Fatalf("expected pending status, got %s", resp.Status)
	}
}

func TestSubmitResponseNotifiesConsumer(t *testing.T) {
	store := newStubStore()
	notifier := &recordingNotifier{}
	svc := newResponseService(store)
	svc.Notifier = notifier
	ctx := context.Background()

	req := store.addRequest(1, "need plumbing help")
	if _, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: 2, Message: "I can help"}); err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != 1 {
		t.Fatalf("expected notification to consumer 1, got %v", notifier.sent)
	}
}

// Consumer C1 posts a request, provider P1 responds, C1 accepts, P1 marks
// complete. The response walks pending -> accepted -> completed and the
// request's derived status follows.
func TestLifecycleHappyPath(t *testing.T) {
	store := newStubStore()
	svc := newResponseService(store)
	ctx := context.Background()

	const c1, p1 = 1, 2
	req := store.addRequest(c1, "need plumbing help")
	resp, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p1, Message: "I can help"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	updated, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusAccepted, c1)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if updated.Status != lifecycle.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
	if store.requests[req.ID].Status != lifecycle.RequestAccepted {
		t.Fatalf("expected request status accepted, got %s", store.requests[req.ID].Status)
	}

	updated, err = svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusCompleted, p1)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if updated.Status != lifecycle.StatusCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
	if store.requests[req.ID].Status != lifecycle.RequestCompleted {
		t.Fatalf("expected request status completed, got %s", store.requests[req.ID].Status)
	}
}

func TestForbiddenTransitionLeavesStatusUnchanged(t *testing.T) {
	store := newStubStore()
	svc := newResponseService(store)
	ctx := context.Background()

	const c1, p1, stranger = 1, 2, 7
	req := store.addRequest(c1, "need plumbing help")
	resp, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p1, Message: "I can help"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	// Providers cannot accept their own response, and strangers cannot
	// touch it at all.
	for _, actor := range []int{p1, stranger} {
		if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusAccepted, actor); !errors.Is(err, models.ErrForbidden) {
			t.Fatalf("expected forbidden for actor %d, got %v", actor, err)
		}
	}
	if store.responses[resp.ID].Status != lifecycle.StatusPending {
		t.Fatalf("expected status unchanged, got %s", store.responses[resp.ID].Status)
	}

	// Completing a pending response is forbidden territory for strangers
	// before it is an invalid transition.
	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusCompleted, stranger); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestDeclineIsTerminal(t *testing.T) {
	store := newStubStore()
	svc := newResponseService(store)
	ctx := context.Background()

	const c1, p2 = 1, 3
	req := store.addRequest(c1, "need plumbing help")
	resp, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p2, Message: "me too"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusDeclined, c1); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusCompleted, p2); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition out of declined, got %v", err)
	}
	if store.responses[resp.ID].Status != lifecycle.StatusDeclined {
		t.Fatalf("expected declined to stick, got %s", store.responses[resp.ID].Status)
	}
}

func TestCompletingPendingResponseFails(t *testing.T) {
	store := newStubStore()
	svc := newResponseService(store)
	ctx := context.Background()

	const c1, p1 = 1, 2
	req := store.addRequest(c1, "fence repair")
	resp, err := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p1, Message: "on it"})
	if err != nil {
		t.Fatalf("SubmitResponse: %v", err)
	}

	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusCompleted, c1); !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for pending -> completed, got %v", err)
	}
	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, lifecycle.StatusPending, c1); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for pending target, got %v", err)
	}
	if _, err := svc.UpdateResponseStatus(ctx, resp.ID, "archived", c1); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}
}

// Accepting one response must not auto-decline its siblings; multiple
// accepted offers may coexist until one completes.
func TestSiblingResponsesStayIndependent(t *testing.T) {
	store := newStubStore()
	svc := newResponseService(store)
	ctx := context.Background()

	const c1, p1, p2, p3 = 1, 2, 3, 4
	req := store.addRequest(c1, "need plumbing help")

	resp1, _ := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p1, Message: "a"})
	resp2, _ := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p2, Message: "b"})
	resp3, _ := svc.SubmitResponse(ctx, models.ServiceResponses{RequestID: req.ID, ProviderID: p3, Message: "c"})

	if _, err := svc.UpdateResponseStatus(ctx, resp2.ID, lifecycle.StatusDeclined, c1); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if _, err := svc.UpdateResponseStatus(ctx, resp3.ID, lifecycle.StatusAccepted, c1); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if store.responses[resp1.ID].Status != lifecycle.StatusPending {
		t.Fatalf("expected sibling to stay pending, got %s", store.responses[resp1.ID].Status)
	}
	if store.requests[req.ID].Status != lifecycle.RequestAccepted {
		t.Fatalf("expected derived status accepted, got %s", store.requests[req.ID].Status)
	}

	if _, err := svc.UpdateResponseStatus(ctx, resp3.ID, lifecycle.StatusCompleted, c1); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if store.requests[req.ID].Status != lifecycle.RequestCompleted {
		t.Fatalf("expected derived status completed, got %s", store.requests[req.ID].Status)
	}
}
