package services

import (
	"context"
	"fmt"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

// stubStore is an in-memory stand-in for the request/response/feedback
// repositories. UpdateStatus mirrors the real repository: compare-and-swap
// on the current status and a derived-status refresh of the owning request.
type stubStore struct {
	requests  map[int]models.ServiceRequest
	responses map[int]models.ServiceResponses
	feedback  map[string]models.ServiceFeedback
	nextID    int
}

func newStubStore() *stubStore {
	return &stubStore{
		requests:  make(map[int]models.ServiceRequest),
		responses: make(map[int]models.ServiceResponses),
		feedback:  make(map[string]models.ServiceFeedback),
		nextID:    1,
	}
}

func (s *stubStore) addRequest(consumerID int, title string) models.ServiceRequest {
	req := models.ServiceRequest{ID: s.nextID, ConsumerID: consumerID, Title: title, Description: title, Status: lifecycle.RequestSubmitted}
	s.nextID++
	s.requests[req.ID] = req
	return req
}

func (s *stubStore) GetByID(ctx context.Context, id int) (models.ServiceResponses, error) {
	resp, ok := s.responses[id]
	if !ok {
		return models.ServiceResponses{}, models.ErrResponseNotFound
	}
	return resp, nil
}

func (s *stubStore) CreateResponse(ctx context.Context, resp models.ServiceResponses) (models.ServiceResponses, error) {
	resp.ID = s.nextID
	s.nextID++
	resp.Status = lifecycle.StatusPending
	s.responses[resp.ID] = resp
	return resp, nil
}

func (s *stubStore) GetByRequestID(ctx context.Context, requestID int) ([]models.ServiceResponses, error) {
	var out []models.ServiceResponses
	for _, resp := range s.responses {
		if resp.RequestID == requestID {
			out = append(out, resp)
		}
	}
	return out, nil
}

func (s *stubStore) UpdateStatus(ctx context.Context, responseID, requestID int, fromStatus, toStatus string) error {
	resp, ok := s.responses[responseID]
	if !ok {
		return models.ErrResponseNotFound
	}
	if resp.Status != fromStatus || !lifecycle.CanTransition(fromStatus, toStatus) {
		return models.ErrInvalidTransition
	}
	resp.Status = toStatus
	s.responses[responseID] = resp

	siblings, _ := s.GetByRequestID(ctx, requestID)
	req := s.requests[requestID]
	req.Status = lifecycle.DeriveRequestStatus(siblings)
	s.requests[requestID] = req
	return nil
}

// requestStore view for RequestRepo fields.
type stubRequests struct{ store *stubStore }

func (s stubRequests) GetByID(ctx context.Context, id int) (models.ServiceRequest, error) {
	req, ok := s.store.requests[id]
	if !ok {
		return models.ServiceRequest{}, models.ErrRequestNotFound
	}
	return req, nil
}

func feedbackKey(responseID, consumerID int) string {
	return fmt.Sprintf("%d:%d", responseID, consumerID)
}

func (s *stubStore) Upsert(ctx context.Context, fb models.ServiceFeedback) (models.ServiceFeedback, error) {
	key := feedbackKey(fb.ResponseID, fb.ConsumerID)
	if existing, ok := s.feedback[key]; ok {
		fb.ID = existing.ID
	} else {
		fb.ID = s.nextID
		s.nextID++
	}
	s.feedback[key] = fb
	return fb, nil
}

func (s *stubStore) GetByResponseAndConsumer(ctx context.Context, responseID, consumerID int) (models.ServiceFeedback, error) {
	fb, ok := s.feedback[feedbackKey(responseID, consumerID)]
	if !ok {
		return models.ServiceFeedback{}, models.ErrFeedbackNotFound
	}
	return fb, nil
}

func (s *stubStore) GetByResponseID(ctx context.Context, responseID int) ([]models.ServiceFeedback, error) {
	var out []models.ServiceFeedback
	for _, fb := range s.feedback {
		if fb.ResponseID == responseID {
			out = append(out, fb)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	sent []int
}

func (n *recordingNotifier) NotifyUser(ctx context.Context, userID int, title, body, link string) {
	n.sent = append(n.sent, userID)
}
