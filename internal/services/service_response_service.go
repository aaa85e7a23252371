package services

import (
	"context"
	"fmt"
	"strings"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

// ResponseStore is the persistence surface the lifecycle operations need
// for responses.
type ResponseStore interface {
	CreateResponse(ctx context.Context, resp models.ServiceResponses) (models.ServiceResponses, error)
	GetByID(ctx context.Context, id int) (models.ServiceResponses, error)
	GetByRequestID(ctx context.Context, requestID int) ([]models.ServiceResponses, error)
	UpdateStatus(ctx context.Context, responseID, requestID int, fromStatus, toStatus string) error
}

// RequestStore resolves the owning request for authorization checks.
type RequestStore interface {
	GetByID(ctx context.Context, id int) (models.ServiceRequest, error)
}

// Notifier delivers a push/websocket notification. Delivery is best effort;
// lifecycle operations never fail because a notification did not go out.
type Notifier interface {
	NotifyUser(ctx context.Context, userID int, title, body, link string)
}

// ServiceResponseService owns the legal sequence of state changes for a
// provider's response: pending -> accepted -> completed, pending -> declined.
type ServiceResponseService struct {
	ResponseRepo ResponseStore
	RequestRepo  RequestStore
	Notifier     Notifier
}

// SubmitResponse creates a provider's offer on an open request. Responses
// always start out pending. A provider may submit more than one response to
// the same request (a revised offer); this is deliberate.
func (s *ServiceResponseService) SubmitResponse(ctx context.Context, resp models.ServiceResponses) (models.ServiceResponses, error) {
	if strings.TrimSpace(resp.Message) == "" {
		return models.ServiceResponses{}, models.ErrValidation
	}

	request, err := s.RequestRepo.GetByID(ctx, resp.RequestID)
	if err != nil {
		return models.ServiceResponses{}, err
	}
	if request.ConsumerID == resp.ProviderID {
		return models.ServiceResponses{}, models.ErrForbidden
	}

	created, err := s.ResponseRepo.CreateResponse(ctx, resp)
	if err != nil {
		return models.ServiceResponses{}, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyUser(ctx, request.ConsumerID,
			"New response to your request",
			fmt.Sprintf("Someone offered to help with \"%s\"", request.Title),
			fmt.Sprintf("/requests/%d", request.ID),
		)
	}
	return created, nil
}

// UpdateResponseStatus applies one transition on behalf of actingUserID.
// Accept and decline belong to the request's consumer; completion may come
// from either the consumer or the response's provider. The stored update is
// compare-and-swap on the current status, so a stale caller gets
// ErrInvalidTransition instead of silently overwriting a concurrent move.
func (s *ServiceResponseService) UpdateResponseStatus(ctx context.Context, responseID int, newStatus string, actingUserID int) (models.ServiceResponses, error) {
	if !lifecycle.IsValidStatus(newStatus) || newStatus == lifecycle.StatusPending {
		return models.ServiceResponses{}, models.ErrValidation
	}

	resp, err := s.ResponseRepo.GetByID(ctx, responseID)
	if err != nil {
		return models.ServiceResponses{}, err
	}
	request, err := s.RequestRepo.GetByID(ctx, resp.RequestID)
	if err != nil {
		return models.ServiceResponses{}, err
	}

	switch newStatus {
	case lifecycle.StatusAccepted, lifecycle.StatusDeclined:
		if actingUserID != request.ConsumerID {
			return models.ServiceResponses{}, models.ErrForbidden
		}
	case lifecycle.StatusCompleted:
		if actingUserID != request.ConsumerID && actingUserID != resp.ProviderID {
			return models.ServiceResponses{}, models.ErrForbidden
		}
	}

	if !lifecycle.CanTransition(resp.Status, newStatus) {
		return models.ServiceResponses{}, models.ErrInvalidTransition
	}

	if err := s.ResponseRepo.UpdateStatus(ctx, resp.ID, resp.RequestID, resp.Status, newStatus); err != nil {
		return models.ServiceResponses{}, err
	}

	updated, err := s.ResponseRepo.GetByID(ctx, responseID)
	if err != nil {
		return models.ServiceResponses{}, err
	}

	if s.Notifier != nil {
		switch newStatus {
		case lifecycle.StatusAccepted:
			s.Notifier.NotifyUser(ctx, resp.ProviderID, "Response accepted",
				fmt.Sprintf("Your offer on \"%s\" was accepted", request.Title),
				fmt.Sprintf("/requests/%d", request.ID))
		case lifecycle.StatusDeclined:
			s.Notifier.NotifyUser(ctx, resp.ProviderID, "Response declined",
				fmt.Sprintf("Your offer on \"%s\" was declined", request.Title),
				fmt.Sprintf("/requests/%d", request.ID))
		case lifecycle.StatusCompleted:
			other := request.ConsumerID
			if actingUserID == request.ConsumerID {
				other = resp.ProviderID
			}
			s.Notifier.NotifyUser(ctx, other, "Service completed",
				fmt.Sprintf("\"%s\" was marked completed", request.Title),
				fmt.Sprintf("/requests/%d", request.ID))
		}
	}
	return updated, nil
}

// GetResponsesForRequest lists a request's responses in submission order.
func (s *ServiceResponseService) GetResponsesForRequest(ctx context.Context, requestID int) ([]models.ServiceResponses, error) {
	if _, err := s.RequestRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.ResponseRepo.GetByRequestID(ctx, requestID)
}
