package services

import (
	"context"
	"strings"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

// FeedbackStore persists feedback with insert-or-update semantics keyed on
// (response_id, consumer_id).
type FeedbackStore interface {
	Upsert(ctx context.Context, fb models.ServiceFeedback) (models.ServiceFeedback, error)
	GetByResponseAndConsumer(ctx context.Context, responseID, consumerID int) (models.ServiceFeedback, error)
	GetByResponseID(ctx context.Context, responseID int) ([]models.ServiceFeedback, error)
}

type ServiceFeedbackService struct {
	FeedbackRepo FeedbackStore
	ResponseRepo ResponseStore
	RequestRepo  RequestStore
}

// SubmitFeedback records the consumer's review of a completed response.
// Re-submitting for the same (response, consumer) pair updates the existing
// feedback; it never creates a duplicate.
func (s *ServiceFeedbackService) SubmitFeedback(ctx context.Context, fb models.ServiceFeedback, actingUserID int) (models.ServiceFeedback, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return models.ServiceFeedback{}, models.ErrValidation
	}
	if strings.TrimSpace(fb.Title) == "" || strings.TrimSpace(fb.Comment) == "" {
		return models.ServiceFeedback{}, models.ErrValidation
	}
	for _, sub := range []*int{fb.Quality, fb.Communication, fb.Timeliness, fb.Value} {
		if sub != nil && (*sub < 1 || *sub > 5) {
			return models.ServiceFeedback{}, models.ErrValidation
		}
	}

	resp, err := s.ResponseRepo.GetByID(ctx, fb.ResponseID)
	if err != nil {
		return models.ServiceFeedback{}, err
	}
	if resp.Status != lifecycle.StatusCompleted {
		return models.ServiceFeedback{}, models.ErrInvalidState
	}

	request, err := s.RequestRepo.GetByID(ctx, resp.RequestID)
	if err != nil {
		return models.ServiceFeedback{}, err
	}
	if actingUserID != request.ConsumerID {
		return models.ServiceFeedback{}, models.ErrForbidden
	}

	// Ownership fields come from the store of record, not the caller.
	fb.RequestID = resp.RequestID
	fb.ConsumerID = request.ConsumerID
	fb.ProviderID = resp.ProviderID

	return s.FeedbackRepo.Upsert(ctx, fb)
}

func (s *ServiceFeedbackService) GetFeedbackForResponse(ctx context.Context, responseID int) ([]models.ServiceFeedback, error) {
	if _, err := s.ResponseRepo.GetByID(ctx, responseID); err != nil {
		return nil, err
	}
	return s.FeedbackRepo.GetByResponseID(ctx, responseID)
}
