package services

import (
	"context"
	"strings"
	"time"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
)

type EventService struct {
	EventRepo *repositories.EventRepository
}

func (s *EventService) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	if strings.TrimSpace(event.Title) == "" || event.StartsAt.IsZero() {
		return models.Event{}, models.ErrValidation
	}
	return s.EventRepo.CreateEvent(ctx, event)
}

func (s *EventService) GetEventByID(ctx context.Context, id int) (models.Event, error) {
	return s.EventRepo.GetByID(ctx, id)
}

func (s *EventService) GetUpcoming(ctx context.Context, page, pageSize int) ([]models.Event, error) {
	return s.EventRepo.GetUpcoming(ctx, page, pageSize)
}

func (s *EventService) UpdateEvent(ctx context.Context, event models.Event, actingUserID int) error {
	existing, err := s.EventRepo.GetByID(ctx, event.ID)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return models.ErrForbidden
	}
	return s.EventRepo.UpdateEvent(ctx, event)
}

func (s *EventService) DeleteEvent(ctx context.Context, id, actingUserID int, isAdmin bool) error {
	existing, err := s.EventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID && !isAdmin {
		return models.ErrForbidden
	}
	return s.EventRepo.DeleteEvent(ctx, id)
}

func (s *EventService) Attend(ctx context.Context, eventID, userID int) error {
	event, err := s.EventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Archived {
		return models.ErrInvalidState
	}
	return s.EventRepo.AddAttendee(ctx, eventID, userID)
}

func (s *EventService) Unattend(ctx context.Context, eventID, userID int) error {
	return s.EventRepo.RemoveAttendee(ctx, eventID, userID)
}

func (s *EventService) GetAttendees(ctx context.Context, eventID int) ([]models.EventAttendee, error) {
	if _, err := s.EventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.EventRepo.GetAttendees(ctx, eventID)
}

func (s *EventService) ArchivePastEvents(ctx context.Context, cutoff time.Time) (int, error) {
	return s.EventRepo.ArchivePastEvents(ctx, cutoff)
}
