package services

import (
	"context"
	"strings"

	"townhubBack/internal/models"
)

type MessageStore interface {
	CreateMessage(ctx context.Context, msg models.ServiceMessage) (models.ServiceMessage, error)
	GetByRequestID(ctx context.Context, requestID, page, pageSize int) ([]models.ServiceMessage, error)
	MarkRead(ctx context.Context, messageID, userID int) error
}

// MessageDeliverer pushes a created message to a connected recipient.
// It is a freshness optimization only; persistence does not depend on it.
type MessageDeliverer interface {
	DeliverMessage(msg models.ServiceMessage)
}

type ServiceMessageService struct {
	MessageRepo  MessageStore
	RequestRepo  RequestStore
	ResponseRepo ResponseStore
	Deliverer    MessageDeliverer
}

// SendMessage appends one message to the request thread. Messages carry no
// state transition.
func (s *ServiceMessageService) SendMessage(ctx context.Context, msg models.ServiceMessage) (models.ServiceMessage, error) {
	if strings.TrimSpace(msg.Body) == "" {
		return models.ServiceMessage{}, models.ErrValidation
	}

	if _, err := s.RequestRepo.GetByID(ctx, msg.RequestID); err != nil {
		return models.ServiceMessage{}, err
	}
	if msg.ResponseID != nil {
		resp, err := s.ResponseRepo.GetByID(ctx, *msg.ResponseID)
		if err != nil {
			return models.ServiceMessage{}, err
		}
		if resp.RequestID != msg.RequestID {
			return models.ServiceMessage{}, models.ErrValidation
		}
	}

	created, err := s.MessageRepo.CreateMessage(ctx, msg)
	if err != nil {
		return models.ServiceMessage{}, err
	}
	if s.Deliverer != nil {
		s.Deliverer.DeliverMessage(created)
	}
	return created, nil
}

func (s *ServiceMessageService) GetThread(ctx context.Context, requestID, page, pageSize int) ([]models.ServiceMessage, error) {
	if _, err := s.RequestRepo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}
	return s.MessageRepo.GetByRequestID(ctx, requestID, page, pageSize)
}

func (s *ServiceMessageService) MarkRead(ctx context.Context, messageID, userID int) error {
	return s.MessageRepo.MarkRead(ctx, messageID, userID)
}
