package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
)

// NotificationService persists notifications and pushes them over FCM to
// every registered device token of the recipient. It satisfies the Notifier
// interface used by the lifecycle services.
type NotificationService struct {
	NotificationRepo *repositories.NotificationRepository
	Client           *messaging.Client
}

func (s *NotificationService) NotifyUser(ctx context.Context, userID int, title, body, link string) {
	if _, err := s.NotificationRepo.CreateNotification(ctx, models.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Link:   link,
	}); err != nil {
		log.Printf("notification: failed to store for user %d: %v", userID, err)
		return
	}

	if s.Client == nil {
		return
	}
	tokens, err := s.NotificationRepo.GetTokensByUserID(ctx, userID)
	if err != nil {
		log.Printf("notification: failed to load tokens for user %d: %v", userID, err)
		return
	}
	for _, token := range tokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: map[string]string{
				"link": link,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{"apns-priority": "10"},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Alert: &messaging.ApsAlert{Title: title, Body: body},
						Sound: "default",
					},
				},
			},
		}
		if _, err := s.Client.Send(ctx, msg); err != nil {
			log.Printf("notification: push to token failed: %v", err)
		}
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID, page, pageSize int) ([]models.Notification, error) {
	return s.NotificationRepo.GetByUserID(ctx, userID, page, pageSize)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID int) error {
	return s.NotificationRepo.MarkRead(ctx, id, userID)
}

func (s *NotificationService) RegisterToken(ctx context.Context, userID int, token string) error {
	if token == "" {
		return models.ErrValidation
	}
	return s.NotificationRepo.InsertToken(ctx, userID, token)
}

func (s *NotificationService) DeleteToken(ctx context.Context, token string) error {
	return s.NotificationRepo.DeleteToken(ctx, token)
}
