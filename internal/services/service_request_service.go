package services

import (
	"context"
	"strings"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
)

type ServiceRequestService struct {
	RequestRepo *repositories.ServiceRequestRepository
}

func (s *ServiceRequestService) CreateRequest(ctx context.Context, req models.ServiceRequest) (models.ServiceRequest, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return models.ServiceRequest{}, models.ErrValidation
	}
	return s.RequestRepo.CreateRequest(ctx, req)
}

func (s *ServiceRequestService) GetRequestByID(ctx context.Context, id int) (models.ServiceRequest, error) {
	return s.RequestRepo.GetByID(ctx, id)
}

func (s *ServiceRequestService) GetRequests(ctx context.Context, category, city string, page, pageSize int) ([]models.ServiceRequest, error) {
	return s.RequestRepo.GetRequests(ctx, category, city, page, pageSize)
}

func (s *ServiceRequestService) GetRequestsByConsumer(ctx context.Context, consumerID int) ([]models.ServiceRequest, error) {
	return s.RequestRepo.GetByConsumerID(ctx, consumerID)
}
