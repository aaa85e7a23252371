package services

import (
	"context"
	"strings"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
)

type ComplaintService struct {
	ComplaintRepo *repositories.ComplaintRepository
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, complaint models.Complaint) (models.Complaint, error) {
	if strings.TrimSpace(complaint.Reason) == "" || complaint.TargetID == 0 {
		return models.Complaint{}, models.ErrValidation
	}
	switch complaint.TargetType {
	case "post", "listing", "user", "request", "response":
	default:
		return models.Complaint{}, models.ErrValidation
	}
	return s.ComplaintRepo.CreateComplaint(ctx, complaint)
}

func (s *ComplaintService) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	return s.ComplaintRepo.GetAllComplaints(ctx)
}

func (s *ComplaintService) DeleteComplaint(ctx context.Context, id int) error {
	return s.ComplaintRepo.DeleteComplaint(ctx, id)
}
