package services

import (
	"context"
	"strings"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
)

type ListingService struct {
	ListingRepo *repositories.ListingRepository
}

func (s *ListingService) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	if strings.TrimSpace(listing.Title) == "" || listing.Price < 0 {
		return models.Listing{}, models.ErrValidation
	}
	if listing.Status == "" {
		listing.Status = "active"
	}
	return s.ListingRepo.CreateListing(ctx, listing)
}

func (s *ListingService) GetListingByID(ctx context.Context, id int) (models.Listing, error) {
	return s.ListingRepo.GetByID(ctx, id)
}

func (s *ListingService) GetListings(ctx context.Context, category, city string, page, pageSize int) ([]models.Listing, error) {
	return s.ListingRepo.GetListings(ctx, category, city, page, pageSize)
}

func (s *ListingService) UpdateListing(ctx context.Context, listing models.Listing, actingUserID int) error {
	existing, err := s.ListingRepo.GetByID(ctx, listing.ID)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return models.ErrForbidden
	}
	return s.ListingRepo.UpdateListing(ctx, listing)
}

func (s *ListingService) SetListingImage(ctx context.Context, id, actingUserID int, imageURL string) error {
	existing, err := s.ListingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return models.ErrForbidden
	}
	return s.ListingRepo.SetImagePath(ctx, id, imageURL)
}

func (s *ListingService) DeleteListing(ctx context.Context, id, actingUserID int, isAdmin bool) error {
	existing, err := s.ListingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID && !isAdmin {
		return models.ErrForbidden
	}
	return s.ListingRepo.DeleteListing(ctx, id)
}
