package services

import (
	"context"
	"strings"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
)

type GroupService struct {
	GroupRepo *repositories.GroupRepository
}

func (s *GroupService) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	if strings.TrimSpace(group.Name) == "" {
		return models.Group{}, models.ErrValidation
	}
	return s.GroupRepo.CreateGroup(ctx, group)
}

func (s *GroupService) GetGroupByID(ctx context.Context, id int) (models.Group, error) {
	return s.GroupRepo.GetByID(ctx, id)
}

func (s *GroupService) GetGroups(ctx context.Context, page, pageSize int) ([]models.Group, error) {
	return s.GroupRepo.GetGroups(ctx, page, pageSize)
}

func (s *GroupService) UpdateGroup(ctx context.Context, group models.Group, actingUserID int) error {
	existing, err := s.GroupRepo.GetByID(ctx, group.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != actingUserID {
		return models.ErrForbidden
	}
	return s.GroupRepo.UpdateGroup(ctx, group)
}

func (s *GroupService) DeleteGroup(ctx context.Context, id, actingUserID int, isAdmin bool) error {
	existing, err := s.GroupRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.OwnerID != actingUserID && !isAdmin {
		return models.ErrForbidden
	}
	return s.GroupRepo.DeleteGroup(ctx, id)
}

func (s *GroupService) Join(ctx context.Context, groupID, userID int) error {
	if _, err := s.GroupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.GroupRepo.AddMember(ctx, groupID, userID)
}

func (s *GroupService) Leave(ctx context.Context, groupID, userID int) error {
	return s.GroupRepo.RemoveMember(ctx, groupID, userID)
}

func (s *GroupService) GetMembers(ctx context.Context, groupID int) ([]models.GroupMember, error) {
	if _, err := s.GroupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.GroupRepo.GetMembers(ctx, groupID)
}
