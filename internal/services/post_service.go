package services

import (
	"context"
	"strings"

	"townhubBack/internal/models"
	"townhubBack/internal/repositories"
)

type PostService struct {
	PostRepo *repositories.PostRepository
}

func (s *PostService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Body) == "" {
		return models.Post{}, models.ErrValidation
	}
	return s.PostRepo.CreatePost(ctx, post)
}

func (s *PostService) GetPostByID(ctx context.Context, id int) (models.Post, error) {
	return s.PostRepo.GetByID(ctx, id)
}

func (s *PostService) GetPosts(ctx context.Context, category string, page, pageSize int) ([]models.Post, error) {
	return s.PostRepo.GetPosts(ctx, category, page, pageSize)
}

// UpdatePost allows only the author to edit.
func (s *PostService) UpdatePost(ctx context.Context, post models.Post, actingUserID int) error {
	existing, err := s.PostRepo.GetByID(ctx, post.ID)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID {
		return models.ErrForbidden
	}
	return s.PostRepo.UpdatePost(ctx, post)
}

func (s *PostService) DeletePost(ctx context.Context, id, actingUserID int, isAdmin bool) error {
	existing, err := s.PostRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != actingUserID && !isAdmin {
		return models.ErrForbidden
	}
	return s.PostRepo.DeletePost(ctx, id)
}

func (s *PostService) CreateComment(ctx context.Context, comment models.PostComment) (models.PostComment, error) {
	if strings.TrimSpace(comment.Body) == "" {
		return models.PostComment{}, models.ErrValidation
	}
	if _, err := s.PostRepo.GetByID(ctx, comment.PostID); err != nil {
		return models.PostComment{}, err
	}
	return s.PostRepo.CreateComment(ctx, comment)
}

func (s *PostService) GetComments(ctx context.Context, postID int) ([]models.PostComment, error) {
	if _, err := s.PostRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.PostRepo.GetCommentsByPostID(ctx, postID)
}

func (s *PostService) DeleteComment(ctx context.Context, id, actingUserID int, isAdmin bool) error {
	comment, err := s.PostRepo.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != actingUserID && !isAdmin {
		return models.ErrForbidden
	}
	return s.PostRepo.DeleteComment(ctx, id)
}
