package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"townhubBack/internal/models"
)

type PostRepository struct {
	DB *sql.DB
}

func (r *PostRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	query := `INSERT INTO posts (user_id, title, body, category, created_at) VALUES (?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, post.UserID, post.Title, post.Body, post.Category, now)
	if err != nil {
		return models.Post{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.Post{}, err
	}
	post.ID = int(insertedID)
	post.CreatedAt = now
	return post, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int) (models.Post, error) {
	var post models.Post
	query := `SELECT id, user_id, title, body, category, created_at, updated_at FROM posts WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.UserID, &post.Title, &post.Body, &post.Category, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, models.ErrPostNotFound
		}
		return models.Post{}, err
	}
	return post, nil
}

func (r *PostRepository) GetPosts(ctx context.Context, category string, page, pageSize int) ([]models.Post, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `
        SELECT id, user_id, title, body, category, created_at, updated_at
        FROM posts
        WHERE (? = '' OR category = ?)
        ORDER BY created_at DESC
        LIMIT ? OFFSET ?
    `
	rows, err := r.DB.QueryContext(ctx, query, category, category, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Title, &post.Body, &post.Category, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *PostRepository) UpdatePost(ctx context.Context, post models.Post) error {
	query := `UPDATE posts SET title = ?, body = ?, category = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, post.Title, post.Body, post.Category, post.ID)
	return err
}

func (r *PostRepository) DeletePost(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}

func (r *PostRepository) CreateComment(ctx context.Context, comment models.PostComment) (models.PostComment, error) {
	query := `INSERT INTO post_comments (post_id, user_id, body, created_at) VALUES (?, ?, ?, ?)`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, comment.PostID, comment.UserID, comment.Body, now)
	if err != nil {
		return models.PostComment{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.PostComment{}, err
	}
	comment.ID = int(insertedID)
	comment.CreatedAt = now
	return comment, nil
}

func (r *PostRepository) GetCommentsByPostID(ctx context.Context, postID int) ([]models.PostComment, error) {
	query := `SELECT id, post_id, user_id, body, created_at FROM post_comments WHERE post_id = ? ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.PostComment{}
	for rows.Next() {
		var comment models.PostComment
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Body, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *PostRepository) GetCommentByID(ctx context.Context, id int) (models.PostComment, error) {
	var comment models.PostComment
	query := `SELECT id, post_id, user_id, body, created_at FROM post_comments WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Body, &comment.CreatedAt)
	if err == sql.ErrNoRows {
		return models.PostComment{}, models.ErrNoRecord
	}
	if err != nil {
		return models.PostComment{}, err
	}
	return comment, nil
}

func (r *PostRepository) DeleteComment(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM post_comments WHERE id = ?`, id)
	return err
}
