package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

type ServiceRequestRepository struct {
	DB *sql.DB
}

func (r *ServiceRequestRepository) CreateRequest(ctx context.Context, req models.ServiceRequest) (models.ServiceRequest, error) {
	query := `
        INSERT INTO service_requests (consumer_id, title, description, category, city, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, req.ConsumerID, req.Title, req.Description, req.Category, req.City, lifecycle.RequestSubmitted, now)
	if err != nil {
		return models.ServiceRequest{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.ServiceRequest{}, err
	}
	req.ID = int(insertedID)
	req.Status = lifecycle.RequestSubmitted
	req.CreatedAt = now
	return req, nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id int) (models.ServiceRequest, error) {
	var req models.ServiceRequest
	query := `SELECT id, consumer_id, title, description, category, city, status, created_at, updated_at FROM service_requests WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID,
		&req.ConsumerID,
		&req.Title,
		&req.Description,
		&req.Category,
		&req.City,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ServiceRequest{}, models.ErrRequestNotFound
		}
		return models.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestRepository) GetRequests(ctx context.Context, category, city string, page, pageSize int) ([]models.ServiceRequest, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `
        SELECT id, consumer_id, title, description, category, city, status, created_at, updated_at
        FROM service_requests
        WHERE (? = '' OR category = ?) AND (? = '' OR city = ?)
        ORDER BY created_at DESC
        LIMIT ? OFFSET ?
    `
	rows, err := r.DB.QueryContext(ctx, query, category, category, city, city, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.ServiceRequest{}
	for rows.Next() {
		var req models.ServiceRequest
		if err := rows.Scan(&req.ID, &req.ConsumerID, &req.Title, &req.Description, &req.Category, &req.City, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *ServiceRequestRepository) GetByConsumerID(ctx context.Context, consumerID int) ([]models.ServiceRequest, error) {
	query := `
        SELECT id, consumer_id, title, description, category, city, status, created_at, updated_at
        FROM service_requests
        WHERE consumer_id = ?
        ORDER BY created_at DESC
    `
	rows, err := r.DB.QueryContext(ctx, query, consumerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.ServiceRequest{}
	for rows.Next() {
		var req models.ServiceRequest
		if err := rows.Scan(&req.ID, &req.ConsumerID, &req.Title, &req.Description, &req.Category, &req.City, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
