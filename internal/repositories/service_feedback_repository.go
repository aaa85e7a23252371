package repositories

import (
	"context"
	"database/sql"
	"errors"

	"townhubBack/internal/models"
)

type ServiceFeedbackRepository struct {
	DB *sql.DB
}

// Upsert inserts feedback for a (response, consumer) pair or updates the
// existing row. The table carries a unique key on (response_id, consumer_id)
// so repeated submits can never create a duplicate.
func (r *ServiceFeedbackRepository) Upsert(ctx context.Context, fb models.ServiceFeedback) (models.ServiceFeedback, error) {
	query := `
        INSERT INTO service_feedback
            (request_id, response_id, consumer_id, provider_id, rating, quality, communication, timeliness, value, title, comment, recommend, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
        ON DUPLICATE KEY UPDATE
            rating = VALUES(rating),
            quality = VALUES(quality),
            communication = VALUES(communication),
            timeliness = VALUES(timeliness),
            value = VALUES(value),
            title = VALUES(title),
            comment = VALUES(comment),
            recommend = VALUES(recommend),
            updated_at = NOW()
    `
	_, err := r.DB.ExecContext(ctx, query,
		fb.RequestID, fb.ResponseID, fb.ConsumerID, fb.ProviderID,
		fb.Rating, fb.Quality, fb.Communication, fb.Timeliness, fb.Value,
		fb.Title, fb.Comment, fb.Recommend,
	)
	if err != nil {
		return models.ServiceFeedback{}, err
	}
	return r.GetByResponseAndConsumer(ctx, fb.ResponseID, fb.ConsumerID)
}

func (r *ServiceFeedbackRepository) GetByResponseAndConsumer(ctx context.Context, responseID, consumerID int) (models.ServiceFeedback, error) {
	var fb models.ServiceFeedback
	query := `
        SELECT id, request_id, response_id, consumer_id, provider_id, rating, quality, communication, timeliness, value, title, comment, recommend, created_at, updated_at
        FROM service_feedback
        WHERE response_id = ? AND consumer_id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, responseID, consumerID).Scan(
		&fb.ID, &fb.RequestID, &fb.ResponseID, &fb.ConsumerID, &fb.ProviderID,
		&fb.Rating, &fb.Quality, &fb.Communication, &fb.Timeliness, &fb.Value,
		&fb.Title, &fb.Comment, &fb.Recommend, &fb.CreatedAt, &fb.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ServiceFeedback{}, models.ErrFeedbackNotFound
		}
		return models.ServiceFeedback{}, err
	}
	return fb, nil
}

func (r *ServiceFeedbackRepository) GetByResponseID(ctx context.Context, responseID int) ([]models.ServiceFeedback, error) {
	query := `
        SELECT id, request_id, response_id, consumer_id, provider_id, rating, quality, communication, timeliness, value, title, comment, recommend, created_at, updated_at
        FROM service_feedback
        WHERE response_id = ?
        ORDER BY created_at DESC
    `
	rows, err := r.DB.QueryContext(ctx, query, responseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := []models.ServiceFeedback{}
	for rows.Next() {
		var fb models.ServiceFeedback
		if err := rows.Scan(&fb.ID, &fb.RequestID, &fb.ResponseID, &fb.ConsumerID, &fb.ProviderID,
			&fb.Rating, &fb.Quality, &fb.Communication, &fb.Timeliness, &fb.Value,
			&fb.Title, &fb.Comment, &fb.Recommend, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, fb)
	}
	return feedback, rows.Err()
}

func (r *ServiceFeedbackRepository) GetByProviderID(ctx context.Context, providerID int) ([]models.ServiceFeedback, error) {
	query := `
        SELECT id, request_id, response_id, consumer_id, provider_id, rating, quality, communication, timeliness, value, title, comment, recommend, created_at, updated_at
        FROM service_feedback
        WHERE provider_id = ?
        ORDER BY created_at DESC
    `
	rows, err := r.DB.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := []models.ServiceFeedback{}
	for rows.Next() {
		var fb models.ServiceFeedback
		if err := rows.Scan(&fb.ID, &fb.RequestID, &fb.ResponseID, &fb.ConsumerID, &fb.ProviderID,
			&fb.Rating, &fb.Quality, &fb.Communication, &fb.Timeliness, &fb.Value,
			&fb.Title, &fb.Comment, &fb.Recommend, &fb.CreatedAt, &fb.UpdatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, fb)
	}
	return feedback, rows.Err()
}
