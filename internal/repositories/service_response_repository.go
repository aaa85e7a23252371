package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

type ServiceResponseRepository struct {
	DB *sql.DB
}

func (r *ServiceResponseRepository) CreateResponse(ctx context.Context, resp models.ServiceResponses) (models.ServiceResponses, error) {
	query := `
        INSERT INTO service_responses (request_id, provider_id, message, contact_email, contact_phone, estimated_cost, availability, response_status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		resp.RequestID, resp.ProviderID, resp.Message,
		resp.ContactEmail, resp.ContactPhone, resp.EstimatedCost, resp.Availability,
		lifecycle.StatusPending, now,
	)
	if err != nil {
		return models.ServiceResponses{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.ServiceResponses{}, err
	}
	resp.ID = int(insertedID)
	resp.Status = lifecycle.StatusPending
	resp.CreatedAt = now
	return resp, nil
}

func (r *ServiceResponseRepository) GetByID(ctx context.Context, id int) (models.ServiceResponses, error) {
	var resp models.ServiceResponses
	query := `
        SELECT id, request_id, provider_id, message, contact_email, contact_phone, estimated_cost, availability, response_status, created_at, updated_at
        FROM service_responses WHERE id = ?
    `
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&resp.ID,
		&resp.RequestID,
		&resp.ProviderID,
		&resp.Message,
		&resp.ContactEmail,
		&resp.ContactPhone,
		&resp.EstimatedCost,
		&resp.Availability,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ServiceResponses{}, models.ErrResponseNotFound
		}
		return models.ServiceResponses{}, err
	}
	return resp, nil
}

func (r *ServiceResponseRepository) GetByRequestID(ctx context.Context, requestID int) ([]models.ServiceResponses, error) {
	query := `
        SELECT id, request_id, provider_id, message, contact_email, contact_phone, estimated_cost, availability, response_status, created_at, updated_at
        FROM service_responses
        WHERE request_id = ?
        ORDER BY created_at ASC
    `
	rows, err := r.DB.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []models.ServiceResponses{}
	for rows.Next() {
		var resp models.ServiceResponses
		if err := rows.Scan(&resp.ID, &resp.RequestID, &resp.ProviderID, &resp.Message,
			&resp.ContactEmail, &resp.ContactPhone, &resp.EstimatedCost, &resp.Availability,
			&resp.Status, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

// UpdateStatus moves a response from fromStatus to toStatus and refreshes
// the owning request's derived status inside the same transaction. The
// response update is compare-and-swap on fromStatus; if another actor
// already moved the response, zero rows are affected and the whole
// transaction is rolled back with ErrInvalidTransition.
func (r *ServiceResponseRepository) UpdateStatus(ctx context.Context, responseID, requestID int, fromStatus, toStatus string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lifecycle.Apply(ctx, tx, responseID, fromStatus, toStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, lifecycle.ErrTransitionDenied) {
			return models.ErrInvalidTransition
		}
		return err
	}

	derived, err := deriveStatusTx(ctx, tx, requestID)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE service_requests SET status = ?, updated_at = NOW() WHERE id = ?`, derived, requestID); err != nil {
		return err
	}
	return tx.Commit()
}

func deriveStatusTx(ctx context.Context, tx *sql.Tx, requestID int) (string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, response_status FROM service_responses WHERE request_id = ?`, requestID)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	responses := []models.ServiceResponses{}
	for rows.Next() {
		var resp models.ServiceResponses
		if err := rows.Scan(&resp.ID, &resp.Status); err != nil {
			return "", err
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return lifecycle.DeriveRequestStatus(responses), nil
}
