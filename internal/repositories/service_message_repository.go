package repositories

import (
	"context"
	"database/sql"
	"time"

	"townhubBack/internal/models"
)

type ServiceMessageRepository struct {
	DB *sql.DB
}

func (r *ServiceMessageRepository) CreateMessage(ctx context.Context, msg models.ServiceMessage) (models.ServiceMessage, error) {
	query := `
        INSERT INTO service_messages (request_id, response_id, sender_id, recipient_id, body, is_read, created_at)
        VALUES (?, ?, ?, ?, ?, false, ?)
    `
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, msg.RequestID, msg.ResponseID, msg.SenderID, msg.RecipientID, msg.Body, now)
	if err != nil {
		return models.ServiceMessage{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.ServiceMessage{}, err
	}
	msg.ID = int(insertedID)
	msg.IsRead = false
	msg.CreatedAt = now
	return msg, nil
}

func (r *ServiceMessageRepository) GetByRequestID(ctx context.Context, requestID, page, pageSize int) ([]models.ServiceMessage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	offset := (page - 1) * pageSize

	query := `
        SELECT id, request_id, response_id, sender_id, recipient_id, body, is_read, created_at
        FROM service_messages
        WHERE request_id = ?
        ORDER BY created_at ASC
        LIMIT ? OFFSET ?
    `
	rows, err := r.DB.QueryContext(ctx, query, requestID, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ServiceMessage{}
	for rows.Next() {
		var msg models.ServiceMessage
		if err := rows.Scan(&msg.ID, &msg.RequestID, &msg.ResponseID, &msg.SenderID, &msg.RecipientID, &msg.Body, &msg.IsRead, &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// MarkRead flips the read flag for a message addressed to userID. Messages
// are otherwise immutable.
func (r *ServiceMessageRepository) MarkRead(ctx context.Context, messageID, userID int) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE service_messages SET is_read = true WHERE id = ? AND recipient_id = ?`, messageID, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNoRecord
	}
	return nil
}

func (r *ServiceMessageRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM service_messages WHERE recipient_id = ? AND is_read = false`, userID).Scan(&count)
	return count, err
}
