package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"townhubBack/internal/models"
)

type EventRepository struct {
	DB *sql.DB
}

func (r *EventRepository) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	query := `
        INSERT INTO events (user_id, title, description, location, starts_at, image_path, archived, created_at)
        VALUES (?, ?, ?, ?, ?, ?, false, ?)
    `
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, event.UserID, event.Title, event.Description, event.Location, event.StartsAt, event.ImagePath, now)
	if err != nil {
		return models.Event{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.Event{}, err
	}
	event.ID = int(insertedID)
	event.CreatedAt = now
	return event, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int) (models.Event, error) {
	var event models.Event
	query := `SELECT id, user_id, title, description, location, starts_at, image_path, archived, created_at, updated_at FROM events WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.UserID, &event.Title, &event.Description, &event.Location,
		&event.StartsAt, &event.ImagePath, &event.Archived, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Event{}, models.ErrEventNotFound
		}
		return models.Event{}, err
	}
	return event, nil
}

func (r *EventRepository) GetUpcoming(ctx context.Context, page, pageSize int) ([]models.Event, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `
        SELECT id, user_id, title, description, location, starts_at, image_path, archived, created_at, updated_at
        FROM events
        WHERE archived = false
        ORDER BY starts_at ASC
        LIMIT ? OFFSET ?
    `
	rows, err := r.DB.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(&event.ID, &event.UserID, &event.Title, &event.Description, &event.Location,
			&event.StartsAt, &event.ImagePath, &event.Archived, &event.CreatedAt, &event.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event models.Event) error {
	query := `UPDATE events SET title = ?, description = ?, location = ?, starts_at = ?, image_path = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, event.Title, event.Description, event.Location, event.StartsAt, event.ImagePath, event.ID)
	return err
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

// ArchivePastEvents marks events whose start time passed before cutoff.
// Used by the daily cleaner in cmd.
func (r *EventRepository) ArchivePastEvents(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE events SET archived = true WHERE archived = false AND starts_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

func (r *EventRepository) AddAttendee(ctx context.Context, eventID, userID int) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_attendees WHERE event_id = ? AND user_id = ?`, eventID, userID).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return models.ErrAlreadyAttends
	}
	_, err := r.DB.ExecContext(ctx, `INSERT INTO event_attendees (event_id, user_id, created_at) VALUES (?, ?, ?)`, eventID, userID, time.Now())
	return err
}

func (r *EventRepository) RemoveAttendee(ctx context.Context, eventID, userID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM event_attendees WHERE event_id = ? AND user_id = ?`, eventID, userID)
	return err
}

func (r *EventRepository) GetAttendees(ctx context.Context, eventID int) ([]models.EventAttendee, error) {
	query := `SELECT event_id, user_id, created_at FROM event_attendees WHERE event_id = ? ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := []models.EventAttendee{}
	for rows.Next() {
		var attendee models.EventAttendee
		if err := rows.Scan(&attendee.EventID, &attendee.UserID, &attendee.CreatedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, attendee)
	}
	return attendees, rows.Err()
}
