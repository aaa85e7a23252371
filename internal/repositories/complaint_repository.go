package repositories

import (
	"context"
	"database/sql"
	"time"

	"townhubBack/internal/models"
)

type ComplaintRepository struct {
	DB *sql.DB
}

func (r *ComplaintRepository) CreateComplaint(ctx context.Context, complaint models.Complaint) (models.Complaint, error) {
	query := `INSERT INTO complaints (reporter_id, target_type, target_id, reason, created_at) VALUES (?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, complaint.ReporterID, complaint.TargetType, complaint.TargetID, complaint.Reason, now)
	if err != nil {
		return models.Complaint{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.Complaint{}, err
	}
	complaint.ID = int(insertedID)
	complaint.CreatedAt = now
	return complaint, nil
}

func (r *ComplaintRepository) GetAllComplaints(ctx context.Context) ([]models.Complaint, error) {
	query := `SELECT id, reporter_id, target_type, target_id, reason, created_at FROM complaints ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	complaints := []models.Complaint{}
	for rows.Next() {
		var complaint models.Complaint
		if err := rows.Scan(&complaint.ID, &complaint.ReporterID, &complaint.TargetType, &complaint.TargetID, &complaint.Reason, &complaint.CreatedAt); err != nil {
			return nil, err
		}
		complaints = append(complaints, complaint)
	}
	return complaints, rows.Err()
}

func (r *ComplaintRepository) DeleteComplaint(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM complaints WHERE id = ?`, id)
	return err
}
