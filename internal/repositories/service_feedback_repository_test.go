package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"townhubBack/internal/models"
)

func TestFeedbackUpsertReturnsStoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := &ServiceFeedbackRepository{DB: db}

	fb := models.ServiceFeedback{
		RequestID:  5,
		ResponseID: 10,
		ConsumerID: 1,
		ProviderID: 2,
		Rating:     5,
		Title:      "great",
		Comment:    "solid work",
		Recommend:  true,
	}

	mock.ExpectExec("INSERT INTO service_feedback").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT id, request_id, response_id, consumer_id, provider_id").
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "request_id", "response_id", "consumer_id", "provider_id",
			"rating", "quality", "communication", "timeliness", "value",
			"title", "comment", "recommend", "created_at", "updated_at",
		}).AddRow(7, 5, 10, 1, 2, 5, nil, nil, nil, nil, "great", "solid work", true, time.Now(), nil))

	stored, err := repo.Upsert(context.Background(), fb)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if stored.ID != 7 || stored.Rating != 5 {
		t.Fatalf("unexpected stored feedback: %+v", stored)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
