package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"townhubBack/internal/lifecycle"
	"townhubBack/internal/models"
)

func TestUpdateStatusCommitsAndRefreshesRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := &ServiceResponseRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE service_responses SET response_status").
		WithArgs(lifecycle.StatusAccepted, 10, lifecycle.StatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, response_status FROM service_responses").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "response_status"}).
			AddRow(10, lifecycle.StatusAccepted).
			AddRow(11, lifecycle.StatusPending))
	mock.ExpectExec("UPDATE service_requests SET status").
		WithArgs(lifecycle.RequestAccepted, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.UpdateStatus(context.Background(), 10, 5, lifecycle.StatusPending, lifecycle.StatusAccepted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

// A concurrent actor already moved the response: the CAS update matches
// zero rows, the transaction rolls back and the caller sees an invalid
// transition, never a silent success.
func TestUpdateStatusStaleStateRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := &ServiceResponseRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE service_responses SET response_status").
		WithArgs(lifecycle.StatusCompleted, 10, lifecycle.StatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.UpdateStatus(context.Background(), 10, 5, lifecycle.StatusAccepted, lifecycle.StatusCompleted)
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdateStatusRejectsIllegalMoveBeforeTouchingDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()
	repo := &ServiceResponseRepository{DB: db}

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = repo.UpdateStatus(context.Background(), 10, 5, lifecycle.StatusDeclined, lifecycle.StatusCompleted)
	if !errors.Is(err, models.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
