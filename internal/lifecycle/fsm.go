package lifecycle

import (
	"context"
	"database/sql"
)

// Status constants used by the service response state machine.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

var transitions = map[string]map[string]struct{}{
	StatusPending:   {StatusAccepted: {}, StatusDeclined: {}},
	StatusAccepted:  {StatusCompleted: {}},
	StatusDeclined:  {},
	StatusCompleted: {},
}

// IsValidStatus reports whether s is a known response status.
func IsValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition out of s is permitted.
func IsTerminal(s string) bool {
	return len(transitions[s]) == 0 && IsValidStatus(s)
}

// CanTransition returns whether a response can move from the current status
// to the target status. Repeating the current status is not a transition:
// terminal states stay terminal.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// Apply updates a response status using optimistic validation. The WHERE
// clause pins the expected current status, so a concurrent transition that
// got there first makes this one affect zero rows; that is reported as
// sql.ErrNoRows and surfaced to callers as an invalid transition.
func Apply(ctx context.Context, tx *sql.Tx, responseID int, fromStatus, toStatus string) error {
	if !CanTransition(fromStatus, toStatus) {
		return ErrTransitionDenied
	}
	res, err := tx.ExecContext(ctx, `UPDATE service_responses SET response_status = ?, updated_at = NOW() WHERE id = ? AND response_status = ?`, toStatus, responseID, fromStatus)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
