package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"townhubBack/internal/models"
)

// userIDFromContext reads the authenticated user id placed there by the JWT
// middleware. Zero means unauthenticated.
func userIDFromContext(r *http.Request) int {
	if id, ok := r.Context().Value("user_id").(int); ok {
		return id
	}
	return 0
}

func roleFromContext(r *http.Request) string {
	if role, ok := r.Context().Value("role").(string); ok {
		return role
	}
	return ""
}

func paramInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(getParam(r, name))
}

// respondError translates sentinel errors into HTTP status codes. Unknown
// errors collapse to a generic 500 so internals never leak to clients.
func respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrRequestNotFound),
		errors.Is(err, models.ErrResponseNotFound),
		errors.Is(err, models.ErrFeedbackNotFound),
		errors.Is(err, models.ErrPostNotFound),
		errors.Is(err, models.ErrListingNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrGroupNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNoRecord):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrInvalidState),
		errors.Is(err, models.ErrAlreadyMember),
		errors.Is(err, models.ErrAlreadyAttends),
		errors.Is(err, models.ErrNotMember):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
