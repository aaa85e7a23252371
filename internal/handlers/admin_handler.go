package handlers

import (
	"net/http"

	"townhubBack/internal/services"
)

// AdminHandler groups moderation actions reachable only through the admin
// middleware chain.
type AdminHandler struct {
	UserService *services.UserService
}

func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if err := h.UserService.BanUser(r.Context(), id); err != nil {
		respondError(w, err, "Could not ban user")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *AdminHandler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if err := h.UserService.UnbanUser(r.Context(), id); err != nil {
		respondError(w, err, "Could not unban user")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if err := h.UserService.DeleteUser(r.Context(), id); err != nil {
		respondError(w, err, "Could not delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
