package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"townhubBack/internal/services"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	notifications, err := h.Service.GetNotifications(r.Context(), userIDFromContext(r), page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get notifications")
		return
	}
	json.NewEncoder(w).Encode(notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid notification id", http.StatusBadRequest)
		return
	}
	if err := h.Service.MarkRead(r.Context(), id, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not mark notification read")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *NotificationHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return
	}
	if err := h.Service.RegisterToken(r.Context(), userIDFromContext(r), input.Token); err != nil {
		respondError(w, err, "Could not register token")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *NotificationHandler) DeleteToken(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Token == "" {
		http.Error(w, "Token is required", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteToken(r.Context(), input.Token); err != nil {
		respondError(w, err, "Could not delete token")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
