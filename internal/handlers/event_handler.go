package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type EventHandler struct {
	Service *services.EventService
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input models.Event
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.UserID = userIDFromContext(r)

	event, err := h.Service.CreateEvent(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create event")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

func (h *EventHandler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}
	event, err := h.Service.GetEventByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get event")
		return
	}
	json.NewEncoder(w).Encode(event)
}

func (h *EventHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	events, err := h.Service.GetUpcoming(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get events")
		return
	}
	json.NewEncoder(w).Encode(events)
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}

	var input models.Event
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ID = id

	if err := h.Service.UpdateEvent(r.Context(), input, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not update event")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}
	isAdmin := roleFromContext(r) == "admin"
	if err := h.Service.DeleteEvent(r.Context(), id, userIDFromContext(r), isAdmin); err != nil {
		respondError(w, err, "Could not delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) Attend(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Attend(r.Context(), id, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not attend event")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *EventHandler) Unattend(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Unattend(r.Context(), id, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not leave event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) GetAttendees(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid event id", http.StatusBadRequest)
		return
	}
	attendees, err := h.Service.GetAttendees(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get attendees")
		return
	}
	json.NewEncoder(w).Encode(attendees)
}
