package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type ServiceRequestHandler struct {
	Service *services.ServiceRequestService
}

func (h *ServiceRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var input models.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ConsumerID = userIDFromContext(r)

	req, err := h.Service.CreateRequest(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create request")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(req)
}

func (h *ServiceRequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid request id", http.StatusBadRequest)
		return
	}
	req, err := h.Service.GetRequestByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get request")
		return
	}
	json.NewEncoder(w).Encode(req)
}

func (h *ServiceRequestHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	category := r.URL.Query().Get("category")
	city := r.URL.Query().Get("city")

	requests, err := h.Service.GetRequests(r.Context(), category, city, page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get requests")
		return
	}
	json.NewEncoder(w).Encode(requests)
}

func (h *ServiceRequestHandler) GetRequestsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := paramInt(r, "user_id")
	if err != nil {
		http.Error(w, "Invalid user_id", http.StatusBadRequest)
		return
	}
	requests, err := h.Service.GetRequestsByConsumer(r.Context(), userID)
	if err != nil {
		respondError(w, err, "Could not get requests")
		return
	}
	json.NewEncoder(w).Encode(requests)
}
