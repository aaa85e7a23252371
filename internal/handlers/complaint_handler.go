package handlers

import (
	"encoding/json"
	"net/http"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type ComplaintHandler struct {
	Service *services.ComplaintService
}

func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var input models.Complaint
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ReporterID = userIDFromContext(r)

	complaint, err := h.Service.CreateComplaint(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create complaint")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(complaint)
}

func (h *ComplaintHandler) GetAllComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.Service.GetAllComplaints(r.Context())
	if err != nil {
		respondError(w, err, "Could not get complaints")
		return
	}
	json.NewEncoder(w).Encode(complaints)
}

func (h *ComplaintHandler) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid complaint id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteComplaint(r.Context(), id); err != nil {
		respondError(w, err, "Could not delete complaint")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
