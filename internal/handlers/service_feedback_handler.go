package handlers

import (
	"encoding/json"
	"net/http"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type ServiceFeedbackHandler struct {
	Service *services.ServiceFeedbackService
}

func (h *ServiceFeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	responseID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid response id", http.StatusBadRequest)
		return
	}

	var input models.ServiceFeedback
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ResponseID = responseID

	fb, err := h.Service.SubmitFeedback(r.Context(), input, userIDFromContext(r))
	if err != nil {
		respondError(w, err, "Could not submit feedback")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(fb)
}

func (h *ServiceFeedbackHandler) GetFeedbackForResponse(w http.ResponseWriter, r *http.Request) {
	responseID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid response id", http.StatusBadRequest)
		return
	}
	feedback, err := h.Service.GetFeedbackForResponse(r.Context(), responseID)
	if err != nil {
		respondError(w, err, "Could not get feedback")
		return
	}
	json.NewEncoder(w).Encode(feedback)
}
