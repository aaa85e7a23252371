package handlers

import (
	"encoding/json"
	"net/http"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type ServiceResponseHandler struct {
	Service *services.ServiceResponseService
}

func (h *ServiceResponseHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	requestID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid request id", http.StatusBadRequest)
		return
	}

	var input models.ServiceResponses
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.RequestID = requestID
	input.ProviderID = userIDFromContext(r)

	resp, err := h.Service.SubmitResponse(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create response")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *ServiceResponseHandler) GetResponsesForRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid request id", http.StatusBadRequest)
		return
	}
	responses, err := h.Service.GetResponsesForRequest(r.Context(), requestID)
	if err != nil {
		respondError(w, err, "Could not get responses")
		return
	}
	json.NewEncoder(w).Encode(responses)
}

// UpdateStatus handles PATCH /responses/:id. The body carries only the
// target status; the acting user comes from the auth context.
func (h *ServiceResponseHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	responseID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid response id", http.StatusBadRequest)
		return
	}

	var input struct {
		Status string `json:"response_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.UpdateResponseStatus(r.Context(), responseID, input.Status, userIDFromContext(r))
	if err != nil {
		respondError(w, err, "Could not update response status")
		return
	}
	json.NewEncoder(w).Encode(resp)
}
