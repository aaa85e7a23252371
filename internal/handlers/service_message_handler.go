package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type ServiceMessageHandler struct {
	Service *services.ServiceMessageService
}

func (h *ServiceMessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input models.ServiceMessage
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.SenderID = userIDFromContext(r)

	msg, err := h.Service.SendMessage(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not send message")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}

func (h *ServiceMessageHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	requestID, err := paramInt(r, "request_id")
	if err != nil {
		http.Error(w, "Invalid request_id", http.StatusBadRequest)
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	messages, err := h.Service.GetThread(r.Context(), requestID, page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get messages")
		return
	}
	json.NewEncoder(w).Encode(messages)
}

func (h *ServiceMessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	messageID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid message id", http.StatusBadRequest)
		return
	}
	if err := h.Service.MarkRead(r.Context(), messageID, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not mark message read")
		return
	}
	w.WriteHeader(http.StatusOK)
}
