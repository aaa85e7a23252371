package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type GroupHandler struct {
	Service *services.GroupService
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var input models.Group
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.OwnerID = userIDFromContext(r)

	group, err := h.Service.CreateGroup(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create group")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(group)
}

func (h *GroupHandler) GetGroupByID(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}
	group, err := h.Service.GetGroupByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get group")
		return
	}
	json.NewEncoder(w).Encode(group)
}

func (h *GroupHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	groups, err := h.Service.GetGroups(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get groups")
		return
	}
	json.NewEncoder(w).Encode(groups)
}

func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}

	var input models.Group
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ID = id

	if err := h.Service.UpdateGroup(r.Context(), input, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not update group")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *GroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}
	isAdmin := roleFromContext(r) == "admin"
	if err := h.Service.DeleteGroup(r.Context(), id, userIDFromContext(r), isAdmin); err != nil {
		respondError(w, err, "Could not delete group")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Join(r.Context(), id, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not join group")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}
	if err := h.Service.Leave(r.Context(), id, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not leave group")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroupHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid group id", http.StatusBadRequest)
		return
	}
	members, err := h.Service.GetMembers(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get members")
		return
	}
	json.NewEncoder(w).Encode(members)
}
