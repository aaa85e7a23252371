package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input models.User
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	user, err := h.Service.SignUp(r.Context(), input)
	if err != nil {
		switch err {
		case models.ErrDuplicateEmail, models.ErrDuplicatePhone:
			http.Error(w, err.Error(), http.StatusConflict)
		case models.ErrValidation:
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Could not sign up", http.StatusInternalServerError)
		}
		return
	}
	user.Password = ""
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	tokens, user, err := h.Service.SignIn(r.Context(), input.Email, input.Password)
	if err != nil {
		switch err {
		case models.ErrInvalidCredentials, models.ErrUserNotFound:
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
		case models.ErrUserBanned:
			http.Error(w, "user is banned", http.StatusForbidden)
		default:
			http.Error(w, "Could not sign in", http.StatusInternalServerError)
		}
		return
	}

	user.Password = ""
	json.NewEncoder(w).Encode(map[string]interface{}{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          user,
	})
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUserByID(r.Context(), userIDFromContext(r))
	if err != nil {
		respondError(w, err, "Could not get user")
		return
	}
	user.Password = ""
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	user, err := h.Service.GetUserByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get user")
		return
	}
	user.Password = ""
	json.NewEncoder(w).Encode(user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var input models.User
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ID = userIDFromContext(r)

	if err := h.Service.UpdateUser(r.Context(), input); err != nil {
		respondError(w, err, "Could not update user")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	users, err := h.Service.GetUsers(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get users")
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	json.NewEncoder(w).Encode(users)
}
