package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
)

type PostHandler struct {
	Service *services.PostService
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input models.Post
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.UserID = userIDFromContext(r)

	post, err := h.Service.CreatePost(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create post")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(post)
}

func (h *PostHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}
	post, err := h.Service.GetPostByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get post")
		return
	}
	json.NewEncoder(w).Encode(post)
}

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	category := r.URL.Query().Get("category")

	posts, err := h.Service.GetPosts(r.Context(), category, page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get posts")
		return
	}
	json.NewEncoder(w).Encode(posts)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var input models.Post
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ID = id

	if err := h.Service.UpdatePost(r.Context(), input, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not update post")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}
	isAdmin := roleFromContext(r) == "admin"
	if err := h.Service.DeletePost(r.Context(), id, userIDFromContext(r), isAdmin); err != nil {
		respondError(w, err, "Could not delete post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var input models.PostComment
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.PostID = postID
	input.UserID = userIDFromContext(r)

	comment, err := h.Service.CreateComment(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create comment")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
}

func (h *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid comment id", http.StatusBadRequest)
		return
	}
	isAdmin := roleFromContext(r) == "admin"
	if err := h.Service.DeleteComment(r.Context(), id, userIDFromContext(r), isAdmin); err != nil {
		respondError(w, err, "Could not delete comment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PostHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}
	comments, err := h.Service.GetComments(r.Context(), postID)
	if err != nil {
		respondError(w, err, "Could not get comments")
		return
	}
	json.NewEncoder(w).Encode(comments)
}
