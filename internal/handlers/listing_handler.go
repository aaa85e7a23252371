package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"townhubBack/internal/models"
	"townhubBack/internal/services"
	"townhubBack/utils"
)

type ListingHandler struct {
	Service *services.ListingService
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var input models.Listing
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.UserID = userIDFromContext(r)

	listing, err := h.Service.CreateListing(r.Context(), input)
	if err != nil {
		respondError(w, err, "Could not create listing")
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing id", http.StatusBadRequest)
		return
	}
	listing, err := h.Service.GetListingByID(r.Context(), id)
	if err != nil {
		respondError(w, err, "Could not get listing")
		return
	}
	json.NewEncoder(w).Encode(listing)
}

func (h *ListingHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	category := r.URL.Query().Get("category")
	city := r.URL.Query().Get("city")

	listings, err := h.Service.GetListings(r.Context(), category, city, page, pageSize)
	if err != nil {
		respondError(w, err, "Could not get listings")
		return
	}
	json.NewEncoder(w).Encode(listings)
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing id", http.StatusBadRequest)
		return
	}

	var input models.Listing
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	input.ID = id

	if err := h.Service.UpdateListing(r.Context(), input, userIDFromContext(r)); err != nil {
		respondError(w, err, "Could not update listing")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// UploadImage stores a listing photo in object storage and saves its public
// URL on the listing.
func (h *ListingHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Could not parse form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Could not read file", http.StatusInternalServerError)
		return
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	url, err := utils.UploadFileToS3(data, fileName, "listings")
	if err != nil {
		http.Error(w, "Could not upload image", http.StatusInternalServerError)
		return
	}

	if err := h.Service.SetListingImage(r.Context(), id, userIDFromContext(r), url); err != nil {
		respondError(w, err, "Could not save image")
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"image_path": url})
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt(r, "id")
	if err != nil {
		http.Error(w, "Invalid listing id", http.StatusBadRequest)
		return
	}
	isAdmin := roleFromContext(r) == "admin"
	if err := h.Service.DeleteListing(r.Context(), id, userIDFromContext(r), isAdmin); err != nil {
		respondError(w, err, "Could not delete listing")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
