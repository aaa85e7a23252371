package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"townhubBack/internal/models"
)

type ListingRepository struct {
	DB *sql.DB
}

func (r *ListingRepository) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	query := `
        INSERT INTO listings (user_id, title, description, price, category, city, image_path, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	now := time.Now()
	result, err := r.DB.ExecContext(ctx, query, listing.UserID, listing.Title, listing.Description, listing.Price, listing.Category, listing.City, listing.ImagePath, listing.Status, now)
	if err != nil {
		return models.Listing{}, err
	}
	insertedID, err := result.LastInsertId()
	if err != nil {
		return models.Listing{}, err
	}
	listing.ID = int(insertedID)
	listing.CreatedAt = now
	return listing, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int) (models.Listing, error) {
	var listing models.Listing
	query := `SELECT id, user_id, title, description, price, category, city, image_path, status, created_at, updated_at FROM listings WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&listing.ID, &listing.UserID, &listing.Title, &listing.Description, &listing.Price,
		&listing.Category, &listing.City, &listing.ImagePath, &listing.Status, &listing.CreatedAt, &listing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, models.ErrListingNotFound
		}
		return models.Listing{}, err
	}
	return listing, nil
}

func (r *ListingRepository) GetListings(ctx context.Context, category, city string, page, pageSize int) ([]models.Listing, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `
        SELECT id, user_id, title, description, price, category, city, image_path, status, created_at, updated_at
        FROM listings
        WHERE status = 'active' AND (? = '' OR category = ?) AND (? = '' OR city = ?)
        ORDER BY created_at DESC
        LIMIT ? OFFSET ?
    `
	rows, err := r.DB.QueryContext(ctx, query, category, category, city, city, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []models.Listing{}
	for rows.Next() {
		var listing models.Listing
		if err := rows.Scan(&listing.ID, &listing.UserID, &listing.Title, &listing.Description, &listing.Price,
			&listing.Category, &listing.City, &listing.ImagePath, &listing.Status, &listing.CreatedAt, &listing.UpdatedAt); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) UpdateListing(ctx context.Context, listing models.Listing) error {
	query := `UPDATE listings SET title = ?, description = ?, price = ?, category = ?, city = ?, image_path = ?, status = ?, updated_at = NOW() WHERE id = ?`
	_, err := r.DB.ExecContext(ctx, query, listing.Title, listing.Description, listing.Price, listing.Category, listing.City, listing.ImagePath, listing.Status, listing.ID)
	return err
}

func (r *ListingRepository) SetImagePath(ctx context.Context, id int, imagePath string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE listings SET image_path = ?, updated_at = NOW() WHERE id = ?`, imagePath, id)
	return err
}

func (r *ListingRepository) DeleteListing(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	return err
}
