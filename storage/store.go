package storage

import (
	"context"
	"fmt"

	"app/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps the connection pool with the typed queries the rest of the
// application uses. All methods are read-only except SaveChatMessage.
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a Store backed by the given pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ListAttractions returns one page of active attractions, optionally
// filtered by category, together with the total matching count.
func (s *Store) ListAttractions(ctx context.Context, category string, page, pageSize int) ([]models.Attraction, int, error) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	countQuery := `SELECT COUNT(*) FROM attractions WHERE is_active = TRUE`
	query := `
		SELECT id, name, description, category, location, price, rating,
		       visit_count, image_url, is_active, created_at, updated_at
		FROM attractions
		WHERE is_active = TRUE
	`
	countArgs := []interface{}{}
	args := []interface{}{}
	if category != "" {
		countQuery += " AND category = $1"
		countArgs = append(countArgs, category)
		query += " AND category = $1"
		args = append(args, category)
	}

	var total int
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attractions: %w", err)
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attractions: %w", err)
	}
	defer rows.Close()

	attractions := make([]models.Attraction, 0)
	for rows.Next() {
		var a models.Attraction
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Description, &a.Category, &a.Location,
			&a.Price, &a.Rating, &a.VisitCount, &a.ImageURL, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attraction: %w", err)
		}
		attractions = append(attractions, a)
	}
	return attractions, total, rows.Err()
}

// GetAttraction fetches a single attraction by id.
func (s *Store) GetAttraction(ctx context.Context, id int64) (*models.Attraction, error) {
	query := `
		SELECT id, name, description, category, location, price, rating,
		       visit_count, image_url, is_active, created_at, updated_at
		FROM attractions
		WHERE id = $1
	`
	var a models.Attraction
	err := s.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.Category, &a.Location,
		&a.Price, &a.Rating, &a.VisitCount, &a.ImageURL, &a.IsActive,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attraction %d: %w", id, err)
	}
	return &a, nil
}

// CreateAttraction inserts a new attraction and returns the stored row.
func (s *Store) CreateAttraction(ctx context.Context, a *models.Attraction) error {
	query := `
		INSERT INTO attractions (name, description, category, location, price, rating, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		RETURNING id, visit_count, is_active, created_at, updated_at
	`
	err := s.db.QueryRow(ctx, query,
		a.Name, a.Description, a.Category, a.Location, a.Price, a.Rating, a.ImageURL,
	).Scan(&a.ID, &a.VisitCount, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create attraction: %w", err)
	}
	return nil
}

// UpdateAttraction updates the editable fields of an attraction.
func (s *Store) UpdateAttraction(ctx context.Context, a *models.Attraction) error {
	query := `
		UPDATE attractions
		SET name = $1, description = $2, category = $3, location = $4,
		    price = $5, rating = $6, image_url = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`
	err := s.db.QueryRow(ctx, query,
		a.Name, a.Description, a.Category, a.Location, a.Price, a.Rating, a.ImageURL, a.ID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return pgx.ErrNoRows
		}
		return fmt.Errorf("failed to update attraction %d: %w", a.ID, err)
	}
	return nil
}

// DeleteAttraction soft-deletes an attraction.
func (s *Store) DeleteAttraction(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `UPDATE attractions SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attraction %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
