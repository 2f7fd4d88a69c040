package storage

import (
	"context"
	"fmt"
	"time"

	"app/models"

	"github.com/google/uuid"
)

// GetRecentVisits returns the most recent visits joined with the name of
// the visited attraction.
func (s *Store) GetRecentVisits(ctx context.Context, limit int) ([]models.Visit, error) {
	query := `
		SELECT v.id, v.attraction_id, a.name, v.user_id, v.visit_date,
		       v.party_size, v.amount_paid, v.rating
		FROM visits v
		JOIN attractions a ON v.attraction_id = a.id
		ORDER BY v.visit_date DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent visits: %w", err)
	}
	defer rows.Close()

	visits := make([]models.Visit, 0)
	for rows.Next() {
		var v models.Visit
		if err := rows.Scan(&v.ID, &v.AttractionID, &v.AttractionName, &v.UserID,
			&v.VisitDate, &v.PartySize, &v.AmountPaid, &v.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// GetTopAttractions returns attractions ranked by visit count.
func (s *Store) GetTopAttractions(ctx context.Context, limit int) ([]models.AttractionStats, error) {
	query := `
		SELECT id, name, category, visit_count, price, rating
		FROM attractions
		WHERE is_active = TRUE
		ORDER BY visit_count DESC, name
		LIMIT $1
	`
	return s.queryAttractionStats(ctx, query, limit)
}

// GetTopRatedAttractions returns attractions ranked by rating, visit count
// breaking ties.
func (s *Store) GetTopRatedAttractions(ctx context.Context, limit int) ([]models.AttractionStats, error) {
	query := `
		SELECT id, name, category, visit_count, price, rating
		FROM attractions
		WHERE is_active = TRUE
		ORDER BY rating DESC, visit_count DESC
		LIMIT $1
	`
	return s.queryAttractionStats(ctx, query, limit)
}

func (s *Store) queryAttractionStats(ctx context.Context, query string, limit int) ([]models.AttractionStats, error) {
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attraction stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.AttractionStats, 0)
	for rows.Next() {
		var a models.AttractionStats
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Visits, &a.Price, &a.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan attraction stats: %w", err)
		}
		stats = append(stats, a)
	}
	return stats, rows.Err()
}

// GetMonthlyTrends returns per-calendar-month visit rollups, most recent
// month first. The COALESCE guards cover months where every rating is null.
func (s *Store) GetMonthlyTrends(ctx context.Context, months int) ([]models.MonthlyTrend, error) {
	query := `
		SELECT to_char(date_trunc('month', visit_date), 'YYYY-MM') AS month,
		       COUNT(*) AS visits,
		       COALESCE(SUM(amount_paid), 0) AS revenue,
		       COALESCE(AVG(amount_paid), 0) AS avg_revenue,
		       COALESCE(AVG(rating), 0) AS avg_rating
		FROM visits
		GROUP BY 1
		ORDER BY 1 DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly trends: %w", err)
	}
	defer rows.Close()

	trends := make([]models.MonthlyTrend, 0)
	for rows.Next() {
		var t models.MonthlyTrend
		if err := rows.Scan(&t.Month, &t.Visits, &t.Revenue, &t.AvgRevenue, &t.AvgRating); err != nil {
			return nil, fmt.Errorf("failed to scan monthly trend: %w", err)
		}
		trends = append(trends, t)
	}
	return trends, rows.Err()
}

// CountAttractions returns the number of active attractions.
func (s *Store) CountAttractions(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM attractions WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attractions: %w", err)
	}
	return count, nil
}

// CountVisits returns the total number of recorded visits.
func (s *Store) CountVisits(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM visits`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

// CountUserVisits returns how many visits a single user has recorded.
func (s *Store) CountUserVisits(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM visits WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count visits for user %s: %w", userID, err)
	}
	return count, nil
}

// GetCategories returns the distinct active attraction categories.
func (s *Store) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT category FROM attractions WHERE is_active = TRUE ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryBreakdown returns per-category counts and averages. The
// percentage field is computed by the caller, which knows the total.
func (s *Store) GetCategoryBreakdown(ctx context.Context) ([]models.CategoryStats, error) {
	query := `
		SELECT category,
		       COUNT(*) AS count,
		       COALESCE(AVG(rating), 0) AS avg_rating,
		       COALESCE(AVG(price), 0) AS avg_price
		FROM attractions
		WHERE is_active = TRUE
		GROUP BY category
		ORDER BY count DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query category breakdown: %w", err)
	}
	defer rows.Close()

	breakdown := make([]models.CategoryStats, 0)
	for rows.Next() {
		var c models.CategoryStats
		if err := rows.Scan(&c.Category, &c.Count, &c.AvgRating, &c.AvgPrice); err != nil {
			return nil, fmt.Errorf("failed to scan category stats: %w", err)
		}
		breakdown = append(breakdown, c)
	}
	return breakdown, rows.Err()
}

// SaveChatMessage appends a chat-history record. Callers treat failures as
// best effort; the chat response is never blocked on this write.
func (s *Store) SaveChatMessage(ctx context.Context, userID, message, response string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO chat_messages (id, user_id, message, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), userID, message, response, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// GetRecentChatHistory returns a user's latest chat turns, newest first.
func (s *Store) GetRecentChatHistory(ctx context.Context, userID string, limit int) ([]models.ChatMessage, error) {
	query := `
		SELECT id, user_id, message, response, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	history := make([]models.ChatMessage, 0)
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		history = append(history, m)
	}
	return history, rows.Err()
}
