package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Rating is a user's 1-5 score for an event. One row per (event, user);
// submitting again replaces the prior value.
type Rating struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Value     int       `json:"rating"` // 1-5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined fields
	UserName   string `json:"user_name,omitempty"`
	EventTitle string `json:"event_title,omitempty"`
}

// RatingSummary carries the recomputed aggregates persisted on the event.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}

type RatingStore struct {
	db *sql.DB
}

// Upsert creates or replaces the caller's rating, then recomputes the
// event's average and count from all current rows and persists both, all in
// one transaction.
func (s *RatingStore) Upsert(ctx context.Context, rating *Rating) (*RatingSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var eventID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, rating.EventID).Scan(&eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error locking event: %w", err)
	}

	query := `
		INSERT INTO ratings (event_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, user_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, query,
		rating.EventID,
		rating.UserID,
		rating.Value,
		rating.Comment,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error upserting rating: %w", err)
	}

	summary := &RatingSummary{}
	statsQuery := `
		SELECT COUNT(id), COALESCE(AVG(rating), 0)
		FROM ratings
		WHERE event_id = $1
	`
	err = tx.QueryRowContext(ctx, statsQuery, rating.EventID).Scan(&summary.TotalRatings, &summary.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("error computing rating stats: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET average_rating = $1, total_ratings = $2, updated_at = NOW() WHERE id = $3`,
		summary.AverageRating, summary.TotalRatings, rating.EventID,
	)
	if err != nil {
		return nil, fmt.Errorf("error persisting rating stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *RatingStore) ListByEvent(ctx context.Context, eventID int64) ([]Rating, error) {
	query := `
		SELECT rt.id, rt.event_id, rt.user_id, rt.rating, rt.comment,
			rt.created_at, rt.updated_at, u.first_name
		FROM ratings rt
		JOIN users u ON u.id = rt.user_id
		WHERE rt.event_id = $1
		ORDER BY rt.created_at DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]Rating, 0)
	for rows.Next() {
		var rating Rating
		err := rows.Scan(
			&rating.ID,
			&rating.EventID,
			&rating.UserID,
			&rating.Value,
			&rating.Comment,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.UserName,
		)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}

func (s *RatingStore) ListByUser(ctx context.Context, userID int64) ([]Rating, error) {
	query := `
		SELECT rt.id, rt.event_id, rt.user_id, rt.rating, rt.comment,
			rt.created_at, rt.updated_at, e.title
		FROM ratings rt
		JOIN events e ON e.id = rt.event_id
		WHERE rt.user_id = $1
		ORDER BY rt.created_at DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]Rating, 0)
	for rows.Next() {
		var rating Rating
		err := rows.Scan(
			&rating.ID,
			&rating.EventID,
			&rating.UserID,
			&rating.Value,
			&rating.Comment,
			&rating.CreatedAt,
			&rating.UpdatedAt,
			&rating.EventTitle,
		)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}
