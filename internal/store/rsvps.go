package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	ErrEventEnded = errors.New("cannot RSVP to an event that has already ended")
	ErrEventFull  = errors.New("event is at full capacity")
)

type RSVPStatus string

const (
	RSVPStatusPending   RSVPStatus = "pending"
	RSVPStatusConfirmed RSVPStatus = "confirmed"
	RSVPStatusDeclined  RSVPStatus = "declined"
	RSVPStatusCancelled RSVPStatus = "cancelled"
)

// RSVP represents a user's attendance intent for an event. At most one row
// exists per (event, user) pair; toggling mutates it in place.
type RSVP struct {
	ID        int64      `json:"id"`
	EventID   int64      `json:"event_id"`
	UserID    int64      `json:"user_id"`
	Status    RSVPStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Joined fields
	EventTitle string    `json:"event_title,omitempty"`
	StartDate  time.Time `json:"start_date"`
}

// ToggleResult is the outcome of a toggle: the row's new status and the
// event's confirmed count after the write.
type ToggleResult struct {
	Status    RSVPStatus `json:"status"`
	RSVPCount int        `json:"rsvp_count"`
}

type RSVPStore struct {
	db *sql.DB
}

// NextRSVPStatus decides what a toggle does. current is empty when no row
// exists yet for the pair. capacity nil means unlimited; confirmed is the
// event's current confirmed count.
func NextRSVPStatus(current RSVPStatus, endDate time.Time, capacity *int, confirmed int, now time.Time) (RSVPStatus, error) {
	if endDate.Before(now) {
		return "", ErrEventEnded
	}
	if current == RSVPStatusConfirmed {
		return RSVPStatusCancelled, nil
	}
	// creating a row, or re-confirming a pending/declined/cancelled one
	if capacity != nil && confirmed >= *capacity {
		return "", ErrEventFull
	}
	return RSVPStatusConfirmed, nil
}

// Toggle flips the caller's RSVP for the event, creating the row on first
// use. The whole operation runs in one transaction with the event row locked,
// so the confirmed-count check and the write cannot race a concurrent toggle
// past the capacity limit.
func (s *RSVPStore) Toggle(ctx context.Context, eventID, userID int64) (*ToggleResult, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var endDate time.Time
	var capacity sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT end_date, capacity FROM events WHERE id = $1 FOR UPDATE`,
		eventID,
	).Scan(&endDate, &capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error locking event: %w", err)
	}

	var confirmed int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rsvps WHERE event_id = $1 AND status = 'confirmed'`,
		eventID,
	).Scan(&confirmed)
	if err != nil {
		return nil, fmt.Errorf("error counting confirmed RSVPs: %w", err)
	}

	var current RSVPStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM rsvps WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	).Scan(&current)
	exists := true
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("error retrieving RSVP: %w", err)
		}
		exists = false
	}

	var capLimit *int
	if capacity.Valid {
		c := int(capacity.Int64)
		capLimit = &c
	}

	next, err := NextRSVPStatus(current, endDate, capLimit, confirmed, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if exists {
		_, err = tx.ExecContext(ctx,
			`UPDATE rsvps SET status = $1, updated_at = NOW() WHERE event_id = $2 AND user_id = $3`,
			next, eventID, userID,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO rsvps (event_id, user_id, status) VALUES ($1, $2, $3)`,
			eventID, userID, next,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("error writing RSVP: %w", err)
	}

	switch {
	case next == RSVPStatusConfirmed && current != RSVPStatusConfirmed:
		confirmed++
	case next != RSVPStatusConfirmed && current == RSVPStatusConfirmed:
		confirmed--
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &ToggleResult{Status: next, RSVPCount: confirmed}, nil
}

func (s *RSVPStore) ListByUser(ctx context.Context, userID int64) ([]RSVP, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, r.status, r.created_at, r.updated_at,
			e.title, e.start_date
		FROM rsvps r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY e.start_date DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying RSVPs: %w", err)
	}
	defer rows.Close()

	rsvps := make([]RSVP, 0)
	for rows.Next() {
		var rsvp RSVP
		err := rows.Scan(
			&rsvp.ID,
			&rsvp.EventID,
			&rsvp.UserID,
			&rsvp.Status,
			&rsvp.CreatedAt,
			&rsvp.UpdatedAt,
			&rsvp.EventTitle,
			&rsvp.StartDate,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning RSVP: %w", err)
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return rsvps, nil
}
