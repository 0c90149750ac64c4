package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/speps/go-hashids/v2"
)

var (
	ErrEndBeforeStart    = errors.New("end date must be after start date")
	ErrCapacityBelowRSVP = errors.New("capacity cannot be less than current confirmed RSVP count")
	ErrUnknownCategory   = errors.New("category does not exist")
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// Event represents an event in the system. Capacity is nil for unlimited
// events; a set capacity caps the number of confirmed RSVPs.
type Event struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	CategoryID    int64       `json:"category_id"`
	HostID        int64       `json:"host_id"`
	StartDate     time.Time   `json:"start_date"`
	EndDate       time.Time   `json:"end_date"`
	Location      string      `json:"location"`
	Latitude      *float64    `json:"latitude,omitempty"`
	Longitude     *float64    `json:"longitude,omitempty"`
	Capacity      *int        `json:"capacity,omitempty"`
	Price         float64     `json:"price"`
	IsFree        bool        `json:"is_free"`
	Status        EventStatus `json:"status"`
	AverageRating float64     `json:"average_rating"`
	TotalRatings  int         `json:"total_ratings"`
	RSVPCount     int         `json:"rsvp_count"`
	Code          string      `json:"code"`
	PhotoURLs     []string    `json:"photo_urls,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Joined fields
	CategoryName string `json:"category_name,omitempty"`
	HostName     string `json:"host_name,omitempty"`
}

type EventStore struct {
	db *sql.DB
}

// ValidateEventTimes enforces the end-after-start invariant shared by
// create and update.
func ValidateEventTimes(start, end time.Time) error {
	if !end.After(start) {
		return ErrEndBeforeStart
	}
	return nil
}

// eventCode derives the opaque shareable code embedded in event deep links.
func eventCode(id int64) (string, error) {
	hd := hashids.NewData()
	hd.Salt = "gather-event-codes"
	hd.MinLength = 8
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{id})
}

func (s *EventStore) Create(ctx context.Context, event *Event) error {
	if err := ValidateEventTimes(event.StartDate, event.EndDate); err != nil {
		return err
	}
	event.IsFree = event.Price == 0
	if event.Status == "" {
		event.Status = EventStatusDraft
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (
			title, description, category_id, host_id, start_date, end_date,
			location, latitude, longitude, capacity, price, is_free, status, photo_urls
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowContext(
		ctx, query,
		event.Title,
		event.Description,
		event.CategoryID,
		event.HostID,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Latitude,
		event.Longitude,
		event.Capacity,
		event.Price,
		event.IsFree,
		event.Status,
		pq.Array(event.PhotoURLs),
	).Scan(
		&event.ID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return ErrUnknownCategory
		}
		return fmt.Errorf("error creating event: %w", err)
	}

	// The share code encodes the row id, so it can only be assigned after
	// the insert.
	code, err := eventCode(event.ID)
	if err != nil {
		return fmt.Errorf("error generating event code: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE events SET code = $1 WHERE id = $2`, code, event.ID); err != nil {
		return fmt.Errorf("error saving event code: %w", err)
	}
	event.Code = code

	return tx.Commit()
}

func (s *EventStore) GetByID(ctx context.Context, eventID int64) (*Event, error) {
	query := `
		SELECT
			e.id, e.title, e.description, e.category_id, e.host_id,
			e.start_date, e.end_date, e.location, e.latitude, e.longitude,
			e.capacity, e.price, e.is_free, e.status, e.average_rating,
			e.total_ratings, e.code, e.photo_urls, e.created_at, e.updated_at,
			c.name AS category_name,
			u.first_name AS host_name,
			(SELECT COUNT(*) FROM rsvps r WHERE r.event_id = e.id AND r.status = 'confirmed') AS rsvp_count
		FROM events e
		JOIN categories c ON c.id = e.category_id
		JOIN users u ON u.id = e.host_id
		WHERE e.id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	event := &Event{}
	err := s.db.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.CategoryID,
		&event.HostID,
		&event.StartDate,
		&event.EndDate,
		&event.Location,
		&event.Latitude,
		&event.Longitude,
		&event.Capacity,
		&event.Price,
		&event.IsFree,
		&event.Status,
		&event.AverageRating,
		&event.TotalRatings,
		&event.Code,
		pq.Array(&event.PhotoURLs),
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.CategoryName,
		&event.HostName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// Update persists a modified event. The confirmed RSVP count is read inside
// the same transaction, behind a row lock, so a capacity reduction can never
// race a concurrent RSVP below the invariant.
func (s *EventStore) Update(ctx context.Context, event *Event) error {
	if err := ValidateEventTimes(event.StartDate, event.EndDate); err != nil {
		return err
	}
	event.IsFree = event.Price == 0

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, event.ID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if event.Capacity != nil {
		var confirmed int
		countQuery := `SELECT COUNT(*) FROM rsvps WHERE event_id = $1 AND status = 'confirmed'`
		if err := tx.QueryRowContext(ctx, countQuery, event.ID).Scan(&confirmed); err != nil {
			return fmt.Errorf("error counting confirmed RSVPs: %w", err)
		}
		if *event.Capacity < confirmed {
			return ErrCapacityBelowRSVP
		}
	}

	query := `
		UPDATE events
		SET title = $1, description = $2, category_id = $3, start_date = $4,
			end_date = $5, location = $6, latitude = $7, longitude = $8,
			capacity = $9, price = $10, is_free = $11, status = $12,
			updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`
	err = tx.QueryRowContext(
		ctx, query,
		event.Title,
		event.Description,
		event.CategoryID,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Latitude,
		event.Longitude,
		event.Capacity,
		event.Price,
		event.IsFree,
		event.Status,
		event.ID,
	).Scan(&event.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return ErrUnknownCategory
		}
		return fmt.Errorf("error updating event: %w", err)
	}

	return tx.Commit()
}

func (s *EventStore) Delete(ctx context.Context, eventID, hostID int64) error {
	query := `DELETE FROM events WHERE id = $1 AND host_id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query, eventID, hostID)
	if err != nil {
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *EventStore) IsHost(ctx context.Context, eventID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM events
			WHERE id = $1 AND host_id = $2
		)`

	var isHost bool
	err := s.db.QueryRowContext(ctx, query, eventID, userID).Scan(&isHost)
	if err != nil {
		return false, err
	}
	return isHost, nil
}

func (s *EventStore) AddPhotoURL(ctx context.Context, eventID int64, photoURL string) error {
	query := `
		UPDATE events
		SET photo_urls = array_append(photo_urls, $1)
		WHERE id = $2
	`
	_, err := s.db.ExecContext(ctx, query, photoURL, eventID)
	if err != nil {
		return fmt.Errorf("failed to add photo URL: %w", err)
	}
	return nil
}

func (s *EventStore) RemovePhotoURL(ctx context.Context, eventID int64, photoURL string) error {
	query := `
		UPDATE events
		SET photo_urls = array_remove(photo_urls, $1)
		WHERE id = $2
	`
	_, err := s.db.ExecContext(ctx, query, photoURL, eventID)
	if err != nil {
		return fmt.Errorf("failed to remove photo URL: %w", err)
	}
	return nil
}

// List queries events matching the provided filters and returns the matching
// rows plus the total match count for pagination metadata.
func (s *EventStore) List(ctx context.Context, q EventFilterQuery) ([]Event, int, error) {
	var minLat, maxLat, minLng, maxLng interface{}
	if q.Lat != nil && q.Lng != nil {
		box := BoundingBox(*q.Lat, *q.Lng, q.Radius)
		minLat, maxLat = box.MinLat, box.MaxLat
		minLng, maxLng = box.MinLng, box.MaxLng
	}

	query := `
		SELECT
			e.id, e.title, e.description, e.category_id, e.host_id,
			e.start_date, e.end_date, e.location, e.latitude, e.longitude,
			e.capacity, e.price, e.is_free, e.status, e.average_rating,
			e.total_ratings, e.code, e.created_at, e.updated_at,
			c.name AS category_name,
			u.first_name AS host_name,
			(SELECT COUNT(*) FROM rsvps r WHERE r.event_id = e.id AND r.status = 'confirmed') AS rsvp_count,
			COUNT(*) OVER() AS total_count
		FROM events e
		JOIN categories c ON c.id = e.category_id
		JOIN users u ON u.id = e.host_id
		WHERE 1 = 1
			AND ($1::bool = false OR e.start_date >= NOW())
			AND ($2::bigint IS NULL OR e.category_id = $2)
			AND ($3::varchar IS NULL OR e.status = $3)
			AND ($4::varchar IS NULL OR (
				e.title ILIKE '%' || $4 || '%'
				OR e.description ILIKE '%' || $4 || '%'
				OR e.location ILIKE '%' || $4 || '%'
			))
			AND ($5::float8 IS NULL OR (
				e.latitude IS NOT NULL AND e.longitude IS NOT NULL
				AND e.latitude BETWEEN $5 AND $6
				AND e.longitude BETWEEN $7 AND $8
			))
		ORDER BY ` + q.OrderBy() + `
		LIMIT $9 OFFSET $10`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query,
		q.Upcoming,                 // $1: upcoming only
		nullIfZero64(q.CategoryID), // $2: category
		nullIfEmpty(q.Status),      // $3: status
		nullIfEmpty(q.Search),      // $4: text search
		minLat,                     // $5: bounding box
		maxLat,                     // $6
		minLng,                     // $7
		maxLng,                     // $8
		q.Limit,                    // $9
		q.Offset,                   // $10
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := make([]Event, 0)
	var total int
	for rows.Next() {
		var event Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.CategoryID,
			&event.HostID,
			&event.StartDate,
			&event.EndDate,
			&event.Location,
			&event.Latitude,
			&event.Longitude,
			&event.Capacity,
			&event.Price,
			&event.IsFree,
			&event.Status,
			&event.AverageRating,
			&event.TotalRatings,
			&event.Code,
			&event.CreatedAt,
			&event.UpdatedAt,
			&event.CategoryName,
			&event.HostName,
			&event.RSVPCount,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// Helper functions to return nil if the value is the default.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero64(i int64) interface{} {
	if i == 0 {
		return nil
	}
	return i
}
