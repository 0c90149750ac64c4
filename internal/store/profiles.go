package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Profile is the one-to-one extension of a user account: bio, contact info,
// home location and the set of interest categories driving discovery.
type Profile struct {
	UserID    int64      `json:"user_id"`
	Bio       NullString `json:"bio" swaggertype:"string"`
	Phone     NullString `json:"phone" swaggertype:"string"`
	Location  NullString `json:"location" swaggertype:"string"`
	AvatarURL NullString `json:"avatar_url" swaggertype:"string"`
	Interests []Category `json:"interests"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ProfileStore struct {
	db *sql.DB
}

// GetOrCreate returns the caller's profile, creating an empty row on first
// access.
func (s *ProfileStore) GetOrCreate(ctx context.Context, userID int64) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	profile := &Profile{}
	err = s.db.QueryRowContext(ctx,
		`SELECT user_id, bio, phone, location, avatar_url, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(
		&profile.UserID,
		&profile.Bio,
		&profile.Phone,
		&profile.Location,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	interests, err := s.getInterests(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Interests = interests

	return profile, nil
}

func (s *ProfileStore) getInterests(ctx context.Context, userID int64) ([]Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.icon, c.created_at
		FROM profile_interests pi
		JOIN categories c ON c.id = pi.category_id
		WHERE pi.user_id = $1
		ORDER BY c.name ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying interests: %w", err)
	}
	defer rows.Close()

	interests := make([]Category, 0)
	for rows.Next() {
		var category Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.Icon,
			&category.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		interests = append(interests, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return interests, nil
}

func (s *ProfileStore) Update(ctx context.Context, profile *Profile) error {
	query := `
		UPDATE profiles
		SET bio = $1, phone = $2, location = $3, updated_at = NOW()
		WHERE user_id = $4
		RETURNING updated_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRowContext(ctx, query,
		profile.Bio,
		profile.Phone,
		profile.Location,
		profile.UserID,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("error updating profile: %w", err)
	}
	return nil
}

// SetInterests replaces the profile's interest set atomically.
func (s *ProfileStore) SetInterests(ctx context.Context, userID int64, categoryIDs []int64) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM profile_interests WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("error clearing interests: %w", err)
	}

	if len(categoryIDs) > 0 {
		insert := `
			INSERT INTO profile_interests (user_id, category_id)
			SELECT $1, unnest($2::bigint[])
		`
		if _, err := tx.ExecContext(ctx, insert, userID, pq.Array(categoryIDs)); err != nil {
			return fmt.Errorf("error setting interests: %w", err)
		}
	}

	return tx.Commit()
}

func (s *ProfileStore) SetAvatar(ctx context.Context, userID int64, url string) error {
	query := `UPDATE profiles SET avatar_url = $1, updated_at = NOW() WHERE user_id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, query, url, userID)
	if err != nil {
		return fmt.Errorf("error setting avatar: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
