package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		GetByID(context.Context, int64) (*User, error)
		GetByEmail(context.Context, string) (*User, error)
		CreateAndInvite(ctx context.Context, user *User, token string, exp time.Duration) error
		Activate(context.Context, string) error
		Delete(context.Context, int64) error
		SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error
		GetRefreshToken(ctx context.Context, userID int64) (string, error)
		DeleteRefreshToken(ctx context.Context, userID int64) error
	}
	Categories interface {
		Create(context.Context, *Category) error
		GetByID(context.Context, int64) (*Category, error)
		List(ctx context.Context, search string) ([]Category, error)
	}
	Events interface {
		Create(context.Context, *Event) error
		GetByID(context.Context, int64) (*Event, error)
		Update(context.Context, *Event) error
		Delete(ctx context.Context, eventID, hostID int64) error
		List(context.Context, EventFilterQuery) ([]Event, int, error)
		IsHost(ctx context.Context, eventID, userID int64) (bool, error)
		AddPhotoURL(ctx context.Context, eventID int64, url string) error
		RemovePhotoURL(ctx context.Context, eventID int64, url string) error
	}
	RSVPs interface {
		Toggle(ctx context.Context, eventID, userID int64) (*ToggleResult, error)
		ListByUser(ctx context.Context, userID int64) ([]RSVP, error)
	}
	Ratings interface {
		Upsert(context.Context, *Rating) (*RatingSummary, error)
		ListByEvent(ctx context.Context, eventID int64) ([]Rating, error)
		ListByUser(ctx context.Context, userID int64) ([]Rating, error)
	}
	Profiles interface {
		GetOrCreate(ctx context.Context, userID int64) (*Profile, error)
		Update(context.Context, *Profile) error
		SetInterests(ctx context.Context, userID int64, categoryIDs []int64) error
		SetAvatar(ctx context.Context, userID int64, url string) error
	}
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		Users:      &UsersStore{db},
		Categories: &CategoryStore{db},
		Events:     &EventStore{db},
		RSVPs:      &RSVPStore{db},
		Ratings:    &RatingStore{db},
		Profiles:   &ProfileStore{db},
	}
}
