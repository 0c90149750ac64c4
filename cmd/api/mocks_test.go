package main

import (
	"context"
	"time"

	"gather/internal/store"
)

// testStorage returns a Storage backed by in-memory fakes. Individual tests
// override the function fields they care about.
func testStorage() store.Storage {
	return store.Storage{
		Users:      &mockUsersStore{},
		Categories: &mockCategoriesStore{},
		Events:     &mockEventsStore{},
		RSVPs:      &mockRSVPsStore{},
		Ratings:    &mockRatingsStore{},
		Profiles:   &mockProfilesStore{},
	}
}

type mockUsersStore struct {
	onGetByID func(int64) (*store.User, error)
}

func (m *mockUsersStore) GetByID(ctx context.Context, id int64) (*store.User, error) {
	if m.onGetByID != nil {
		return m.onGetByID(id)
	}
	return &store.User{ID: id, FirstName: "Test", Email: "test@example.com", IsActive: true}, nil
}

func (m *mockUsersStore) GetByEmail(ctx context.Context, email string) (*store.User, error) {
	return nil, store.ErrNotFound
}

func (m *mockUsersStore) CreateAndInvite(ctx context.Context, user *store.User, token string, exp time.Duration) error {
	return nil
}

func (m *mockUsersStore) Activate(ctx context.Context, token string) error { return nil }

func (m *mockUsersStore) Delete(ctx context.Context, id int64) error { return nil }

func (m *mockUsersStore) SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	return nil
}

func (m *mockUsersStore) GetRefreshToken(ctx context.Context, userID int64) (string, error) {
	return "", store.ErrNotFound
}

func (m *mockUsersStore) DeleteRefreshToken(ctx context.Context, userID int64) error { return nil }

type mockCategoriesStore struct {
	onCreate func(*store.Category) error
	onList   func(string) ([]store.Category, error)
}

func (m *mockCategoriesStore) Create(ctx context.Context, category *store.Category) error {
	if m.onCreate != nil {
		return m.onCreate(category)
	}
	category.ID = 1
	return nil
}

func (m *mockCategoriesStore) GetByID(ctx context.Context, id int64) (*store.Category, error) {
	return &store.Category{ID: id, Name: "Music"}, nil
}

func (m *mockCategoriesStore) List(ctx context.Context, search string) ([]store.Category, error) {
	if m.onList != nil {
		return m.onList(search)
	}
	return []store.Category{}, nil
}

type mockEventsStore struct {
	onCreate  func(*store.Event) error
	onGetByID func(int64) (*store.Event, error)
	onUpdate  func(*store.Event) error
	onDelete  func(eventID, hostID int64) error
	onList    func(store.EventFilterQuery) ([]store.Event, int, error)
	onIsHost  func(eventID, userID int64) (bool, error)
}

func (m *mockEventsStore) Create(ctx context.Context, event *store.Event) error {
	if m.onCreate != nil {
		return m.onCreate(event)
	}
	if err := store.ValidateEventTimes(event.StartDate, event.EndDate); err != nil {
		return err
	}
	event.ID = 1
	return nil
}

func (m *mockEventsStore) GetByID(ctx context.Context, id int64) (*store.Event, error) {
	if m.onGetByID != nil {
		return m.onGetByID(id)
	}
	return &store.Event{
		ID:        id,
		Title:     "Test Event",
		HostID:    1,
		StartDate: time.Now().Add(time.Hour),
		EndDate:   time.Now().Add(2 * time.Hour),
		Status:    store.EventStatusPublished,
	}, nil
}

func (m *mockEventsStore) Update(ctx context.Context, event *store.Event) error {
	if m.onUpdate != nil {
		return m.onUpdate(event)
	}
	return nil
}

func (m *mockEventsStore) Delete(ctx context.Context, eventID, hostID int64) error {
	if m.onDelete != nil {
		return m.onDelete(eventID, hostID)
	}
	return nil
}

func (m *mockEventsStore) List(ctx context.Context, q store.EventFilterQuery) ([]store.Event, int, error) {
	if m.onList != nil {
		return m.onList(q)
	}
	return []store.Event{}, 0, nil
}

func (m *mockEventsStore) IsHost(ctx context.Context, eventID, userID int64) (bool, error) {
	if m.onIsHost != nil {
		return m.onIsHost(eventID, userID)
	}
	return true, nil
}

func (m *mockEventsStore) AddPhotoURL(ctx context.Context, eventID int64, url string) error {
	return nil
}

func (m *mockEventsStore) RemovePhotoURL(ctx context.Context, eventID int64, url string) error {
	return nil
}

type mockRSVPsStore struct {
	onToggle func(eventID, userID int64) (*store.ToggleResult, error)
}

func (m *mockRSVPsStore) Toggle(ctx context.Context, eventID, userID int64) (*store.ToggleResult, error) {
	if m.onToggle != nil {
		return m.onToggle(eventID, userID)
	}
	return &store.ToggleResult{Status: store.RSVPStatusConfirmed, RSVPCount: 1}, nil
}

func (m *mockRSVPsStore) ListByUser(ctx context.Context, userID int64) ([]store.RSVP, error) {
	return []store.RSVP{}, nil
}

type mockRatingsStore struct {
	onUpsert func(*store.Rating) (*store.RatingSummary, error)
}

func (m *mockRatingsStore) Upsert(ctx context.Context, rating *store.Rating) (*store.RatingSummary, error) {
	if m.onUpsert != nil {
		return m.onUpsert(rating)
	}
	return &store.RatingSummary{AverageRating: float64(rating.Value), TotalRatings: 1}, nil
}

func (m *mockRatingsStore) ListByEvent(ctx context.Context, eventID int64) ([]store.Rating, error) {
	return []store.Rating{}, nil
}

func (m *mockRatingsStore) ListByUser(ctx context.Context, userID int64) ([]store.Rating, error) {
	return []store.Rating{}, nil
}

type mockProfilesStore struct{}

func (m *mockProfilesStore) GetOrCreate(ctx context.Context, userID int64) (*store.Profile, error) {
	return &store.Profile{UserID: userID, Interests: []store.Category{}}, nil
}

func (m *mockProfilesStore) Update(ctx context.Context, profile *store.Profile) error { return nil }

func (m *mockProfilesStore) SetInterests(ctx context.Context, userID int64, categoryIDs []int64) error {
	return nil
}

func (m *mockProfilesStore) SetAvatar(ctx context.Context, userID int64, url string) error {
	return nil
}
