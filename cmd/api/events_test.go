package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gather/internal/store"
)

func TestCreateEventHandler(t *testing.T) {
	st := testStorage()

	app := newTestApplication(t, st)
	mux := app.mount()
	token := app.bearerFor(t, 7)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		req.Header.Set("Content-Type", "application/json")
		return executeRequest(req, mux)
	}

	start := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	end := time.Now().Add(26 * time.Hour).Format(time.RFC3339)

	t.Run("should create a valid event", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"title": "Park Run",
			"description": "Casual 5k",
			"category_id": 2,
			"start_date": %q,
			"end_date": %q,
			"location": "Riverside Park",
			"capacity": 30,
			"price": 0
		}`, start, end)

		rr := post(body)

		checkResponseCode(t, http.StatusCreated, rr.Code)

		var resp struct {
			Data store.Event `json:"data"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Data.HostID != 7 {
			t.Errorf("got host_id %d, want the authenticated user", resp.Data.HostID)
		}
	})

	t.Run("should reject end before start", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"title": "Backwards",
			"description": "Ends before it starts",
			"category_id": 2,
			"start_date": %q,
			"end_date": %q,
			"location": "Nowhere"
		}`, end, start)

		rr := post(body)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should reject zero capacity", func(t *testing.T) {
		body := fmt.Sprintf(`{
			"title": "No Room",
			"description": "Capacity must be omitted for unlimited",
			"category_id": 2,
			"start_date": %q,
			"end_date": %q,
			"location": "Somewhere",
			"capacity": 0
		}`, start, end)

		rr := post(body)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should reject missing required fields", func(t *testing.T) {
		rr := post(`{"title": "Only a title"}`)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should return 404 for an unknown category", func(t *testing.T) {
		events := st.Events.(*mockEventsStore)
		events.onCreate = func(event *store.Event) error {
			return store.ErrUnknownCategory
		}
		defer func() { events.onCreate = nil }()

		body := fmt.Sprintf(`{
			"title": "Orphaned",
			"description": "References a deleted category",
			"category_id": 9999,
			"start_date": %q,
			"end_date": %q,
			"location": "Somewhere"
		}`, start, end)

		rr := post(body)

		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})

	t.Run("should require authentication", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(`{}`))
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetEventsHandler(t *testing.T) {
	st := testStorage()
	events := st.Events.(*mockEventsStore)

	app := newTestApplication(t, st)
	mux := app.mount()

	t.Run("should pass filters through to the store", func(t *testing.T) {
		var gotQuery store.EventFilterQuery
		events.onList = func(q store.EventFilterQuery) ([]store.Event, int, error) {
			gotQuery = q
			return []store.Event{{ID: 1, Title: "Match"}}, 1, nil
		}
		defer func() { events.onList = nil }()

		req := httptest.NewRequest(http.MethodGet, "/v1/events?upcoming=true&search=run&lat=40.7&lng=-74.0&radius=5&limit=10", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)

		if !gotQuery.Upcoming {
			t.Error("upcoming filter not forwarded")
		}
		if gotQuery.Search != "run" {
			t.Errorf("got search %q, want run", gotQuery.Search)
		}
		if gotQuery.Lat == nil || *gotQuery.Lat != 40.7 {
			t.Errorf("lat not forwarded: %v", gotQuery.Lat)
		}
		if gotQuery.Radius != 5 {
			t.Errorf("got radius %v, want 5", gotQuery.Radius)
		}
		if gotQuery.Limit != 10 {
			t.Errorf("got limit %d, want 10", gotQuery.Limit)
		}
	})

	t.Run("should clamp oversized limits instead of rejecting them", func(t *testing.T) {
		var gotQuery store.EventFilterQuery
		events.onList = func(q store.EventFilterQuery) ([]store.Event, int, error) {
			gotQuery = q
			return []store.Event{}, 0, nil
		}
		defer func() { events.onList = nil }()

		req := httptest.NewRequest(http.MethodGet, "/v1/events?limit=100", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)
		if gotQuery.Limit != 50 {
			t.Errorf("got limit %d, want clamped to 50", gotQuery.Limit)
		}
	})

	t.Run("should derive the query window from the page parameter", func(t *testing.T) {
		var gotQuery store.EventFilterQuery
		events.onList = func(q store.EventFilterQuery) ([]store.Event, int, error) {
			gotQuery = q
			return []store.Event{}, 0, nil
		}
		defer func() { events.onList = nil }()

		req := httptest.NewRequest(http.MethodGet, "/v1/events?limit=20&page=3", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)
		if gotQuery.Offset != 40 {
			t.Errorf("got offset %d, want 40", gotQuery.Offset)
		}
	})

	t.Run("should marshal an empty page as an empty array", func(t *testing.T) {
		events.onList = func(q store.EventFilterQuery) ([]store.Event, int, error) {
			return make([]store.Event, 0), 0, nil
		}
		defer func() { events.onList = nil }()

		req := httptest.NewRequest(http.MethodGet, "/v1/events?search=nomatch", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)
		if !strings.Contains(rr.Body.String(), `"events":[]`) {
			t.Errorf("empty page not an array: %s", rr.Body.String())
		}
	})

	t.Run("should reject lat without lng", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/events?lat=40.7", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should include pagination metadata", func(t *testing.T) {
		events.onList = func(q store.EventFilterQuery) ([]store.Event, int, error) {
			return []store.Event{}, 45, nil
		}
		defer func() { events.onList = nil }()

		req := httptest.NewRequest(http.MethodGet, "/v1/events?limit=20&page=2", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var resp struct {
			Data struct {
				Pagination struct {
					Total      int  `json:"total"`
					TotalPages int  `json:"total_pages"`
					HasNext    bool `json:"has_next"`
					HasPrev    bool `json:"has_prev"`
				} `json:"pagination"`
			} `json:"data"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		p := resp.Data.Pagination
		if p.Total != 45 || p.TotalPages != 3 || !p.HasNext || !p.HasPrev {
			t.Errorf("unexpected pagination %+v", p)
		}
	})
}

func TestGetEventHandler(t *testing.T) {
	st := testStorage()
	events := st.Events.(*mockEventsStore)

	app := newTestApplication(t, st)
	mux := app.mount()

	t.Run("should return the event", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/events/5", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)
	})

	t.Run("should return 404 for unknown events", func(t *testing.T) {
		events.onGetByID = func(id int64) (*store.Event, error) {
			return nil, store.ErrNotFound
		}
		defer func() { events.onGetByID = nil }()

		req := httptest.NewRequest(http.MethodGet, "/v1/events/999", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateEventHandler(t *testing.T) {
	st := testStorage()
	events := st.Events.(*mockEventsStore)

	app := newTestApplication(t, st)
	mux := app.mount()
	token := app.bearerFor(t, 1)

	patch := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/v1/events/1", strings.NewReader(body))
		req.Header.Set("Authorization", token)
		req.Header.Set("Content-Type", "application/json")
		return executeRequest(req, mux)
	}

	t.Run("should forbid non-hosts", func(t *testing.T) {
		events.onIsHost = func(eventID, userID int64) (bool, error) {
			return false, nil
		}
		defer func() { events.onIsHost = nil }()

		rr := patch(`{"title": "New Title"}`)

		checkResponseCode(t, http.StatusForbidden, rr.Code)
	})

	t.Run("should apply partial updates", func(t *testing.T) {
		var updated *store.Event
		events.onUpdate = func(event *store.Event) error {
			updated = event
			return nil
		}
		defer func() { events.onUpdate = nil }()

		rr := patch(`{"title": "New Title"}`)

		checkResponseCode(t, http.StatusOK, rr.Code)
		if updated == nil || updated.Title != "New Title" {
			t.Errorf("update not applied: %+v", updated)
		}
	})

	t.Run("should conflict when capacity drops below confirmed RSVPs", func(t *testing.T) {
		events.onUpdate = func(event *store.Event) error {
			return store.ErrCapacityBelowRSVP
		}
		defer func() { events.onUpdate = nil }()

		rr := patch(`{"capacity": 1}`)

		checkResponseCode(t, http.StatusConflict, rr.Code)
	})

	t.Run("should return 404 for an unknown category", func(t *testing.T) {
		events.onUpdate = func(event *store.Event) error {
			return store.ErrUnknownCategory
		}
		defer func() { events.onUpdate = nil }()

		rr := patch(`{"category_id": 9999}`)

		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteEventHandler(t *testing.T) {
	st := testStorage()
	events := st.Events.(*mockEventsStore)

	app := newTestApplication(t, st)
	mux := app.mount()
	token := app.bearerFor(t, 1)

	t.Run("should delete a hosted event", func(t *testing.T) {
		var gotEventID, gotHostID int64
		events.onDelete = func(eventID, hostID int64) error {
			gotEventID, gotHostID = eventID, hostID
			return nil
		}
		defer func() { events.onDelete = nil }()

		req := httptest.NewRequest(http.MethodDelete, "/v1/events/3", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)
		if gotEventID != 3 || gotHostID != 1 {
			t.Errorf("got eventID=%d hostID=%d, want 3 and 1", gotEventID, gotHostID)
		}
	})
}
