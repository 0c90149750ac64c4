package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gather/internal/store"
)

func TestToggleRSVPHandler(t *testing.T) {
	st := testStorage()
	rsvps := st.RSVPs.(*mockRSVPsStore)

	app := newTestApplication(t, st)
	mux := app.mount()
	token := app.bearerFor(t, 7)

	t.Run("should require authentication", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/events/1/rsvp", nil)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("should confirm on first toggle", func(t *testing.T) {
		rsvps.onToggle = func(eventID, userID int64) (*store.ToggleResult, error) {
			if eventID != 1 || userID != 7 {
				t.Errorf("got eventID=%d userID=%d, want 1 and 7", eventID, userID)
			}
			return &store.ToggleResult{Status: store.RSVPStatusConfirmed, RSVPCount: 4}, nil
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/events/1/rsvp", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var body struct {
			Data store.ToggleResult `json:"data"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if body.Data.Status != store.RSVPStatusConfirmed {
			t.Errorf("got status %q, want confirmed", body.Data.Status)
		}
		if body.Data.RSVPCount != 4 {
			t.Errorf("got rsvp_count %d, want 4", body.Data.RSVPCount)
		}
	})

	t.Run("should reject ended events", func(t *testing.T) {
		rsvps.onToggle = func(eventID, userID int64) (*store.ToggleResult, error) {
			return nil, store.ErrEventEnded
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/events/1/rsvp", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("should reject full events", func(t *testing.T) {
		rsvps.onToggle = func(eventID, userID int64) (*store.ToggleResult, error) {
			return nil, store.ErrEventFull
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/events/1/rsvp", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusConflict, rr.Code)
	})

	t.Run("should return 404 for unknown events", func(t *testing.T) {
		rsvps.onToggle = func(eventID, userID int64) (*store.ToggleResult, error) {
			return nil, store.ErrNotFound
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/events/999/rsvp", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})

	t.Run("should reject malformed event IDs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/events/abc/rsvp", nil)
		req.Header.Set("Authorization", token)
		rr := executeRequest(req, mux)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})
}
