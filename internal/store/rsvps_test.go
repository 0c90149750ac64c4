package store

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func intPtr(i int) *int { return &i }

func TestNextRSVPStatus(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name      string
		current   RSVPStatus
		endDate   time.Time
		capacity  *int
		confirmed int
		want      RSVPStatus
		wantErr   error
	}{
		{
			name:    "first toggle confirms",
			endDate: future,
			want:    RSVPStatusConfirmed,
		},
		{
			name:    "confirmed flips to cancelled",
			current: RSVPStatusConfirmed,
			endDate: future,
			want:    RSVPStatusCancelled,
		},
		{
			name:    "cancelled flips back to confirmed",
			current: RSVPStatusCancelled,
			endDate: future,
			want:    RSVPStatusConfirmed,
		},
		{
			name:    "pending confirms",
			current: RSVPStatusPending,
			endDate: future,
			want:    RSVPStatusConfirmed,
		},
		{
			name:    "ended event rejects new RSVP",
			endDate: past,
			wantErr: ErrEventEnded,
		},
		{
			name:    "ended event rejects cancellation too",
			current: RSVPStatusConfirmed,
			endDate: past,
			wantErr: ErrEventEnded,
		},
		{
			name:      "full event rejects new RSVP",
			endDate:   future,
			capacity:  intPtr(2),
			confirmed: 2,
			wantErr:   ErrEventFull,
		},
		{
			name:      "full event still allows cancelling",
			current:   RSVPStatusConfirmed,
			endDate:   future,
			capacity:  intPtr(2),
			confirmed: 2,
			want:      RSVPStatusCancelled,
		},
		{
			name:      "re-confirming checks capacity",
			current:   RSVPStatusCancelled,
			endDate:   future,
			capacity:  intPtr(1),
			confirmed: 1,
			wantErr:   ErrEventFull,
		},
		{
			name:      "nil capacity is unlimited",
			endDate:   future,
			confirmed: 100000,
			want:      RSVPStatusConfirmed,
		},
		{
			name:      "one spot left admits",
			endDate:   future,
			capacity:  intPtr(3),
			confirmed: 2,
			want:      RSVPStatusConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextRSVPStatus(tt.current, tt.endDate, tt.capacity, tt.confirmed, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got status %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRSVPJSONCarriesStartDate(t *testing.T) {
	rsvp := RSVP{
		ID:         1,
		EventID:    2,
		UserID:     3,
		Status:     RSVPStatusConfirmed,
		EventTitle: "Park Run",
		StartDate:  time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(rsvp)
	if err != nil {
		t.Fatalf("marshaling RSVP: %v", err)
	}
	if !strings.Contains(string(data), `"start_date":"2026-09-01T18:00:00Z"`) {
		t.Errorf("start_date missing from %s", data)
	}
}
