package store

import (
	"net/http/httptest"
	"testing"
)

func TestBoundingBox(t *testing.T) {
	box := BoundingBox(40.0, -74.0, 10)

	inside := [][2]float64{
		{40.0, -74.0},
		{40.05, -74.05},
		{39.95, -73.95},
	}
	for _, p := range inside {
		if !box.Contains(p[0], p[1]) {
			t.Errorf("expected (%v, %v) inside box %+v", p[0], p[1], box)
		}
	}

	outside := [][2]float64{
		{41.0, -74.0},
		{40.0, -75.0},
		{40.2, -74.2},
	}
	for _, p := range outside {
		if box.Contains(p[0], p[1]) {
			t.Errorf("expected (%v, %v) outside box %+v", p[0], p[1], box)
		}
	}

	// 10km is roughly 0.09 degrees
	margin := box.MaxLat - 40.0
	if margin < 0.089 || margin > 0.091 {
		t.Errorf("unexpected margin %v for 10km radius", margin)
	}
}

func TestEventFilterQueryOrderBy(t *testing.T) {
	tests := []struct {
		name  string
		sort  string
		order string
		want  string
	}{
		{"defaults", "", "", "e.start_date DESC"},
		{"ascending start", "start_date", "asc", "e.start_date ASC"},
		{"by rating", "average_rating", "desc", "e.average_rating DESC"},
		{"unknown column falls back", "password", "asc", "e.start_date ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := EventFilterQuery{Sort: tt.sort, Order: tt.order}
			if got := q.OrderBy(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventFilterQueryParse(t *testing.T) {
	base := EventFilterQuery{
		Limit:  20,
		Offset: 0,
		Sort:   "start_date",
		Order:  "desc",
		Radius: DefaultRadiusKm,
	}

	t.Run("full filter set", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/events?upcoming=true&category=3&status=published&search=music&lat=40.7&lng=-74.0&radius=25&sort=average_rating&order=asc", nil)

		q, err := base.Parse(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !q.Upcoming {
			t.Error("expected upcoming to be set")
		}
		if q.CategoryID != 3 {
			t.Errorf("got category %d, want 3", q.CategoryID)
		}
		if q.Status != "published" {
			t.Errorf("got status %q, want published", q.Status)
		}
		if q.Search != "music" {
			t.Errorf("got search %q, want music", q.Search)
		}
		if q.Lat == nil || *q.Lat != 40.7 {
			t.Errorf("got lat %v, want 40.7", q.Lat)
		}
		if q.Lng == nil || *q.Lng != -74.0 {
			t.Errorf("got lng %v, want -74.0", q.Lng)
		}
		if q.Radius != 25 {
			t.Errorf("got radius %v, want 25", q.Radius)
		}
		if q.Sort != "average_rating" || q.Order != "asc" {
			t.Errorf("got sort %q %q, want average_rating asc", q.Sort, q.Order)
		}
	})

	t.Run("defaults survive empty query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/events", nil)

		q, err := base.Parse(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q != base {
			t.Errorf("got %+v, want defaults %+v", q, base)
		}
	})

	invalid := []struct {
		name string
		url  string
	}{
		{"bad upcoming", "/v1/events?upcoming=maybe"},
		{"bad category", "/v1/events?category=abc"},
		{"bad status", "/v1/events?status=archived"},
		{"lat without lng", "/v1/events?lat=40.7"},
		{"lng without lat", "/v1/events?lng=-74.0"},
		{"negative radius", "/v1/events?lat=1&lng=1&radius=-5"},
		{"bad sort", "/v1/events?sort=password"},
		{"bad order", "/v1/events?order=sideways"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if _, err := base.Parse(r); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
