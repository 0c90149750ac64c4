package store

import (
	"fmt"
	"net/http"
	"strconv"
)

// kilometers per degree of latitude; used for the cheap bounding-box
// approximation instead of great-circle distance.
const kmPerDegree = 111.0

const DefaultRadiusKm = 10.0

type EventFilterQuery struct {
	Limit  int    `validate:"gte=1,lte=50"`
	Offset int    `validate:"gte=0"`
	Sort   string `validate:"oneof=start_date created_at average_rating"`
	Order  string `validate:"oneof=asc desc"`

	Upcoming   bool
	CategoryID int64
	Status     string `validate:"omitempty,oneof=draft published cancelled completed"`
	Search     string

	// Location-based filtering; Radius in kilometers.
	Lat    *float64
	Lng    *float64
	Radius float64
}

// Box is a degree-margin bounding box around a point.
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// BoundingBox computes a ±(radius/111°) box around the given point. This is
// the intentionally cheap filter from the discovery screen, not a geospatial
// index.
func BoundingBox(lat, lng, radiusKm float64) Box {
	margin := radiusKm / kmPerDegree
	return Box{
		MinLat: lat - margin,
		MaxLat: lat + margin,
		MinLng: lng - margin,
		MaxLng: lng + margin,
	}
}

// Contains reports whether the point falls inside the box.
func (b Box) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// OrderBy returns the ORDER BY clause for the query. Sort and Order are
// validated against fixed sets before this is interpolated.
func (q EventFilterQuery) OrderBy() string {
	sort := q.Sort
	switch sort {
	case "start_date", "created_at", "average_rating":
	default:
		sort = "start_date"
	}
	order := "DESC"
	if q.Order == "asc" {
		order = "ASC"
	}
	return "e." + sort + " " + order
}

// Parse extracts query parameters from the request URL and populates the
// EventFilterQuery.
func (q EventFilterQuery) Parse(r *http.Request) (EventFilterQuery, error) {
	params := r.URL.Query()

	if upcomingStr := params.Get("upcoming"); upcomingStr != "" {
		upcoming, err := strconv.ParseBool(upcomingStr)
		if err != nil {
			return q, fmt.Errorf("invalid upcoming value: %w", err)
		}
		q.Upcoming = upcoming
	}

	if categoryIDStr := params.Get("category"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			return q, fmt.Errorf("invalid category: %w", err)
		}
		q.CategoryID = categoryID
	}

	if status := params.Get("status"); status != "" {
		switch EventStatus(status) {
		case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
			q.Status = status
		default:
			return q, fmt.Errorf("invalid status value: %s", status)
		}
	}

	if search := params.Get("search"); search != "" {
		q.Search = search
	}

	if latStr := params.Get("lat"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return q, fmt.Errorf("invalid lat value: %w", err)
		}
		q.Lat = &lat
	}

	if lngStr := params.Get("lng"); lngStr != "" {
		lng, err := strconv.ParseFloat(lngStr, 64)
		if err != nil {
			return q, fmt.Errorf("invalid lng value: %w", err)
		}
		q.Lng = &lng
	}

	// lat and lng must come together for the location filter
	if (q.Lat == nil) != (q.Lng == nil) {
		return q, fmt.Errorf("lat and lng must both be provided")
	}

	if radiusStr := params.Get("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 {
			return q, fmt.Errorf("invalid radius value: %s", radiusStr)
		}
		q.Radius = radius
	}

	// Limit and Offset are not read here; pagination comes from
	// params.ParsePagination so the query window and the response
	// metadata cannot disagree.

	if sort := params.Get("sort"); sort != "" {
		switch sort {
		case "start_date", "created_at", "average_rating":
			q.Sort = sort
		default:
			return q, fmt.Errorf("invalid sort value: %s", sort)
		}
	}

	if order := params.Get("order"); order != "" {
		if order != "asc" && order != "desc" {
			return q, fmt.Errorf("invalid order value: must be 'asc' or 'desc'")
		}
		q.Order = order
	}

	return q, nil
}
