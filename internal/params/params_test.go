package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"defaults", "", 20, 1, 0},
		{"explicit limit and page", "limit=10&page=3", 10, 3, 20},
		{"limit capped at 50", "limit=500", 50, 1, 0},
		{"zero limit falls back", "limit=0", 20, 1, 0},
		{"negative page ignored", "page=-2", 20, 1, 0},
		{"garbage ignored", "limit=abc&page=xyz", 20, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad query: %v", err)
			}
			p := ParsePagination(q)
			if p.Limit != tt.wantLimit {
				t.Errorf("got limit %d, want %d", p.Limit, tt.wantLimit)
			}
			if p.Page != tt.wantPage {
				t.Errorf("got page %d, want %d", p.Page, tt.wantPage)
			}
			if p.Offset != tt.wantOffset {
				t.Errorf("got offset %d, want %d", p.Offset, tt.wantOffset)
			}
		})
	}
}

func TestComputeMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"first of many", 1, 20, 45, 3, true, false},
		{"middle page", 2, 20, 45, 3, true, true},
		{"last page", 3, 20, 45, 3, false, true},
		{"empty result", 1, 20, 0, 0, false, false},
		{"exact fit", 2, 10, 20, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{Page: tt.page, Limit: tt.limit}
			p.ComputeMeta(tt.total)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("got total pages %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("got has_next %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("got has_prev %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
