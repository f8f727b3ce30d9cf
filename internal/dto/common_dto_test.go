package dto

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total     int64
		limit     int
		wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
	}
	for _, tc := range cases {
		p := NewPagination(1, tc.limit, tc.total)
		if p.TotalPages != tc.wantPages {
			t.Errorf("total=%d limit=%d: pages = %d, want %d", tc.total, tc.limit, p.TotalPages, tc.wantPages)
		}
		if p.Total != tc.total {
			t.Errorf("total not carried through: %d", p.Total)
		}
	}
}

func TestNewPaginationClampsZeroLimit(t *testing.T) {
	p := NewPagination(1, 0, 5)
	if p.Limit != 1 {
		t.Fatalf("limit = %d, want 1", p.Limit)
	}
	if p.TotalPages != 5 {
		t.Fatalf("pages = %d, want 5", p.TotalPages)
	}
}

func TestNewPaginationTotalIndependentOfWindow(t *testing.T) {
	const total = 37
	for _, limit := range []int{1, 5, 10, 100} {
		for _, page := range []int{1, 2, 9} {
			if p := NewPagination(page, limit, total); p.Total != total {
				t.Fatalf("page=%d limit=%d: total = %d, want %d", page, limit, p.Total, total)
			}
		}
	}
}
