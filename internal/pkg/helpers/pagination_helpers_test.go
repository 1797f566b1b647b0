package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page falls back to first", 0, 10, 0, 10},
		{"negative page falls back to first", -2, 10, 0, 10},
		{"zero size falls back to default", 2, 0, 10, 10},
		{"oversized page size falls back to default", 2, 500, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name            string
		totalItems      int64
		page            int
		size            int
		wantCurrentPage int
		wantTotalPages  int
	}{
		{"exact pages", 40, 2, 10, 2, 4},
		{"partial last page", 41, 5, 10, 5, 5},
		{"empty result on first page", 0, 1, 10, 1, 1},
		{"page beyond total clamps", 100, 9, 20, 5, 5},
		{"invalid size falls back", 25, 1, 0, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.totalItems, tt.page, tt.size)
			if info.CurrentPage != tt.wantCurrentPage {
				t.Errorf("CurrentPage = %d, want %d", info.CurrentPage, tt.wantCurrentPage)
			}
			if info.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantTotalPages)
			}
			if info.TotalItems != tt.totalItems {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tt.totalItems)
			}
		})
	}
}
