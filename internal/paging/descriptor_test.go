package paging

import "testing"

func TestDescribe(t *testing.T) {
	tests := []struct {
		name                     string
		page, size, total, pages int
		summary                  string
		hasPrev, hasNext         bool
	}{
		{"middle page", 2, 15, 32, 3, "Showing 16 to 30 of 32 entries", true, true},
		{"last partial page", 3, 15, 32, 3, "Showing 31 to 32 of 32 entries", true, false},
		{"first page", 1, 9, 20, 3, "Showing 1 to 9 of 20 entries", false, true},
		{"single page", 1, 9, 4, 1, "Showing 1 to 4 of 4 entries", false, false},
		{"empty", 1, 9, 0, 0, "Showing 0 to 0 of 0 entries", false, false},
		{"page past end", 5, 9, 20, 3, "Showing 0 to 0 of 20 entries", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := describe(tt.page, tt.size, tt.total, tt.pages)
			if d.Summary != tt.summary {
				t.Errorf("expected %q, got %q", tt.summary, d.Summary)
			}
			if d.HasPrev != tt.hasPrev || d.HasNext != tt.hasNext {
				t.Errorf("expected prev=%v next=%v, got prev=%v next=%v", tt.hasPrev, tt.hasNext, d.HasPrev, d.HasNext)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		n, pages, want int
	}{
		{0, 3, 1},
		{-2, 3, 1},
		{2, 3, 2},
		{4, 3, 3},
		{7, 0, 1},
	}
	for _, tt := range tests {
		if got := clamp(tt.n, tt.pages); got != tt.want {
			t.Errorf("clamp(%d, %d) = %d, want %d", tt.n, tt.pages, got, tt.want)
		}
	}
}
