package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"bottom-right inside", 5, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"even fit", NewRect(0, 0, 10, 6), 4, 2, NewRect(3, 2, 4, 2)},
		{"odd remainder rounds down", NewRect(0, 0, 9, 5), 4, 2, NewRect(2, 1, 4, 2)},
		{"offset outer", NewRect(10, 20, 10, 10), 10, 10, NewRect(10, 20, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outer.Centered(tt.w, tt.h); got != tt.expected {
				t.Errorf("Centered(%d, %d) = %+v, want %+v", tt.w, tt.h, got, tt.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{3, 0, 1, 1},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}
