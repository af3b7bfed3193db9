package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectFIntersects(t *testing.T) {
	bird := NewRectF(50, 200, 34, 24)

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"overlap", NewRectF(70, 210, 52, 320), true},
		{"touching right edge", NewRectF(84, 200, 52, 320), false},
		{"touching bottom edge", NewRectF(0, 224, 288, 112), false},
		{"fractional overlap", NewRectF(83.5, 0, 52, 200.5), true},
		{"far away", NewRectF(200, 0, 52, 100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := bird.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(bird); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFContains(t *testing.T) {
	r := NewRectF(218, 10, 60, 30)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 240, 20, true},
		{"top-left corner", 218, 10, true},
		{"right edge (exclusive)", 278, 20, false},
		{"bottom edge (exclusive)", 240, 40, false},
		{"left of box", 217.9, 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}
