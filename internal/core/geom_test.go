package core

import "testing"

func TestRectIntersects(t *testing.T) {
	mushroom := NewRect(324, 136, 56, 56)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"segment overlapping by one pixel", NewRect(379, 136, 56, 56), true},
		{"segment flush on the right", NewRect(380, 136, 56, 56), false},
		{"segment flush on the left", NewRect(268, 136, 56, 56), false},
		{"laser inside", NewRect(348, 150, 8, 32), true},
		{"laser flush below", NewRect(348, 192, 8, 32), false},
		{"player one row down", NewRect(328, 200, 48, 48), false},
		{"covering tile", NewRect(320, 128, 64, 64), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mushroom.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
			if got := tt.other.Intersects(mushroom); got != tt.want {
				t.Errorf("reversed Intersects() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectContainsTile(t *testing.T) {
	view := NewRect(4, 2, 40, 28)

	tests := []struct {
		x, y int
		want bool
	}{
		{4, 2, true},
		{43, 29, true},
		{44, 10, false},
		{10, 30, false},
		{3, 10, false},
		{10, 1, false},
	}
	for _, tt := range tests {
		if got := view.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	player := NewRect(400, 400, 48, 48)

	if player.Right() != 448 || player.Bottom() != 448 {
		t.Errorf("edges = (%d, %d), expected (448, 448)", player.Right(), player.Bottom())
	}
	if cx, cy := player.Center(); cx != 424 || cy != 424 {
		t.Errorf("Center() = (%d, %d), expected (424, 424)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	// Camera column for a 36-wide grid shown 40 tiles at a time.
	if got := Clamp(-3, 0, Max(0, 36-40)); got != 0 {
		t.Errorf("Clamp() = %d, expected 0", got)
	}
	tests := []struct {
		val, lo, hi, want int
	}{
		{12, 0, 20, 12},
		{-1, 0, 20, 0},
		{25, 0, 20, 20},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	// Frame times in milliseconds against a 100 ms cap.
	tests := []struct {
		val, want float64
	}{
		{16.6, 16.6},
		{-2, 0},
		{2000, 100},
	}
	for _, tt := range tests {
		if got := ClampF(tt.val, 0, 100); got != tt.want {
			t.Errorf("ClampF(%v) = %v, expected %v", tt.val, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(80, 72) != 72 || Min(-1, 0) != -1 {
		t.Error("Min returned the larger value")
	}
	if Max(0, 36-40) != 0 || Max(29, 30) != 30 {
		t.Error("Max returned the smaller value")
	}
}
