package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"zero height never intersects", NewRect(0, 0, 20, 0), NewRect(0, 0, 5, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	bird := NewRect(100, 400, 50, 50)

	tests := []struct {
		name     string
		pipeX    int
		expected bool
	}{
		{"pipe right edge on bird left edge", 0, false},
		{"one unit of overlap on the left", 1, true},
		{"pipe starts under bird", 120, true},
		{"pipe left edge on bird right edge", 150, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pipe := NewRect(tc.pipeX, 0, 100, 10)
			if got := bird.OverlapsX(pipe); got != tc.expected {
				t.Errorf("OverlapsX(pipe at %d) = %v, expected %v", tc.pipeX, got, tc.expected)
			}
		})
	}
}

func TestViewportProject(t *testing.T) {
	v := Viewport{CanvasW: 600, CanvasH: 800, Cols: 60, Rows: 40}

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"aligned", NewRect(100, 400, 50, 60), NewRect(10, 20, 5, 3)},
		{"rounds outward", NewRect(105, 410, 10, 10), NewRect(10, 20, 2, 1)},
		{"negative x floors", NewRect(-15, 0, 100, 20), NewRect(-2, 0, 11, 1)},
		{"tiny rect keeps one cell", NewRect(0, 0, 1, 1), NewRect(0, 0, 1, 1)},
		{"empty stays empty", NewRect(0, 0, 100, 0), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Project(tc.in); got != tc.expected {
				t.Errorf("Project(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestFloorCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, floor, ceil int
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{6, 3, 2, 2},
		{-6, 3, -2, -2},
		{0, 5, 0, 0},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.floor {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.floor)
		}
		if got := CeilDiv(tc.a, tc.b); got != tc.ceil {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.ceil)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
