package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
			if got := r.ContainsPoint(Point{X: tc.x, Y: tc.y}); got != tc.expected {
				t.Errorf("ContainsPoint(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 100, Y: 100}.Add(-15, 30)
	if p != (Point{X: 85, Y: 130}) {
		t.Errorf("Add() = %+v, expected {85 130}", p)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{30, 15, 2},
		{29, 15, 1},
		{0, 15, 0},
		{-15, 15, -1},
		{-1, 15, -1},
		{-16, 15, -2},
	}

	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("FloorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestActionIsDirectional(t *testing.T) {
	for _, a := range []Action{ActionLeft, ActionRight, ActionUp, ActionDown} {
		if !a.IsDirectional() {
			t.Errorf("%v should be directional", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionQuit} {
		if a.IsDirectional() {
			t.Errorf("%v should not be directional", a)
		}
	}
}
