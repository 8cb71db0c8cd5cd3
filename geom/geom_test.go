package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	if r.Left() != 10 {
		t.Errorf("Expected left 10, got %d", r.Left())
	}
	if r.Right() != 40 {
		t.Errorf("Expected right 40, got %d", r.Right())
	}
	if r.Top() != 20 {
		t.Errorf("Expected top 20, got %d", r.Top())
	}
	if r.Bottom() != 60 {
		t.Errorf("Expected bottom 60, got %d", r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	overlapping := Rect{X: 50, Y: 50, Width: 100, Height: 100}
	if !a.Intersects(overlapping) {
		t.Error("Expected overlapping rectangles to intersect")
	}
	if !overlapping.Intersects(a) {
		t.Error("Expected intersection to be symmetric")
	}

	contained := Rect{X: 25, Y: 25, Width: 10, Height: 10}
	if !a.Intersects(contained) {
		t.Error("Expected contained rectangle to intersect")
	}

	disjoint := Rect{X: 200, Y: 200, Width: 10, Height: 10}
	if a.Intersects(disjoint) {
		t.Error("Expected disjoint rectangles not to intersect")
	}
}

func TestRectTouchingEdgesDoNotIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	// Sharing an edge exactly is not an overlap.
	rightNeighbor := Rect{X: 100, Y: 0, Width: 50, Height: 100}
	if a.Intersects(rightNeighbor) {
		t.Error("Expected rectangles touching on the right edge not to intersect")
	}

	belowNeighbor := Rect{X: 0, Y: 100, Width: 100, Height: 50}
	if a.Intersects(belowNeighbor) {
		t.Error("Expected rectangles touching on the bottom edge not to intersect")
	}

	corner := Rect{X: 100, Y: 100, Width: 10, Height: 10}
	if a.Intersects(corner) {
		t.Error("Expected rectangles touching at a corner not to intersect")
	}

	// One pixel of actual overlap does intersect.
	overlapByOne := Rect{X: 99, Y: 0, Width: 50, Height: 100}
	if !a.Intersects(overlapByOne) {
		t.Error("Expected one pixel of overlap to intersect")
	}
}
