package world

import (
	"testing"

	"sundog.games/walker/atlas"
	"sundog.games/walker/geom"
)

func TestPlatformBoundingBoxes(t *testing.T) {
	platform := NewPlatform(tileSheet(), geom.Point{X: 370, Y: 420})

	destination, err := platform.DestinationBox()
	if err != nil {
		t.Fatalf("Failed to compute destination box: %v", err)
	}
	if destination.Width != 384*3 {
		t.Errorf("Expected triple-tile width %d, got %d", 384*3, destination.Width)
	}
	if destination.Height != 93 {
		t.Errorf("Expected height 93, got %d", destination.Height)
	}

	boxes, err := platform.BoundingBoxes()
	if err != nil {
		t.Fatalf("Failed to compute bounding boxes: %v", err)
	}
	if len(boxes) != 3 {
		t.Fatalf("Expected 3 bounding boxes, got %d", len(boxes))
	}

	leftCap, middle, rightCap := boxes[0], boxes[1], boxes[2]

	if leftCap.X != destination.X || leftCap.Width != platformCapWidth || leftCap.Height != platformCapHeight {
		t.Errorf("Unexpected left cap %+v", leftCap)
	}
	if middle.X != leftCap.Right() {
		t.Errorf("Expected middle span to start at %d, got %d", leftCap.Right(), middle.X)
	}
	if middle.Height != destination.Height {
		t.Errorf("Expected middle span full height %d, got %d", destination.Height, middle.Height)
	}
	if rightCap.X != middle.Right() {
		t.Errorf("Expected right cap to start at %d, got %d", middle.Right(), rightCap.X)
	}
	if rightCap.Right() != destination.Right() {
		t.Errorf("Expected right cap to end at %d, got %d", destination.Right(), rightCap.Right())
	}
}

func TestPlatformBoxesFollowScroll(t *testing.T) {
	platform := NewPlatform(tileSheet(), geom.Point{X: 370, Y: 420})

	platform.MoveHorizontally(-40)

	boxes, err := platform.BoundingBoxes()
	if err != nil {
		t.Fatalf("Failed to compute bounding boxes: %v", err)
	}
	if boxes[0].X != 330 {
		t.Errorf("Expected left cap at 330 after scrolling, got %d", boxes[0].X)
	}
	if boxes[0].Y != 420 {
		t.Errorf("Expected vertical position unchanged at 420, got %d", boxes[0].Y)
	}
}

func TestPlatformMissingTileFailsLoud(t *testing.T) {
	empty := &atlas.Sheet{Config: &atlas.SheetConfig{Frames: map[string]atlas.Cell{}}}
	platform := NewPlatform(empty, geom.Point{X: 0, Y: 0})

	if _, err := platform.BoundingBoxes(); err == nil {
		t.Error("Expected error when the platform tile is missing from the sheet")
	}
}
