package world

import (
	"fmt"
	"image"
	"image/color"

	"sundog.games/walker/atlas"
	"sundog.games/walker/renderer"
)

// fakeImage satisfies renderer.Image with nothing but a size, which is all
// the world logic reads from an image.
type fakeImage struct {
	width  int
	height int
}

func (f *fakeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

func (f *fakeImage) SubImage(r image.Rectangle) renderer.Image {
	return f
}

func (f *fakeImage) Fill(clr color.Color) {}

func (f *fakeImage) DrawImage(src renderer.Image, opts *renderer.DrawImageOptions) {}

// fakeInput reports a fixed set of held keys.
type fakeInput struct {
	down  bool
	right bool
	space bool
}

func (f *fakeInput) IsKeyPressed(key renderer.Key) bool {
	switch key {
	case renderer.KeyArrowDown:
		return f.down
	case renderer.KeyArrowRight:
		return f.right
	case renderer.KeySpace:
		return f.space
	default:
		return false
	}
}

// fakeLoader hands out fixed-size fake images for any path.
type fakeLoader struct {
	width  int
	height int
}

func (f *fakeLoader) LoadImage(path string) (renderer.Image, error) {
	return &fakeImage{width: f.width, height: f.height}, nil
}

// boySheet mirrors the real character sheet: 160x136 frames trimmed by
// (58, 28), enough indices to cover every animation cycle.
func boySheet() *atlas.Sheet {
	frames := map[string]atlas.Cell{}
	add := func(name string, count int) {
		for i := 1; i <= count; i++ {
			frames[fmt.Sprintf("%s (%d).png", name, i)] = atlas.Cell{
				Frame:            atlas.SheetRect{X: (i - 1) * 160, Y: 0, W: 160, H: 136},
				SpriteSourceSize: atlas.SheetRect{X: 58, Y: 28, W: 160, H: 136},
			}
		}
	}
	add("Idle", 10)
	add("Run", 8)
	add("Slide", 5)
	add("Jump", 12)
	add("Dead", 10)

	return &atlas.Sheet{Config: &atlas.SheetConfig{Frames: frames}}
}

// tileSheet carries the platform tile at its real 384x93 size.
func tileSheet() *atlas.Sheet {
	return &atlas.Sheet{
		Config: &atlas.SheetConfig{
			Frames: map[string]atlas.Cell{
				"13.png": {
					Frame: atlas.SheetRect{X: 0, Y: 0, W: 384, H: 93},
				},
			},
		},
	}
}
