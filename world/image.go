// Package world owns the scrolling obstacle course: the character, the
// platform, the stone obstacle, the parallax backgrounds, and the per-tick
// loop that ties them together.
package world

import (
	"sundog.games/walker/geom"
	"sundog.games/walker/renderer"
)

// SceneImage is a world-space image: a drawable plus its position. Its
// bounding box covers the full image extent.
type SceneImage struct {
	image       renderer.Image
	position    geom.Point
	boundingBox geom.Rect
}

// NewSceneImage places an image at a world position.
func NewSceneImage(img renderer.Image, position geom.Point) *SceneImage {
	bounds := img.Bounds()
	return &SceneImage{
		image:    img,
		position: position,
		boundingBox: geom.Rect{
			X:      position.X,
			Y:      position.Y,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		},
	}
}

// MoveHorizontally shifts the image by distance pixels.
func (s *SceneImage) MoveHorizontally(distance int) {
	s.SetX(s.position.X + distance)
}

// SetX moves the image to the given x coordinate.
func (s *SceneImage) SetX(x int) {
	s.position.X = x
	s.boundingBox.X = x
}

// Right returns the x coordinate of the image's right edge.
func (s *SceneImage) Right() int {
	return s.boundingBox.Right()
}

// BoundingBox returns the image's collision rectangle.
func (s *SceneImage) BoundingBox() geom.Rect {
	return s.boundingBox
}

// Draw renders the image at its current position.
func (s *SceneImage) Draw(screen renderer.Image) {
	opts := &renderer.DrawImageOptions{}
	opts.GeoM = renderer.NewGeoM()
	opts.GeoM.Translate(float64(s.position.X), float64(s.position.Y))
	screen.DrawImage(s.image, opts)
}
