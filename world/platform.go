package world

import (
	"image"

	"golang.org/x/image/colornames"

	"sundog.games/walker/atlas"
	"sundog.games/walker/geom"
	"sundog.games/walker/renderer"
)

// platformCellName is the tile the platform is built from; three copies of
// it side by side form the full span.
const platformCellName = "13.png"

// Platform bounding geometry: the end caps are narrower and shorter than
// the middle span so a future collision response can treat the sloped
// edges differently.
const (
	platformCapWidth  = 60
	platformCapHeight = 54
)

// Platform is the moving platform the character can land on. It publishes
// three adjacent bounding boxes (left cap, middle span, right cap),
// recomputed from its position on every query; the only mutation is
// horizontal scroll.
type Platform struct {
	sheet    *atlas.Sheet
	position geom.Point
}

// NewPlatform places a platform at a world position.
func NewPlatform(sheet *atlas.Sheet, position geom.Point) *Platform {
	return &Platform{
		sheet:    sheet,
		position: position,
	}
}

// MoveHorizontally shifts the platform by distance pixels.
func (p *Platform) MoveHorizontally(distance int) {
	p.position.X += distance
}

// Position returns the platform's world position.
func (p *Platform) Position() geom.Point {
	return p.position
}

// DestinationBox returns the on-screen rectangle the platform occupies:
// the tile stretched to three times its width.
func (p *Platform) DestinationBox() (geom.Rect, error) {
	cell, err := p.sheet.MustCell(platformCellName)
	if err != nil {
		return geom.Rect{}, err
	}

	return geom.Rect{
		X:      p.position.X,
		Y:      p.position.Y,
		Width:  cell.Frame.W * 3,
		Height: cell.Frame.H,
	}, nil
}

// BoundingBoxes returns the platform's three collision rectangles: left
// cap, middle span, right cap, adjacent and in that order.
func (p *Platform) BoundingBoxes() ([]geom.Rect, error) {
	destination, err := p.DestinationBox()
	if err != nil {
		return nil, err
	}

	leftCap := geom.Rect{
		X:      destination.X,
		Y:      destination.Y,
		Width:  platformCapWidth,
		Height: platformCapHeight,
	}
	middle := geom.Rect{
		X:      destination.X + platformCapWidth,
		Y:      destination.Y,
		Width:  destination.Width - platformCapWidth*2,
		Height: destination.Height,
	}
	rightCap := geom.Rect{
		X:      destination.X + destination.Width - platformCapWidth,
		Y:      destination.Y,
		Width:  platformCapWidth,
		Height: platformCapHeight,
	}

	return []geom.Rect{leftCap, middle, rightCap}, nil
}

// Draw renders the platform, and its collision boxes when debug is set.
func (p *Platform) Draw(screen renderer.Image, rend renderer.Renderer, debug bool) error {
	cell, err := p.sheet.MustCell(platformCellName)
	if err != nil {
		return err
	}

	// The sheet lays the three platform tiles out contiguously, so one
	// triple-width source read covers the whole span.
	src := image.Rect(
		cell.Frame.X, cell.Frame.Y,
		cell.Frame.X+cell.Frame.W*3, cell.Frame.Y+cell.Frame.H,
	)

	opts := &renderer.DrawImageOptions{}
	opts.GeoM = renderer.NewGeoM()
	opts.GeoM.Translate(float64(p.position.X), float64(p.position.Y))
	screen.DrawImage(p.sheet.Image.SubImage(src), opts)

	if debug {
		boxes, err := p.BoundingBoxes()
		if err != nil {
			return err
		}
		for _, box := range boxes {
			rend.StrokeRect(screen,
				float32(box.X), float32(box.Y),
				float32(box.Width), float32(box.Height),
				1, colornames.Red)
		}
	}

	return nil
}
