package character

import (
	"fmt"
	"image"

	"golang.org/x/image/colornames"

	"sundog.games/walker/atlas"
	"sundog.games/walker/geom"
	"sundog.games/walker/renderer"
)

// Bounding box insets: the art assets carry visual padding that must not
// count as collidable.
const (
	boxInsetX     = 18
	boxInsetY     = 14
	boxInsetWidth = 28
)

// Character owns the state machine and the sprite sheet it is drawn from.
type Character struct {
	state State
	sheet *atlas.Sheet
}

// New creates a character in the Idle state at the starting position.
func New(sheet *atlas.Sheet) *Character {
	return &Character{
		state: NewIdle(),
		sheet: sheet,
	}
}

// FrameName returns the sheet frame name for the current animation frame.
// Each displayed frame is held for 3 ticks, and sheet indices are 1-based.
func (c *Character) FrameName() string {
	return fmt.Sprintf("%s (%d).png", c.state.FrameName(), c.state.Context().Frame/3+1)
}

func (c *Character) currentCell() (atlas.Cell, error) {
	return c.sheet.MustCell(c.FrameName())
}

// DestinationBox returns the on-screen rectangle the current sprite frame
// occupies: the character position offset by the frame's trim offset.
func (c *Character) DestinationBox() (geom.Rect, error) {
	cell, err := c.currentCell()
	if err != nil {
		return geom.Rect{}, err
	}

	ctx := c.state.Context()
	return geom.Rect{
		X:      ctx.Position.X + cell.SpriteSourceSize.X,
		Y:      ctx.Position.Y + cell.SpriteSourceSize.Y,
		Width:  cell.Frame.W,
		Height: cell.Frame.H,
	}, nil
}

// BoundingBox returns the collision rectangle: the destination box shrunk
// by the fixed insets.
func (c *Character) BoundingBox() (geom.Rect, error) {
	box, err := c.DestinationBox()
	if err != nil {
		return geom.Rect{}, err
	}

	box.X += boxInsetX
	box.Width -= boxInsetWidth
	box.Y += boxInsetY
	box.Height -= boxInsetY
	return box, nil
}

// WalkingSpeed returns the character's current horizontal speed.
func (c *Character) WalkingSpeed() int {
	return c.state.Context().Velocity.X
}

// PosY returns the character's vertical position.
func (c *Character) PosY() int {
	return c.state.Context().Position.Y
}

// VelocityY returns the character's vertical velocity.
func (c *Character) VelocityY() int {
	return c.state.Context().Velocity.Y
}

// Update advances animation and physics by one tick.
func (c *Character) Update() {
	c.state = Transition(c.state, Update{})
}

// RunRight starts the character running.
func (c *Character) RunRight() {
	c.state = Transition(c.state, Run{})
}

// Slide ducks the character into a slide.
func (c *Character) Slide() {
	c.state = Transition(c.state, Slide{})
}

// Jump launches the character upward.
func (c *Character) Jump() {
	c.state = Transition(c.state, Jump{})
}

// KnockOut knocks the character down.
func (c *Character) KnockOut() {
	c.state = Transition(c.state, KnockOut{})
}

// LandOn places the character's feet on the surface at height position.
func (c *Character) LandOn(position int) {
	c.state = Transition(c.state, Land{Y: position})
}

// Draw renders the current sprite frame, and the collision box outline when
// debug is set. A missing sheet frame is returned as an error: skipping the
// frame would silently desynchronize animation timing.
func (c *Character) Draw(screen renderer.Image, rend renderer.Renderer, debug bool) error {
	cell, err := c.currentCell()
	if err != nil {
		return err
	}

	dst, err := c.DestinationBox()
	if err != nil {
		return err
	}

	src := image.Rect(cell.Frame.X, cell.Frame.Y, cell.Frame.X+cell.Frame.W, cell.Frame.Y+cell.Frame.H)

	opts := &renderer.DrawImageOptions{}
	opts.GeoM = renderer.NewGeoM()
	opts.GeoM.Translate(float64(dst.X), float64(dst.Y))
	screen.DrawImage(c.sheet.Image.SubImage(src), opts)

	if debug {
		box, err := c.BoundingBox()
		if err != nil {
			return err
		}
		rend.StrokeRect(screen,
			float32(box.X), float32(box.Y),
			float32(box.Width), float32(box.Height),
			1, colornames.Red)
	}

	return nil
}
