package world

import (
	"golang.org/x/image/colornames"

	"sundog.games/walker/character"
	"sundog.games/walker/renderer"
)

// Walk is the loaded obstacle course. The character's screen position is
// fixed; the world scrolls under it at the negative of its walking speed.
type Walk struct {
	boy         *character.Character
	backgrounds [2]*SceneImage
	stone       *SceneImage
	platform    *Platform
}

func (w *Walk) velocity() int {
	return -w.boy.WalkingSpeed()
}

// Tick advances the world by one frame. Order matters: input events, then
// the periodic update, then scrolling, then collision resolution —
// reordering these changes landing behavior near platform edges.
func (w *Walk) Tick(input renderer.InputManager) error {
	if input.IsKeyPressed(renderer.KeyArrowDown) {
		w.boy.Slide()
	}
	if input.IsKeyPressed(renderer.KeyArrowRight) {
		w.boy.RunRight()
	}
	if input.IsKeyPressed(renderer.KeySpace) {
		w.boy.Jump()
	}
	w.boy.Update()

	velocity := w.velocity()
	w.platform.MoveHorizontally(velocity)
	w.stone.MoveHorizontally(velocity)

	first, second := w.backgrounds[0], w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)

	// Two-layer infinite scroll: a layer that has left the screen jumps to
	// the right edge of its sibling. Checking both directions keeps the
	// wrap seamless no matter which layer crosses first.
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}

	platformBoxes, err := w.platform.BoundingBoxes()
	if err != nil {
		return err
	}
	for _, box := range platformBoxes {
		boyBox, err := w.boy.BoundingBox()
		if err != nil {
			return err
		}
		if boyBox.Intersects(box) {
			// Landing only counts when descending from above the
			// platform; a side hit or an underside hit knocks out.
			if w.boy.VelocityY() > 0 && w.boy.PosY() < w.platform.Position().Y {
				w.boy.LandOn(box.Y)
			} else {
				w.boy.KnockOut()
			}
		}
	}

	boyBox, err := w.boy.BoundingBox()
	if err != nil {
		return err
	}
	if boyBox.Intersects(w.stone.BoundingBox()) {
		w.boy.KnockOut()
	}

	return nil
}

// Draw renders the world back to front.
func (w *Walk) Draw(screen renderer.Image, rend renderer.Renderer, debug bool) error {
	for _, background := range w.backgrounds {
		background.Draw(screen)
	}
	if err := w.boy.Draw(screen, rend, debug); err != nil {
		return err
	}
	w.stone.Draw(screen)
	if debug {
		stoneBox := w.stone.BoundingBox()
		rend.StrokeRect(screen,
			float32(stoneBox.X), float32(stoneBox.Y),
			float32(stoneBox.Width), float32(stoneBox.Height),
			1, colornames.Red)
	}
	return w.platform.Draw(screen, rend, debug)
}
