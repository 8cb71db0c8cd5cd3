// Package character implements the runner's state machine: six mutually
// exclusive states, each owning the motion context (frame counter, position,
// velocity) that drives its animation and physics.
package character

import "sundog.games/walker/geom"

// Height is the logical screen height in pixels. The world's canvas and the
// jump landing reference are both anchored to it.
const Height = 600

const (
	floor         = 479
	playerHeight  = Height - floor
	startingPoint = -20

	idleFrames    = 29
	runningFrames = 23
	slidingFrames = 14
	jumpingFrames = 35
	fallingFrames = 29

	runningSpeed     = 4
	jumpSpeed        = -25
	gravity          = 1
	terminalVelocity = 20

	idleFrameName    = "Idle"
	runningFrameName = "Run"
	slidingFrameName = "Slide"
	jumpingFrameName = "Jump"
	fallingFrameName = "Dead"
)

// MotionContext is the frame/position/velocity triple owned by exactly one
// active state. It is a value type: every operation returns a new context,
// and the caller rebinds.
type MotionContext struct {
	Frame    int
	Position geom.Point
	Velocity geom.Point
}

// integrate advances the context by one tick: applies gravity up to the
// terminal velocity, advances the animation frame (wrapping past frameCount),
// and moves vertically, clamping at the floor.
func (c MotionContext) integrate(frameCount int) MotionContext {
	if c.Velocity.Y < terminalVelocity {
		c.Velocity.Y += gravity
	}
	if c.Frame < frameCount {
		c.Frame++
	} else {
		c.Frame = 0
	}
	c.Position.Y += c.Velocity.Y
	if c.Position.Y > floor {
		c.Position.Y = floor
	}
	return c
}

func (c MotionContext) resetFrame() MotionContext {
	c.Frame = 0
	return c
}

func (c MotionContext) runRight() MotionContext {
	c.Velocity.X = runningSpeed
	return c
}

func (c MotionContext) setVerticalVelocity(y int) MotionContext {
	c.Velocity.Y = y
	return c
}

func (c MotionContext) stop() MotionContext {
	c.Velocity.X = 0
	c.Velocity.Y = 0
	return c
}

// setOn positions the character so its feet rest exactly on the given
// surface height.
func (c MotionContext) setOn(position int) MotionContext {
	c.Position.Y = position - playerHeight
	return c
}
