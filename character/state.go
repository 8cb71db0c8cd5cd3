package character

import "sundog.games/walker/geom"

// State is the closed set of character states. Exactly one value is active
// at a time; every transition consumes the old value and returns the next
// one. Callers must always rebind to the returned value and never keep the
// previous one — state values are stale the moment a transition runs.
type State interface {
	// FrameName returns the animation identifier for the state.
	FrameName() string

	// Context returns the motion context owned by the state.
	Context() MotionContext

	isState()
}

// Event is a discrete trigger consumed by the state machine.
type Event interface {
	isEvent()
}

// Run starts the character running to the right.
type Run struct{}

// Slide ducks the character into a slide.
type Slide struct{}

// Jump launches the character upward.
type Jump struct{}

// KnockOut knocks the character down after a hit.
type KnockOut struct{}

// Land places the character's feet on the surface at height Y.
type Land struct {
	Y int
}

// Update is the periodic tick that advances animation and physics.
type Update struct{}

func (Run) isEvent()      {}
func (Slide) isEvent()    {}
func (Jump) isEvent()     {}
func (KnockOut) isEvent() {}
func (Land) isEvent()     {}
func (Update) isEvent()   {}

// Transition dispatches a (state, event) pair. Any pair not listed in the
// table below is deliberately a silent no-op returning the state unchanged;
// it is never an error.
func Transition(state State, event Event) State {
	switch s := state.(type) {
	case Idle:
		switch event.(type) {
		case Run:
			return s.run()
		case Update:
			return s.update()
		}
	case Running:
		switch e := event.(type) {
		case Slide:
			return s.slide()
		case Jump:
			return s.jump()
		case KnockOut:
			return s.knockOut()
		case Land:
			return s.landOn(e.Y)
		case Update:
			return s.update()
		}
	case Sliding:
		switch e := event.(type) {
		case KnockOut:
			return s.knockOut()
		case Land:
			return s.landOn(e.Y)
		case Update:
			return s.update()
		}
	case Jumping:
		switch e := event.(type) {
		case KnockOut:
			return s.knockOut()
		case Land:
			return s.landOn(e.Y)
		case Update:
			return s.update()
		}
	case Falling:
		switch event.(type) {
		case Update:
			return s.update()
		}
	}
	return state
}

// Idle is the resting state the character starts in.
type Idle struct {
	ctx MotionContext
}

// NewIdle creates the initial state: idle at the starting offset, feet on
// the floor.
func NewIdle() Idle {
	return Idle{
		ctx: MotionContext{
			Frame:    0,
			Position: geom.Point{X: startingPoint, Y: floor},
			Velocity: geom.Point{X: 0, Y: 0},
		},
	}
}

func (Idle) isState() {}

// FrameName returns the idle animation identifier.
func (Idle) FrameName() string {
	return idleFrameName
}

// Context returns the motion context.
func (s Idle) Context() MotionContext {
	return s.ctx
}

func (s Idle) run() Running {
	return Running{ctx: s.ctx.resetFrame().runRight()}
}

func (s Idle) update() Idle {
	s.ctx = s.ctx.integrate(idleFrames)
	return s
}

// Running is the default locomotion state.
type Running struct {
	ctx MotionContext
}

func (Running) isState() {}

// FrameName returns the running animation identifier.
func (Running) FrameName() string {
	return runningFrameName
}

// Context returns the motion context.
func (s Running) Context() MotionContext {
	return s.ctx
}

func (s Running) update() Running {
	s.ctx = s.ctx.integrate(runningFrames)
	return s
}

func (s Running) slide() Sliding {
	return Sliding{ctx: s.ctx.resetFrame()}
}

func (s Running) jump() Jumping {
	return Jumping{ctx: s.ctx.setVerticalVelocity(jumpSpeed).resetFrame()}
}

func (s Running) landOn(position int) Running {
	return Running{ctx: s.ctx.setOn(position)}
}

func (s Running) knockOut() Falling {
	return Falling{ctx: s.ctx.resetFrame().stop()}
}

// Sliding is a timed duck under obstacles. Its update decides on its own
// whether the slide is still going or complete.
type Sliding struct {
	ctx MotionContext
}

func (Sliding) isState() {}

// FrameName returns the sliding animation identifier.
func (Sliding) FrameName() string {
	return slidingFrameName
}

// Context returns the motion context.
func (s Sliding) Context() MotionContext {
	return s.ctx
}

// update advances the slide animation and stands back up once it has
// played through.
func (s Sliding) update() State {
	s.ctx = s.ctx.integrate(slidingFrames)
	if s.ctx.Frame >= slidingFrames {
		return s.stand()
	}
	return s
}

func (s Sliding) stand() Running {
	return Running{ctx: s.ctx.resetFrame()}
}

func (s Sliding) landOn(position int) Sliding {
	return Sliding{ctx: s.ctx.setOn(position)}
}

func (s Sliding) knockOut() Falling {
	return Falling{ctx: s.ctx.resetFrame().stop()}
}

// Jumping is the airborne state between a jump and its landing.
type Jumping struct {
	ctx MotionContext
}

func (Jumping) isState() {}

// FrameName returns the jumping animation identifier.
func (Jumping) FrameName() string {
	return jumpingFrameName
}

// Context returns the motion context.
func (s Jumping) Context() MotionContext {
	return s.ctx
}

// update integrates gravity and lands back into Running once the character
// reaches the floor. integrate already clamps at the floor, so in practice
// the comparison only ever observes equality; it is kept as >= regardless.
func (s Jumping) update() State {
	s.ctx = s.ctx.integrate(jumpingFrames)
	if s.ctx.Position.Y >= floor {
		return s.landOn(Height)
	}
	return s
}

func (s Jumping) landOn(position int) Running {
	return Running{ctx: s.ctx.resetFrame().setOn(position)}
}

func (s Jumping) knockOut() Falling {
	return Falling{ctx: s.ctx.resetFrame().stop()}
}

// Falling plays the knock-down animation; once it has played through the
// character is knocked out for good.
type Falling struct {
	ctx MotionContext
}

func (Falling) isState() {}

// FrameName returns the knocked-down animation identifier.
func (Falling) FrameName() string {
	return fallingFrameName
}

// Context returns the motion context.
func (s Falling) Context() MotionContext {
	return s.ctx
}

func (s Falling) update() State {
	s.ctx = s.ctx.integrate(fallingFrames)
	if s.ctx.Frame >= fallingFrames {
		return s.knockOut()
	}
	return s
}

func (s Falling) knockOut() KnockedOut {
	return KnockedOut{ctx: s.ctx}
}

// KnockedOut is terminal: the character is permanently inert and accepts
// no further events.
type KnockedOut struct {
	ctx MotionContext
}

func (KnockedOut) isState() {}

// FrameName returns the knocked-down animation identifier; the knocked-out
// character shows the final frame of the same visual as Falling.
func (KnockedOut) FrameName() string {
	return fallingFrameName
}

// Context returns the motion context.
func (s KnockedOut) Context() MotionContext {
	return s.ctx
}
