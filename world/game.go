package world

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"sundog.games/walker/atlas"
	"sundog.games/walker/character"
	"sundog.games/walker/geom"
	"sundog.games/walker/level"
	"sundog.games/walker/renderer"
)

// Logical screen dimensions.
const (
	ScreenWidth  = 600
	ScreenHeight = character.Height
)

// ErrAlreadyInitialized is returned when Initialize is called on a game
// that has already built its world.
var ErrAlreadyInitialized = errors.New("game is already initialized")

// WalkTheDog is the outer game shell. It starts unloaded; Initialize builds
// the Walk exactly once from the level's assets. Update and Draw are no-ops
// until then.
type WalkTheDog struct {
	walk *Walk // nil until Initialize succeeds

	rend   renderer.Renderer
	input  renderer.InputManager
	loader renderer.ResourceLoader
	level  *level.Level
	debug  bool
}

// NewWalkTheDog creates an unloaded game for the given level.
func NewWalkTheDog(rend renderer.Renderer, input renderer.InputManager, loader renderer.ResourceLoader, lvl *level.Level, debug bool) *WalkTheDog {
	return &WalkTheDog{
		rend:   rend,
		input:  input,
		loader: loader,
		level:  lvl,
		debug:  debug,
	}
}

// Initialize loads every asset the level names and constructs the world.
// Any failure aborts with no partial world constructed; calling Initialize
// again once loaded returns ErrAlreadyInitialized.
func (g *WalkTheDog) Initialize() error {
	if g.walk != nil {
		return ErrAlreadyInitialized
	}

	boySheet, err := atlas.LoadSheet(g.level.CharacterSheet, g.level.CharacterImage, g.loader)
	if err != nil {
		return fmt.Errorf("failed to load character sheet: %w", err)
	}

	tileSheet, err := atlas.LoadSheet(g.level.TileSheet, g.level.TileImage, g.loader)
	if err != nil {
		return fmt.Errorf("failed to load tile sheet: %w", err)
	}

	background, err := g.loader.LoadImage(g.level.BackgroundImage)
	if err != nil {
		return fmt.Errorf("failed to load background image: %w", err)
	}

	stone, err := g.loader.LoadImage(g.level.StoneImage)
	if err != nil {
		return fmt.Errorf("failed to load stone image: %w", err)
	}

	backgroundWidth := background.Bounds().Dx()

	g.walk = &Walk{
		boy: character.New(boySheet),
		backgrounds: [2]*SceneImage{
			NewSceneImage(background, geom.Point{X: 0, Y: 0}),
			NewSceneImage(background, geom.Point{X: backgroundWidth, Y: 0}),
		},
		stone: NewSceneImage(stone, geom.Point{
			X: g.level.StoneSpawn.X,
			Y: g.level.StoneSpawn.Y,
		}),
		platform: NewPlatform(tileSheet, geom.Point{
			X: g.level.PlatformSpawn.X,
			Y: g.level.PlatformSpawn.Y,
		}),
	}

	return nil
}

// Update advances the world by one tick. It does nothing until the game
// has been initialized.
func (g *WalkTheDog) Update() error {
	if g.walk == nil {
		return nil
	}
	return g.walk.Tick(g.input)
}

// Draw clears the canvas and renders the world. A sprite lookup miss here
// is an asset-consistency fault and aborts rather than skipping the frame.
func (g *WalkTheDog) Draw(screen renderer.Image) {
	screen.Fill(color.White)

	if g.walk == nil {
		return
	}
	if err := g.walk.Draw(screen, g.rend, g.debug); err != nil {
		log.Fatalf("Draw failed: %v", err)
	}
}

// Layout reports the logical screen size.
func (g *WalkTheDog) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
