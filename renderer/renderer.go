// Package renderer defines the backend-neutral rendering, input and engine
// interfaces the game is written against. This allows swapping rendering
// backends without changing game logic; the Ebiten implementation lives in
// the ebiten subpackage.
package renderer

import (
	"image"
	"image/color"
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine.
type Renderer interface {
	// NewImage creates a new blank image with the given dimensions.
	NewImage(width, height int) Image

	// StrokeRect draws a rectangle outline on the destination image.
	// Used for collision-box debug visualization.
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
}

// Image represents a renderable image surface that can be drawn to or
// drawn from.
type Image interface {
	// Bounds returns the pixel bounds of the image.
	Bounds() image.Rectangle

	// SubImage returns a view into the region r of the image.
	SubImage(r image.Rectangle) Image

	// Fill fills the entire image with the given color.
	Fill(clr color.Color)

	// DrawImage draws the source image onto this image.
	DrawImage(src Image, opts *DrawImageOptions)
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads.
const (
	KeyArrowDown Key = iota
	KeyArrowRight
	KeySpace
)

// InputManager handles keyboard input from the user.
type InputManager interface {
	// IsKeyPressed returns whether the specified key is currently held.
	IsKeyPressed(key Key) bool
}

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game.
	RunGame(game Game) error
}
