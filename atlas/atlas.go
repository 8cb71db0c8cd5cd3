// Package atlas loads sprite sheets exported in the TexturePacker JSON
// format: a single image plus a "frames" table mapping frame names to
// source rectangles and trim offsets.
package atlas

import (
	"encoding/json"
	"fmt"
	"os"

	"sundog.games/walker/renderer"
)

// SheetRect describes a rectangle within the sheet image, in pixels.
type SheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Cell describes a single named frame within a sheet: where its pixels live
// in the sheet image, and how far the packer trimmed it from the sprite's
// nominal origin.
type Cell struct {
	Frame SheetRect `json:"frame"` // Source rectangle in the sheet image

	// SpriteSourceSize carries the trim offset: x and y are how far the
	// packed pixels sit from the untrimmed sprite's top-left corner.
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// SheetConfig defines the JSON configuration for a sprite sheet.
type SheetConfig struct {
	Frames map[string]Cell `json:"frames"`
}

// Sheet represents a loaded sprite sheet: its frame table plus the image
// the frames index into.
type Sheet struct {
	Config *SheetConfig
	Image  renderer.Image
}

// LoadSheet loads a sprite sheet from a JSON configuration file and its
// image, loading the image through the provided resource loader.
func LoadSheet(configPath, imagePath string, loader renderer.ResourceLoader) (*Sheet, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet config %s: %w", configPath, err)
	}

	var config SheetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sheet config %s: %w", configPath, err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid sheet config %s: %w", configPath, err)
	}

	img, err := loader.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet image %s: %w", imagePath, err)
	}

	return &Sheet{
		Config: &config,
		Image:  img,
	}, nil
}

// validateConfig checks if the sheet configuration is usable.
func validateConfig(config *SheetConfig) error {
	if len(config.Frames) == 0 {
		return fmt.Errorf("no frames defined")
	}

	for name, cell := range config.Frames {
		if cell.Frame.W <= 0 || cell.Frame.H <= 0 {
			return fmt.Errorf("frame %q has invalid dimensions: %dx%d", name, cell.Frame.W, cell.Frame.H)
		}
	}

	return nil
}

// Cell returns the cell for a frame name.
func (s *Sheet) Cell(name string) (Cell, bool) {
	cell, ok := s.Config.Frames[name]
	return cell, ok
}

// MustCell returns the cell for a frame name, or an error when the name is
// not present in the sheet. A miss is an asset-consistency fault: the caller
// is expected to fail the draw rather than skip the frame, since skipping
// would desynchronize animation timing.
func (s *Sheet) MustCell(name string) (Cell, error) {
	cell, ok := s.Config.Frames[name]
	if !ok {
		return Cell{}, fmt.Errorf("frame not found in sheet: %s", name)
	}
	return cell, nil
}
