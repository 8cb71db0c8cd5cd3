// Package level loads the JSON level configuration: which assets make up
// the course and where its fixed objects spawn.
package level

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default spawn positions, used when the level file leaves a spawn unset.
const (
	defaultPlatformX = 370
	defaultPlatformY = 420
	defaultStoneX    = 150
	defaultStoneY    = 546
)

// SpawnPoint defines a world-space object location.
type SpawnPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Level represents the loaded level configuration.
type Level struct {
	Name            string `json:"name"`
	CharacterSheet  string `json:"character_sheet"` // TexturePacker JSON for the character
	CharacterImage  string `json:"character_image"`
	TileSheet       string `json:"tile_sheet"` // TexturePacker JSON for the platform tiles
	TileImage       string `json:"tile_image"`
	BackgroundImage string `json:"background_image"`
	StoneImage      string `json:"stone_image"`

	PlatformSpawn SpawnPoint `json:"platform_spawn"`
	StoneSpawn    SpawnPoint `json:"stone_spawn"`
}

// LoadLevel loads a level from a JSON file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	if err := validateLevel(&lvl); err != nil {
		return nil, fmt.Errorf("invalid level data in %s: %w", path, err)
	}

	applyDefaults(&lvl)

	return &lvl, nil
}

// validateLevel checks that every required asset path is present.
func validateLevel(lvl *Level) error {
	required := []struct {
		field string
		value string
	}{
		{"character_sheet", lvl.CharacterSheet},
		{"character_image", lvl.CharacterImage},
		{"tile_sheet", lvl.TileSheet},
		{"tile_image", lvl.TileImage},
		{"background_image", lvl.BackgroundImage},
		{"stone_image", lvl.StoneImage},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.field)
		}
	}

	return nil
}

// applyDefaults fills in the standard spawn positions for any spawn the
// level file leaves at the zero value.
func applyDefaults(lvl *Level) {
	if lvl.PlatformSpawn == (SpawnPoint{}) {
		lvl.PlatformSpawn = SpawnPoint{X: defaultPlatformX, Y: defaultPlatformY}
	}
	if lvl.StoneSpawn == (SpawnPoint{}) {
		lvl.StoneSpawn = SpawnPoint{X: defaultStoneX, Y: defaultStoneY}
	}
}
