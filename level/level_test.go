package level

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLevel(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write level file: %v", err)
	}
	return path
}

func TestLoadLevel(t *testing.T) {
	path := writeLevel(t, `{
		"name": "First Walk",
		"character_sheet": "static/rhb.json",
		"character_image": "static/rhb.png",
		"tile_sheet": "static/tiles.json",
		"tile_image": "static/tiles.png",
		"background_image": "static/BG.png",
		"stone_image": "static/Stone.png",
		"platform_spawn": {"x": 370, "y": 420},
		"stone_spawn": {"x": 150, "y": 546}
	}`)

	lvl, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("Failed to load level: %v", err)
	}

	if lvl.Name != "First Walk" {
		t.Errorf("Expected name 'First Walk', got %q", lvl.Name)
	}
	if lvl.PlatformSpawn.X != 370 || lvl.PlatformSpawn.Y != 420 {
		t.Errorf("Expected platform spawn (370, 420), got (%d, %d)",
			lvl.PlatformSpawn.X, lvl.PlatformSpawn.Y)
	}
}

func TestLoadLevelAppliesDefaultSpawns(t *testing.T) {
	path := writeLevel(t, `{
		"name": "Defaults",
		"character_sheet": "static/rhb.json",
		"character_image": "static/rhb.png",
		"tile_sheet": "static/tiles.json",
		"tile_image": "static/tiles.png",
		"background_image": "static/BG.png",
		"stone_image": "static/Stone.png"
	}`)

	lvl, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("Failed to load level: %v", err)
	}

	if lvl.PlatformSpawn.X != defaultPlatformX || lvl.PlatformSpawn.Y != defaultPlatformY {
		t.Errorf("Expected default platform spawn (%d, %d), got (%d, %d)",
			defaultPlatformX, defaultPlatformY, lvl.PlatformSpawn.X, lvl.PlatformSpawn.Y)
	}
	if lvl.StoneSpawn.X != defaultStoneX || lvl.StoneSpawn.Y != defaultStoneY {
		t.Errorf("Expected default stone spawn (%d, %d), got (%d, %d)",
			defaultStoneX, defaultStoneY, lvl.StoneSpawn.X, lvl.StoneSpawn.Y)
	}
}

func TestLoadLevelRejectsMissingAssets(t *testing.T) {
	path := writeLevel(t, `{
		"name": "Broken",
		"character_sheet": "static/rhb.json"
	}`)

	if _, err := LoadLevel(path); err == nil {
		t.Error("Expected error for level missing required asset paths")
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing level file")
	}
}
