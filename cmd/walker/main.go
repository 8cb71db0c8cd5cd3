package main

import (
	"flag"
	"fmt"
	"log"

	"sundog.games/walker/level"
	ebitenrenderer "sundog.games/walker/renderer/ebiten"
	"sundog.games/walker/world"
)

func main() {
	// Command-line flags
	dataDir := flag.String("data", "Example", "Game data directory")
	levelFile := flag.String("level", "level1.json", "Level file to load")
	debug := flag.Bool("debug", false, "Draw collision boxes")
	flag.Parse()

	// Initialize the renderer backend (ebiten)
	rend := ebitenrenderer.NewRenderer()
	inputMgr := ebitenrenderer.NewInputManager()
	loader := ebitenrenderer.NewResourceLoader()
	engine := ebitenrenderer.NewEngine()

	levelPath := fmt.Sprintf("data/%s/%s", *dataDir, *levelFile)

	log.Printf("Loading level: %s", levelPath)
	lvl, err := level.LoadLevel(levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	game := world.NewWalkTheDog(rend, inputMgr, loader, lvl, *debug)
	if err := game.Initialize(); err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	engine.SetWindowSize(world.ScreenWidth, world.ScreenHeight)
	engine.SetWindowTitle(fmt.Sprintf("Walker [%s] - Right to run, Space to jump, Down to slide", lvl.Name))

	log.Printf("Starting game...")
	if err := engine.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
