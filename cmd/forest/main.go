//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mini-forest/internal/app"
	"mini-forest/internal/sims/forest"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	fc, err := cfg.ForestConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	world := forest.NewWithConfig(fc)
	world.Reset(fc.Seed)

	game := app.New(world, cfg.Scale, fc.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Mini Forest Sim")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
