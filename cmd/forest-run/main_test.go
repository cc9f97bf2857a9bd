package main

import (
	"os"
	"path/filepath"
	"testing"

	"mini-forest/internal/app"
	"mini-forest/internal/sims/forest"
)

func TestResolveConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.yaml")
	if err := os.WriteFile(path, []byte("size: 20\nparams:\n  treeFallLength: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flags := forest.DefaultConfig()
	flags.Seed = 99
	ro := &runOptions{configPath: path, overrides: []string{"pioneer_odds = 2", "broken"}}

	cfg, err := resolveConfig(flags, ro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Size != 20 || cfg.Params.TreeFallLength != 3 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed flag must override the file, got %d", cfg.Seed)
	}
	if cfg.Params.PioneerOdds != 2 {
		t.Fatalf("override not applied, got %d", cfg.Params.PioneerOdds)
	}
}

func TestResolveConfigInvalid(t *testing.T) {
	flags := forest.DefaultConfig()
	flags.Size = 0
	if _, err := resolveConfig(flags, &runOptions{}); err == nil {
		t.Fatal("expected an error for a zero-sized grid")
	}
}

func TestPlantRandomDeterministic(t *testing.T) {
	cfg := forest.DefaultConfig()
	cfg.Size = 16
	a := forest.NewWithConfig(cfg)
	b := forest.NewWithConfig(cfg)
	plantRandom(app.NewController(a, cfg.Seed), cfg, 12)
	plantRandom(app.NewController(b, cfg.Seed), cfg, 12)

	if a.OccupantCount() == 0 {
		t.Fatal("expected trees to be planted")
	}
	for i, v := range a.Cells() {
		if b.Cells()[i] != v {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
	}
}
