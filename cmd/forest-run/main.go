package main

import (
	"log"
	"os"
	"strings"
	"time"

	"mini-forest/internal/app"
	"mini-forest/internal/core"
	"mini-forest/internal/sims/forest"
	"mini-forest/internal/view"

	"github.com/integrii/flaggy"
)

type runOptions struct {
	configPath string
	overrides  []string
	ticks      int
	trees      int
	igniteAt   int
	igniteX    int
	igniteY    int
	every      int
	plain      bool
}

func main() {
	ro := &runOptions{ticks: 200, trees: 40, igniteAt: -1, igniteX: -1, igniteY: -1, every: 10}
	cfg := forest.DefaultConfig()

	flaggy.SetName("forest-run")
	flaggy.SetDescription("Runs the forest simulation without a window and prints the result")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&ro.configPath, "c", "config", "Path to a YAML forest config")
	flaggy.StringSlice(&ro.overrides, "S", "set", "Parameter override in key=value form (repeatable)")
	flaggy.Int(&cfg.Size, "z", "size", "Grid size in cells")
	flaggy.Int64(&cfg.Seed, "r", "seed", "Seed for the simulation and the initial planting")
	flaggy.Int(&ro.ticks, "t", "ticks", "Number of ticks to run")
	flaggy.Int(&ro.trees, "n", "trees", "Number of random trees planted before starting")
	flaggy.Int(&ro.igniteAt, "i", "igniteAt", "Tick at which to ignite a cell, -1 for never")
	flaggy.Int(&ro.igniteX, "x", "igniteX", "Column to ignite, defaults to the centre")
	flaggy.Int(&ro.igniteY, "y", "igniteY", "Row to ignite, defaults to the centre")
	flaggy.Int(&ro.every, "e", "every", "Print a census line every N ticks, 0 to disable")
	flaggy.Bool(&ro.plain, "p", "plain", "Disable colours in the output")
	flaggy.Parse()

	fc, err := resolveConfig(cfg, ro)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	world := forest.NewWithConfig(fc)
	ctrl := app.NewController(world, fc.Seed)
	out := view.NewConsoleOut(os.Stdout, !ro.plain, ro.every)
	out.Register(world)

	plantRandom(ctrl, fc, ro.trees)
	if !ctrl.Start() {
		log.Fatalf("[run] nothing planted, refusing to start")
	}

	ignite := forest.Position{X: fc.Size / 2, Y: fc.Size / 2}
	if ro.igniteX >= 0 {
		ignite.X = ro.igniteX
	}
	if ro.igniteY >= 0 {
		ignite.Y = ro.igniteY
	}

	step := fc.Period + time.Nanosecond
	if fc.Period <= 0 {
		step = time.Second
	}

	out.Start()
	now := time.Unix(0, 0)
	for world.Ticks() < ro.ticks {
		if world.Ticks() == ro.igniteAt {
			ctrl.Press(ignite, app.ActionIgnite)
		}
		if ctrl.Update(now) {
			out.Refresh(world)
		}
		now = now.Add(step)
	}
	ctrl.Quit()
	out.Finish(world)
}

// resolveConfig layers the YAML file and key=value overrides on top of the
// flag values.
func resolveConfig(flags forest.Config, ro *runOptions) (forest.Config, error) {
	cfg := flags
	if ro.configPath != "" {
		loaded, err := forest.LoadConfig(ro.configPath)
		if err != nil {
			return forest.Config{}, err
		}
		def := forest.DefaultConfig()
		if flags.Size != def.Size {
			loaded.Size = flags.Size
		}
		if flags.Seed != def.Seed {
			loaded.Seed = flags.Seed
		}
		cfg = loaded
	}
	kv := make(map[string]string, len(ro.overrides))
	for _, o := range ro.overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok {
			log.Printf("[run] ignoring malformed override %q", o)
			continue
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	cfg = cfg.With(kv)
	if err := cfg.Validate(); err != nil {
		return forest.Config{}, err
	}
	return cfg, nil
}

// plantRandom scatters n trees during setup using a generator derived from
// the simulation seed.
func plantRandom(ctrl *app.Controller, cfg forest.Config, n int) {
	placer := core.NewRNG(cfg.Seed ^ 0x5eed)
	for i := 0; i < n; i++ {
		pos := forest.Position{X: placer.IntN(cfg.Size), Y: placer.IntN(cfg.Size)}
		action := app.ActionPlantSlow
		if placer.IntN(2) == 1 {
			action = app.ActionPlantFast
		}
		ctrl.Press(pos, action)
	}
}
