package forest

import (
	"iter"
	"time"

	"mini-forest/internal/core"
)

// World holds the forest grid, the per-tick pending changes and the engine
// lifecycle. It is not safe for concurrent use; a single game loop drives it.
type World struct {
	cfg Config

	size     int
	grid     *core.Grid[Cell]
	pending  *pending
	display  []uint8
	interval *core.Interval

	state State
	ticks int

	rng core.Rand
}

var _ core.Sim = (*World)(nil)

type seeder interface {
	Seed(seed int64)
}

// New returns a forest of the given size using the default rules.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a forest configured from the provided options with a
// PCG generator seeded from cfg.Seed.
func NewWithConfig(cfg Config) *World {
	return NewWithRand(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRand returns a forest drawing every random choice from rng.
func NewWithRand(cfg Config, rng core.Rand) *World {
	grid := core.NewGrid[Cell](cfg.Size, cfg.Size)
	return &World{
		cfg:      cfg,
		size:     grid.W,
		grid:     grid,
		pending:  newPending(),
		display:  make([]uint8, grid.W*grid.H),
		interval: core.NewInterval(cfg.Period),
		rng:      rng,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forest" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.size, H: w.size} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Ticks reports how many steps have run since the last Reset.
func (w *World) Ticks() int { return w.ticks }

// Cells exposes the palette-indexed display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Reset clears the grid and any queued changes and returns to Setup. A zero
// seed reuses the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	if s, ok := w.rng.(seeder); ok {
		s.Seed(seed)
	}
	w.grid.Clear()
	w.pending.reset()
	w.interval.Restart()
	w.state = StateSetup
	w.ticks = 0
	w.rebuildDisplay()
}

// Tick advances the simulation by one step when the engine is running and
// more than the configured period has passed since the previous step. It
// reports whether a step ran.
func (w *World) Tick(now time.Time) bool {
	if w.state != StateRunning {
		return false
	}
	if !w.interval.Due(now) {
		return false
	}
	w.Step()
	return true
}

// Step runs one scan and apply cycle regardless of lifecycle state or pacing.
func (w *World) Step() {
	w.scan()
	w.apply()
	w.ticks++
}

// MutatePlant queues a tree of the given kind at pos. It is ignored outside
// Setup and Running, for positions off the grid and for non-tree kinds. In
// Setup the planting is applied immediately since no tick will drain it.
func (w *World) MutatePlant(pos Position, kind Kind) {
	if w.state != StateSetup && w.state != StateRunning {
		return
	}
	if !w.valid(pos) || !kind.IsTree() {
		return
	}
	w.pending.plant(pos, w.freshCell(kind))
	if w.state == StateSetup {
		w.apply()
	}
}

// MutateIgnite queues an ignition at pos. It is ignored outside Running and
// for positions off the grid.
func (w *World) MutateIgnite(pos Position) {
	if w.state != StateRunning || !w.valid(pos) {
		return
	}
	w.pending.ignite(pos, w.freshCell(Burning))
}

// At returns the occupant at pos. It panics for positions off the grid.
func (w *World) At(pos Position) Cell {
	return w.grid.At(pos.X, pos.Y)
}

// Snapshot yields every occupied position with its cell as of the last
// completed apply phase.
func (w *World) Snapshot() iter.Seq2[Position, Cell] {
	return func(yield func(Position, Cell) bool) {
		for y := 0; y < w.size; y++ {
			for x := 0; x < w.size; x++ {
				c := w.grid.At(x, y)
				if !c.Occupied() {
					continue
				}
				if !yield(Position{X: x, Y: y}, c) {
					return
				}
			}
		}
	}
}

// OccupantCount returns the number of growing trees. Fire and ash are not
// counted.
func (w *World) OccupantCount() int {
	n := 0
	for _, c := range w.grid.Cells() {
		if c.Kind.IsTree() {
			n++
		}
	}
	return n
}

// Census returns the number of cells of each kind, including Empty.
func (w *World) Census() map[Kind]int {
	counts := make(map[Kind]int, 5)
	for _, c := range w.grid.Cells() {
		counts[c.Kind]++
	}
	return counts
}

func (w *World) freshCell(kind Kind) Cell {
	p := w.cfg.Params
	switch kind {
	case SlowGrowing:
		return Cell{Age: p.SlowMaxAge, Kind: SlowGrowing}
	case FastGrowing:
		return Cell{Age: p.FastMaxAge, Kind: FastGrowing}
	case Burning:
		return Cell{Age: p.BurningMaxAge, Kind: Burning}
	case Burned:
		return Cell{Age: BurnedMaxAge, Kind: Burned}
	default:
		return Cell{}
	}
}

// scan reads the start-of-tick grid and fills the pending sets. The grid is
// never written here.
func (w *World) scan() {
	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			cell := w.grid.At(x, y)
			if !cell.Occupied() {
				continue
			}
			pos := Position{X: x, Y: y}
			cell.Age = max(cell.Age-1, 0)
			w.pending.setAge(pos, cell.Age)

			switch cell.Kind {
			case SlowGrowing, FastGrowing:
				if cell.Age == 0 {
					w.pending.clearCell(pos)
					if cell.Kind == SlowGrowing {
						w.treeFall(pos)
					}
					continue
				}
				for _, s := range w.reproduce(cell, pos) {
					w.pending.plant(s.pos, s.cell)
				}
			case Burning:
				if cell.Age == 0 {
					w.pending.burnOut(pos)
					continue
				}
				for _, s := range w.reproduce(cell, pos) {
					w.pending.ignite(s.pos, s.cell)
				}
			case Burned:
				w.pending.clearCell(pos)
				if odds := w.cfg.Params.PioneerOdds; odds > 0 && w.rng.IntN(odds) == 0 {
					w.pending.plant(pos, w.freshCell(FastGrowing))
				}
			}
		}
	}
}

// apply writes the pending sets into the grid in priority order: aged cells,
// ignitions, burn-outs, clears, then plantings. A later step never undoes an
// earlier one: clears skip cells ignited or burned out in this pass and
// plantings skip fire and ash. Every set is drained afterwards whether or not
// its entries took effect.
func (w *World) apply() {
	for pos, age := range w.pending.ages {
		c := w.grid.At(pos.X, pos.Y)
		if !c.Occupied() {
			continue
		}
		c.Age = age
		w.grid.Set(pos.X, pos.Y, c)
	}
	// Entries that do not take effect are dropped from their set so the clear
	// step can tell which positions an earlier step claimed.
	for pos, c := range w.pending.burning {
		if !w.grid.At(pos.X, pos.Y).Kind.IsTree() {
			delete(w.pending.burning, pos)
			continue
		}
		w.grid.Set(pos.X, pos.Y, c)
	}
	for pos := range w.pending.burned {
		if !w.grid.At(pos.X, pos.Y).Occupied() {
			delete(w.pending.burned, pos)
			continue
		}
		w.grid.Set(pos.X, pos.Y, w.freshCell(Burned))
	}
	for pos := range w.pending.cleared {
		if w.pending.claimed(pos) {
			continue
		}
		if w.grid.At(pos.X, pos.Y).Occupied() {
			w.grid.Remove(pos.X, pos.Y)
		}
	}
	for pos, c := range w.pending.planted {
		if !w.grid.At(pos.X, pos.Y).Kind.IsFire() {
			w.grid.Set(pos.X, pos.Y, c)
		}
	}
	w.pending.reset()
	w.rebuildDisplay()
}
