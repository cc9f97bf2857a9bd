package forest

import (
	"maps"
	"testing"
	"time"

	"mini-forest/internal/core"
)

func TestSlowTreeSenescenceScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 64
	for seed := int64(1); seed <= 20; seed++ {
		w := NewWithRand(cfg, core.NewRNG(seed))
		origin := Position{X: 10, Y: 10}
		put(w, origin.X, origin.Y, Cell{Age: 1, Kind: SlowGrowing})

		w.Step()

		if w.At(origin).Occupied() {
			t.Fatalf("seed %d: origin must be empty after the tree falls", seed)
		}
		var arm *Position
		for pos, c := range w.Snapshot() {
			if !c.Kind.IsTree() {
				t.Fatalf("seed %d: unexpected %v at %+v", seed, c.Kind, pos)
			}
			dx, dy := pos.X-origin.X, pos.Y-origin.Y
			if dx != 0 && dy != 0 {
				t.Fatalf("seed %d: seedling %+v off the trunk line", seed, pos)
			}
			dist := max(dx, -dx, dy, -dy)
			if dist < 1 || dist > 6 {
				t.Fatalf("seed %d: seedling %+v beyond the trunk", seed, pos)
			}
			dir := Position{X: dx / dist, Y: dy / dist}
			if arm == nil {
				arm = &dir
			} else if *arm != dir {
				t.Fatalf("seed %d: seedlings on more than one arm", seed)
			}
		}
	}
}

func TestIgniteScenario(t *testing.T) {
	cfg := DefaultConfig()
	w := NewWithConfig(cfg)
	target := Position{X: 5, Y: 5}
	w.MutatePlant(target, FastGrowing)
	if got := w.At(target); got != (Cell{Age: FastMaxAge, Kind: FastGrowing}) {
		t.Fatalf("setup planting not applied, got %+v", got)
	}
	if !w.Start() {
		t.Fatal("expected Start to succeed with a tree planted")
	}

	w.MutateIgnite(target)
	if got := w.At(target); got.Kind != FastGrowing {
		t.Fatalf("ignition must wait for the next apply phase, got %+v", got)
	}

	w.Step()
	if got := w.At(target); got != (Cell{Age: BurningMaxAge, Kind: Burning}) {
		t.Fatalf("expected fresh fire after apply, got %+v", got)
	}
	before := snapshotMap(w)

	w.Step()
	if got := w.At(target); got != (Cell{Age: BurningMaxAge - 1, Kind: Burning}) {
		t.Fatalf("expected fire age %d, got %+v", BurningMaxAge-1, got)
	}
	for pos, c := range w.Snapshot() {
		if pos == target || c.Kind != Burning {
			continue
		}
		if !before[pos].Kind.IsTree() {
			t.Fatalf("fire spread onto non-flammable %+v (%v)", pos, before[pos].Kind)
		}
		if c.Age != BurningMaxAge-2 {
			t.Fatalf("spread fire at %+v has age %d, expected %d", pos, c.Age, BurningMaxAge-2)
		}
		dx, dy := pos.X-target.X, pos.Y-target.Y
		if dx < -2 || dx >= 2 || dy < -2 || dy >= 2 {
			t.Fatalf("spread fire at %+v outside radius 2", pos)
		}
	}
}

func TestPlantOntoBurningRejected(t *testing.T) {
	w := NewWithRand(quietConfig(16), &scriptedRand{t: t})
	put(w, 3, 3, Cell{Age: 5, Kind: Burning})
	put(w, 8, 8, Cell{Age: 9, Kind: SlowGrowing})
	if !w.Start() {
		t.Fatal("expected Start to succeed")
	}

	w.MutatePlant(Position{X: 3, Y: 3}, SlowGrowing)
	if w.pending.len() != 1 {
		t.Fatalf("planting must be queued while running, pending=%d", w.pending.len())
	}
	w.Step()

	if got := w.At(Position{X: 3, Y: 3}); got != (Cell{Age: 4, Kind: Burning}) {
		t.Fatalf("burning cell must survive planting, got %+v", got)
	}
}

func TestPlantOntoAshRejectedInSetup(t *testing.T) {
	w := NewWithRand(quietConfig(16), &scriptedRand{t: t})
	put(w, 2, 2, Cell{Age: 1, Kind: Burned})

	w.MutatePlant(Position{X: 2, Y: 2}, FastGrowing)

	if got := w.At(Position{X: 2, Y: 2}); got.Kind != Burned {
		t.Fatalf("ash must not be displaced by planting, got %+v", got)
	}
	if w.pending.len() != 0 {
		t.Fatalf("rejected planting must not leak, pending=%d", w.pending.len())
	}
}

func TestIgniteIgnoresNonFlammable(t *testing.T) {
	w := NewWithRand(quietConfig(16), &scriptedRand{t: t})
	put(w, 1, 1, Cell{Age: 6, Kind: Burning})
	put(w, 2, 2, Cell{Age: 1, Kind: Burned})
	put(w, 9, 9, Cell{Age: 9, Kind: SlowGrowing})
	w.Start()

	w.MutateIgnite(Position{X: 1, Y: 1})
	w.MutateIgnite(Position{X: 2, Y: 2})
	w.MutateIgnite(Position{X: 5, Y: 5})
	w.Step()

	if got := w.At(Position{X: 1, Y: 1}); got != (Cell{Age: 5, Kind: Burning}) {
		t.Fatalf("re-igniting fire must not refresh it, got %+v", got)
	}
	if got := w.At(Position{X: 2, Y: 2}); got.Occupied() {
		t.Fatalf("ash must clear rather than reignite, got %+v", got)
	}
	if got := w.At(Position{X: 5, Y: 5}); got.Occupied() {
		t.Fatalf("empty ground must not ignite, got %+v", got)
	}
}

func TestIgnitionBeatsSenescenceClear(t *testing.T) {
	w := NewWithRand(quietConfig(16), &scriptedRand{t: t})
	put(w, 4, 4, Cell{Age: 1, Kind: FastGrowing})
	w.Start()

	w.MutateIgnite(Position{X: 4, Y: 4})
	w.Step()

	if got := w.At(Position{X: 4, Y: 4}); got != (Cell{Age: BurningMaxAge, Kind: Burning}) {
		t.Fatalf("valid ignition must win over the clear, got %+v", got)
	}
}

func TestBurnOutAndAshLifetime(t *testing.T) {
	w := NewWithRand(quietConfig(16), &scriptedRand{t: t})
	put(w, 6, 6, Cell{Age: 1, Kind: Burning})

	w.Step()
	if got := w.At(Position{X: 6, Y: 6}); got != (Cell{Age: BurnedMaxAge, Kind: Burned}) {
		t.Fatalf("exhausted fire must become ash, got %+v", got)
	}

	w.Step()
	if got := w.At(Position{X: 6, Y: 6}); got.Occupied() {
		t.Fatalf("ash must clear on the next tick, got %+v", got)
	}
}

func TestAshPioneerSeedling(t *testing.T) {
	cfg := quietConfig(16)
	cfg.Params.PioneerOdds = 10
	rng := &scriptedRand{t: t, vals: []int{0, 3}}
	w := NewWithRand(cfg, rng)
	put(w, 6, 6, Cell{Age: 1, Kind: Burned})
	put(w, 7, 7, Cell{Age: 1, Kind: Burned})

	w.Step()

	if got := w.At(Position{X: 6, Y: 6}); got != (Cell{Age: FastMaxAge, Kind: FastGrowing}) {
		t.Fatalf("expected pioneer seedling, got %+v", got)
	}
	if got := w.At(Position{X: 7, Y: 7}); got.Occupied() {
		t.Fatalf("expected cleared ash, got %+v", got)
	}
}

func TestTreeAgeDecreasesByOnePerTick(t *testing.T) {
	w := NewWithRand(quietConfig(16), &scriptedRand{t: t})
	pos := Position{X: 3, Y: 3}
	put(w, pos.X, pos.Y, Cell{Age: SlowMaxAge, Kind: SlowGrowing})

	for want := SlowMaxAge - 1; want > 0; want-- {
		w.Step()
		if got := w.At(pos); got != (Cell{Age: want, Kind: SlowGrowing}) {
			t.Fatalf("tick %d: got %+v, expected age %d", w.Ticks(), got, want)
		}
	}
	w.Step()
	if w.At(pos).Occupied() {
		t.Fatal("tree must be removed on the tick its age reaches 0")
	}
}

func TestScanDoesNotSeeSameTickWrites(t *testing.T) {
	cfg := quietConfig(16)
	cfg.Params.FastSpreadAttempts = 1
	// Both trees target (5,5): the first from (4,5) with offset (1,0), the
	// second from (6,5) with offset (-1,0). Neither sees the other's seedling.
	rng := &scriptedRand{t: t, vals: []int{11, 10, 9, 10}}
	w := NewWithRand(cfg, rng)
	put(w, 4, 5, Cell{Age: 3, Kind: FastGrowing})
	put(w, 6, 5, Cell{Age: 3, Kind: FastGrowing})

	w.Step()

	if got := w.At(Position{X: 5, Y: 5}); got != (Cell{Age: FastMaxAge, Kind: FastGrowing}) {
		t.Fatalf("expected a single seedling at the shared target, got %+v", got)
	}
	if n := w.OccupantCount(); n != 3 {
		t.Fatalf("expected 3 trees, got %d", n)
	}
}

func TestPendingDrainedAfterApply(t *testing.T) {
	w := NewWithConfig(DefaultConfig())
	for i := 0; i < 10; i++ {
		w.MutatePlant(Position{X: i * 3, Y: i * 2}, SlowGrowing)
	}
	w.Start()
	for i := 0; i < 30; i++ {
		w.MutateIgnite(Position{X: i, Y: i})
		w.Step()
		if n := w.pending.len(); n != 0 {
			t.Fatalf("tick %d: %d pending entries leaked", i, n)
		}
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	w := NewWithConfig(DefaultConfig())
	rng := core.NewRNG(5)
	for i := 0; i < 40; i++ {
		w.MutatePlant(Position{X: rng.IntN(64), Y: rng.IntN(64)}, Kind(1+rng.IntN(2)))
	}
	w.Start()

	maxAge := map[Kind]int{
		SlowGrowing: SlowMaxAge,
		FastGrowing: FastMaxAge,
		Burning:     BurningMaxAge,
		Burned:      BurnedMaxAge,
	}
	prev := snapshotMap(w)
	for tick := 0; tick < 200; tick++ {
		if tick%25 == 10 {
			w.MutateIgnite(Position{X: rng.IntN(64), Y: rng.IntN(64)})
		}
		w.Step()
		cur := snapshotMap(w)
		for pos, c := range cur {
			if c.Age < 0 || c.Age > maxAge[c.Kind] {
				t.Fatalf("tick %d: %+v has age outside [0,%d]: %+v", tick, pos, maxAge[c.Kind], c)
			}
			old, existed := prev[pos]
			if c.Kind == Burned && existed && old.Kind == Burned {
				t.Fatalf("tick %d: ash at %+v survived a second tick", tick, pos)
			}
			if c.Kind == Burning && old.Kind != Burning && !old.Kind.IsTree() {
				t.Fatalf("tick %d: fire at %+v ignited on %v", tick, pos, old.Kind)
			}
		}
		prev = cur
	}
}

func TestStateMachine(t *testing.T) {
	w := NewWithConfig(quietConfig(16))
	if w.State() != StateSetup {
		t.Fatalf("new world must start in setup, got %v", w.State())
	}
	if w.Start() {
		t.Fatal("Start must be refused without trees")
	}

	w.MutateIgnite(Position{X: 1, Y: 1})
	if w.pending.len() != 0 {
		t.Fatal("ignitions must be ignored during setup")
	}
	w.MutatePlant(Position{X: 1, Y: 1}, SlowGrowing)
	w.MutatePlant(Position{X: -1, Y: 1}, SlowGrowing)
	w.MutatePlant(Position{X: 1, Y: 16}, FastGrowing)
	w.MutatePlant(Position{X: 2, Y: 2}, Burning)
	if n := w.OccupantCount(); n != 1 {
		t.Fatalf("expected exactly one valid planting, got %d", n)
	}

	now := time.Unix(1000, 0)
	if w.Tick(now) {
		t.Fatal("Tick must be a no-op during setup")
	}
	if !w.Start() {
		t.Fatal("expected Start to succeed")
	}
	if !w.Tick(now) {
		t.Fatal("first running Tick must step")
	}
	if w.Tick(now.Add(w.Config().Period)) {
		t.Fatal("Tick must wait until more than one period has elapsed")
	}
	if !w.Tick(now.Add(w.Config().Period + time.Millisecond)) {
		t.Fatal("Tick must step once the period has elapsed")
	}
	if w.Ticks() != 2 {
		t.Fatalf("expected 2 ticks, got %d", w.Ticks())
	}

	if !w.End() {
		t.Fatal("expected End to succeed while running")
	}
	frozen := snapshotMap(w)
	w.MutatePlant(Position{X: 5, Y: 5}, SlowGrowing)
	w.MutateIgnite(Position{X: 1, Y: 1})
	if w.Tick(now.Add(time.Hour)) {
		t.Fatal("Tick must be a no-op once ended")
	}
	if !maps.Equal(frozen, snapshotMap(w)) || w.pending.len() != 0 {
		t.Fatal("ended world must stay frozen")
	}

	w.Reset(0)
	if w.State() != StateSetup || w.OccupantCount() != 0 || w.Ticks() != 0 {
		t.Fatalf("Reset must clear the grid and return to setup, state=%v trees=%d", w.State(), w.OccupantCount())
	}
	for i, v := range w.Cells() {
		if v != uint8(Empty) {
			t.Fatalf("display cell %d not cleared", i)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	run := func(w *World, seed int64) map[Position]Cell {
		w.Reset(seed)
		for i := 0; i < 8; i++ {
			w.MutatePlant(Position{X: 4 + i*7, Y: 4 + i*6}, Kind(1+i%2))
		}
		w.Start()
		for i := 0; i < 60; i++ {
			if i == 20 {
				w.MutateIgnite(Position{X: 4, Y: 4})
			}
			w.Step()
		}
		return snapshotMap(w)
	}

	w := NewWithConfig(DefaultConfig())
	first := run(w, 99)
	second := run(w, 99)
	if !maps.Equal(first, second) {
		t.Fatal("same seed must reproduce the same forest")
	}
	other := run(w, 100)
	if maps.Equal(first, other) {
		t.Fatal("different seeds should produce different forests")
	}
}

func TestSnapshotCountsAndDisplay(t *testing.T) {
	w := NewWithRand(quietConfig(8), &scriptedRand{t: t})
	put(w, 0, 0, Cell{Age: 3, Kind: SlowGrowing})
	put(w, 1, 0, Cell{Age: 2, Kind: FastGrowing})
	put(w, 2, 0, Cell{Age: 5, Kind: Burning})
	put(w, 3, 0, Cell{Age: 1, Kind: Burned})
	w.rebuildDisplay()

	if n := w.OccupantCount(); n != 2 {
		t.Fatalf("occupant count must exclude fire and ash, got %d", n)
	}
	census := w.Census()
	if census[Empty] != 60 || census[Burning] != 1 {
		t.Fatalf("unexpected census %+v", census)
	}
	seen := 0
	for range w.Snapshot() {
		seen++
	}
	if seen != 4 {
		t.Fatalf("snapshot must yield one entry per occupied cell, got %d", seen)
	}
	for pos := range w.Snapshot() {
		if pos != (Position{}) {
			t.Fatal("snapshot must visit cells in row-major order")
		}
		break
	}
	cells := w.Cells()
	palette := w.Palette()
	for i, k := range []Kind{SlowGrowing, FastGrowing, Burning, Burned, Empty} {
		if cells[i] != uint8(k) {
			t.Fatalf("display cell %d = %d, expected %d", i, cells[i], k)
		}
		if int(cells[i]) >= len(palette) {
			t.Fatalf("display value %d has no palette entry", cells[i])
		}
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	w := New(8)
	defer func() {
		if recover() == nil {
			t.Fatal("expected out-of-range access to panic")
		}
	}()
	w.At(Position{X: 8, Y: 0})
}

func TestAgeMask(t *testing.T) {
	w := NewWithRand(quietConfig(4), &scriptedRand{t: t})
	put(w, 0, 0, Cell{Age: SlowMaxAge, Kind: SlowGrowing})
	put(w, 1, 0, Cell{Age: 2, Kind: FastGrowing})
	put(w, 2, 0, Cell{Age: 1, Kind: Burned})

	mask := w.AgeMask()
	if len(mask) != 16 {
		t.Fatalf("expected one entry per cell, got %d", len(mask))
	}
	if mask[0] != 1 || mask[1] != float32(2)/float32(FastMaxAge) || mask[2] != 1 || mask[3] != 0 {
		t.Fatalf("unexpected mask %v", mask[:4])
	}
}
