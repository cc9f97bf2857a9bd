package forest

import "testing"

// scriptedRand replays fixed draws. Once the script runs out it returns
// fallback, clamped into range.
type scriptedRand struct {
	t        *testing.T
	vals     []int
	next     int
	calls    int
	fallback int
}

func (r *scriptedRand) IntN(n int) int {
	r.calls++
	if r.next >= len(r.vals) {
		return min(r.fallback, n-1)
	}
	v := r.vals[r.next]
	r.next++
	if v < 0 || v >= n {
		r.t.Fatalf("scripted draw %d out of range [0,%d)", v, n)
	}
	return v
}

// quietConfig disables every source of spontaneous spawning so tests can
// enable only the rule under inspection.
func quietConfig(size int) Config {
	cfg := DefaultConfig()
	cfg.Size = size
	cfg.Params.SlowSpreadAttempts = 0
	cfg.Params.FastSpreadAttempts = 0
	cfg.Params.FireSpreadAttempts = 0
	cfg.Params.TreeFallLength = 0
	cfg.Params.PioneerOdds = 0
	return cfg
}

func put(w *World, x, y int, c Cell) {
	w.grid.Set(x, y, c)
}

func snapshotMap(w *World) map[Position]Cell {
	out := map[Position]Cell{}
	for pos, c := range w.Snapshot() {
		out[pos] = c
	}
	return out
}
