package forest

// spawn is a new occupant produced by reproduction.
type spawn struct {
	pos  Position
	cell Cell
}

// fallDirections lists the unit steps a fallen tree may extend along:
// north, east, south, west.
var fallDirections = [4]Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// reproduce returns the occupants cell spawns this tick from pos. Every
// attempt consults the start-of-tick grid only; attempts within one call do
// not see each other. The result holds at most one entry per position.
func (w *World) reproduce(cell Cell, pos Position) []spawn {
	p := w.cfg.Params
	switch cell.Kind {
	case SlowGrowing:
		return w.attempts(pos, p.SlowSpreadAttempts, p.SlowSpreadRadius, w.isEmpty,
			Cell{Age: p.SlowMaxAge, Kind: SlowGrowing})
	case FastGrowing:
		return w.attempts(pos, p.FastSpreadAttempts, p.FastSpreadRadius, w.isEmpty,
			Cell{Age: p.FastMaxAge, Kind: FastGrowing})
	case Burning:
		return w.attempts(pos, p.FireSpreadAttempts, p.FireSpreadRadius, w.isFlammable,
			Cell{Age: max(cell.Age-1, 0), Kind: Burning})
	default:
		return nil
	}
}

func (w *World) attempts(anchor Position, n, radius int, isClear clearFunc, offspring Cell) []spawn {
	var out []spawn
	for i := 0; i < n; i++ {
		target, ok := randomPosition(w.rng, anchor, radius, w.size, isClear)
		if !ok || containsPos(out, target) {
			continue
		}
		out = append(out, spawn{pos: target, cell: offspring})
	}
	return out
}

func containsPos(spawns []spawn, pos Position) bool {
	for _, s := range spawns {
		if s.pos == pos {
			return true
		}
	}
	return false
}

// treeFall resolves the collapse of a slow-growing tree at origin. The trunk
// covers TreeFallLength cells in one direction; each cell is reseeded slow
// (draw 0-4), reseeded fast (draw 9) or kept clear (draw 5-8).
func (w *World) treeFall(origin Position) {
	p := w.cfg.Params
	dir := fallDirections[w.rng.IntN(len(fallDirections))]
	for step := 1; step <= p.TreeFallLength; step++ {
		v := w.rng.IntN(10)
		pos := origin.Add(dir.X*step, dir.Y*step)
		if !w.valid(pos) {
			continue
		}
		switch {
		case v < 5:
			w.pending.plant(pos, Cell{Age: p.SlowMaxAge, Kind: SlowGrowing})
		case v > 8:
			w.pending.plant(pos, Cell{Age: p.FastMaxAge, Kind: FastGrowing})
		default:
			w.pending.clearCell(pos)
		}
	}
}

func (w *World) isEmpty(pos Position) bool {
	return !w.grid.At(pos.X, pos.Y).Occupied()
}

func (w *World) isFlammable(pos Position) bool {
	return w.grid.At(pos.X, pos.Y).Kind.IsTree()
}

func (w *World) valid(pos Position) bool {
	return w.grid.InBounds(pos.X, pos.Y)
}
