package forest

// pending collects one generation's worth of changes. The scan phase and the
// mutation gateway both write into it; the apply phase drains it. The maps
// are cleared rather than reallocated so their storage is reused every tick.
type pending struct {
	ages    map[Position]int
	burning map[Position]Cell
	burned  map[Position]struct{}
	cleared map[Position]struct{}
	planted map[Position]Cell
}

func newPending() *pending {
	return &pending{
		ages:    make(map[Position]int),
		burning: make(map[Position]Cell),
		burned:  make(map[Position]struct{}),
		cleared: make(map[Position]struct{}),
		planted: make(map[Position]Cell),
	}
}

func (p *pending) setAge(pos Position, age int) { p.ages[pos] = age }

func (p *pending) ignite(pos Position, c Cell) { p.burning[pos] = c }

func (p *pending) burnOut(pos Position) { p.burned[pos] = struct{}{} }

func (p *pending) clearCell(pos Position) { p.cleared[pos] = struct{}{} }

func (p *pending) plant(pos Position, c Cell) { p.planted[pos] = c }

// claimed reports whether an ignition or burn-out is queued at pos.
func (p *pending) claimed(pos Position) bool {
	if _, ok := p.burning[pos]; ok {
		return true
	}
	_, ok := p.burned[pos]
	return ok
}

// len reports the number of queued changes across all sets.
func (p *pending) len() int {
	return len(p.ages) + len(p.burning) + len(p.burned) + len(p.cleared) + len(p.planted)
}

func (p *pending) reset() {
	clear(p.ages)
	clear(p.burning)
	clear(p.burned)
	clear(p.cleared)
	clear(p.planted)
}
