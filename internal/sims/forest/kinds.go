package forest

// Kind enumerates what occupies a grid slot. The zero value marks an empty
// slot.
type Kind uint8

const (
	Empty Kind = iota
	SlowGrowing
	FastGrowing
	Burning
	Burned
)

// Default maximum ages. Ages count the ticks remaining before a cell's
// natural expiry.
const (
	SlowMaxAge    = 11
	FastMaxAge    = 3
	BurningMaxAge = 7
	// BurnedMaxAge is fixed: ash always expires on the first scan that sees it.
	BurnedMaxAge = 1
)

// String returns a short human-readable kind name.
func (k Kind) String() string {
	switch k {
	case SlowGrowing:
		return "slow"
	case FastGrowing:
		return "fast"
	case Burning:
		return "burning"
	case Burned:
		return "burned"
	default:
		return "empty"
	}
}

// IsTree reports whether the kind is a growing (and flammable) tree.
func (k Kind) IsTree() bool {
	return k == SlowGrowing || k == FastGrowing
}

// IsFire reports whether the kind is active fire or its residual ash.
func (k Kind) IsFire() bool {
	return k == Burning || k == Burned
}

// Cell is the occupant of a single grid slot.
type Cell struct {
	Age  int
	Kind Kind
}

// Occupied reports whether the cell holds anything.
func (c Cell) Occupied() bool { return c.Kind != Empty }

// Position addresses a grid slot.
type Position struct {
	X, Y int
}

// Add offsets p by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
