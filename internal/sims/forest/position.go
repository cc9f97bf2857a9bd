package forest

import "mini-forest/internal/core"

// clearFunc reports whether a candidate position is an acceptable target.
type clearFunc func(Position) bool

// randomPosition makes a single attempt at picking a target within radius of
// anchor. Each offset component is drawn from [-radius, radius). The anchor
// itself, positions outside a size×size grid and positions rejected by
// isClear all report false.
func randomPosition(rng core.Rand, anchor Position, radius, size int, isClear clearFunc) (Position, bool) {
	if radius <= 0 {
		return Position{}, false
	}
	dx := rng.IntN(2*radius) - radius
	dy := rng.IntN(2*radius) - radius
	if dx == 0 && dy == 0 {
		return Position{}, false
	}
	target := anchor.Add(dx, dy)
	if target.X < 0 || target.X >= size || target.Y < 0 || target.Y >= size {
		return Position{}, false
	}
	if !isClear(target) {
		return Position{}, false
	}
	return target, true
}
