package forest

import "image/color"

var forestPalette = []color.RGBA{
	Empty:       {R: 255, G: 255, B: 255, A: 255},
	SlowGrowing: {R: 0, G: 100, B: 40, A: 255},
	FastGrowing: {R: 0, G: 228, B: 48, A: 255},
	Burning:     {R: 255, G: 130, B: 40, A: 255},
	Burned:      {R: 127, G: 106, B: 79, A: 255},
}

// Palette exposes the colors used for rendering the forest, indexed by Kind.
func (w *World) Palette() []color.RGBA {
	return forestPalette
}

func (w *World) rebuildDisplay() {
	for i, c := range w.grid.Cells() {
		w.display[i] = uint8(c.Kind)
	}
}

// AgeMask returns, for every cell in row-major order, its remaining lifetime
// as a fraction of the lifetime it was created with. Empty cells are 0.
func (w *World) AgeMask() []float32 {
	mask := make([]float32, len(w.display))
	for i, c := range w.grid.Cells() {
		if !c.Occupied() {
			continue
		}
		full := w.freshCell(c.Kind).Age
		if full <= 0 {
			continue
		}
		mask[i] = min(float32(c.Age)/float32(full), 1)
	}
	return mask
}
