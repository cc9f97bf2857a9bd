package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// gridLines returns the pixel offsets of the interior lines separating n cells
// of the given scale.
func gridLines(n, scale int) []float32 {
	if n <= 1 || scale <= 0 {
		return nil
	}
	out := make([]float32, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, float32(i*scale))
	}
	return out
}
