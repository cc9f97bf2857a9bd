package ui

const textInset = 8

// centeredOrigin returns the text origin that centers a w×h text box inside a
// boxW×boxH area. minY is the (negative) ascent offset of the text bounds
// relative to its baseline origin.
func centeredOrigin(boxW, boxH, w, h, minY int) (int, int) {
	x := (boxW - w) / 2
	if x < 0 {
		x = 0
	}
	top := (boxH - h) / 2
	if top < 0 {
		top = 0
	}
	return x, top - minY
}
