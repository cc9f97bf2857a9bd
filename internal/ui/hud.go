//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	textColor  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
)

// HUD renders the status strip above the simulation view.
type HUD struct {
	height int
	panel  *ebiten.Image
}

// NewHUD constructs a HUD strip of the given pixel height.
func NewHUD(height int) *HUD {
	if height < 0 {
		height = 0
	}
	return &HUD{height: height}
}

// Draw paints the strip across the top of screen with line left-aligned.
func (h *HUD) Draw(screen *ebiten.Image, line string) {
	if h == nil || h.height <= 0 {
		return
	}
	width := screen.Bounds().Dx()
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, h.height)
	}
	h.panel.Fill(panelColor)
	screen.DrawImage(h.panel, nil)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	_, y := centeredOrigin(width, h.height, bounds.Dx(), bounds.Dy(), bounds.Min.Y)
	text.Draw(screen, line, face, textInset, y, textColor)
}

// DrawCentered draws line in the middle of screen.
func (h *HUD) DrawCentered(screen *ebiten.Image, line string) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)
	size := screen.Bounds().Size()
	x, y := centeredOrigin(size.X, size.Y, bounds.Dx(), bounds.Dy(), bounds.Min.Y)
	text.Draw(screen, line, face, x, y, textColor)
}
