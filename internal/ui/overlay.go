//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mini-forest/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type ageMaskProvider interface {
	AgeMask() []float32
}

var (
	ageTint      = color.RGBA{R: 40, G: 40, B: 160, A: 0}
	overlayPanel = color.RGBA{R: 255, G: 255, B: 255, A: 220}
)

const overlayLineHeight = 15

// Overlay draws optional debugging visuals on top of the grid: an age heat
// map (key 1) and the parameter listing (key 2).
type Overlay struct {
	sim        core.Sim
	scale      int
	offsetY    int
	showAge    bool
	showParams bool

	maskImg *ebiten.Image
	maskBuf []byte
	panel   *ebiten.Image
}

// NewOverlay constructs an overlay for sim drawn at vertical offset offsetY.
func NewOverlay(sim core.Sim, scale, offsetY int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, offsetY: offsetY}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAge = !o.showAge
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showParams = !o.showParams
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showAge {
		if provider, ok := o.sim.(ageMaskProvider); ok {
			o.drawMask(screen, provider.AgeMask())
		}
	}
	if o.showParams {
		if provider, ok := o.sim.(core.ParameterProvider); ok {
			o.drawParams(screen, provider.Parameters())
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32) {
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 || len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
	}
	if len(o.maskBuf) != 4*total {
		o.maskBuf = make([]byte, 4*total)
	}
	fillMaskRGBA(o.maskBuf, mask, ageTint)
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	op.GeoM.Translate(0, float64(o.offsetY))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawParams(screen *ebiten.Image, snap core.ParameterSnapshot) {
	var lines []string
	for _, group := range snap.Groups {
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	if len(lines) == 0 {
		return
	}

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx())
	}
	w := width + 2*textInset
	h := len(lines)*overlayLineHeight + textInset
	if o.panel == nil || o.panel.Bounds().Dx() != w || o.panel.Bounds().Dy() != h {
		o.panel = ebiten.NewImage(w, h)
	}
	o.panel.Fill(overlayPanel)
	for i, line := range lines {
		text.Draw(o.panel, line, face, textInset, (i+1)*overlayLineHeight, textColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(textInset), float64(o.offsetY+textInset))
	screen.DrawImage(o.panel, op)
}
