//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mini-forest/internal/render"
	"mini-forest/internal/sims/forest"
	"mini-forest/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.RGBA{R: 211, G: 211, B: 211, A: 255}

// Game adapts the forest simulation to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// New constructs a Game for the provided forest.
func New(world *forest.World, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := world.Size()
	return &Game{
		ctrl:    NewController(world, seed),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(HUDHeight),
		overlay: ui.NewOverlay(world, scale, HUDHeight),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation when a tick is
// due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.ctrl.Quit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctrl.Restart()
	}
	g.overlay.Update()

	if action := pressedAction(); action != ActionNone {
		mx, my := ebiten.CursorPosition()
		size := g.ctrl.World().Size()
		if pos, ok := CellAt(mx, my, g.scale, HUDHeight, size.W); ok {
			g.ctrl.Press(pos, action)
		}
	}

	g.ctrl.Update(time.Now())
	return nil
}

func pressedAction() Action {
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		return ActionIgnite
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		return ActionPlantFast
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			return ActionIgnite
		}
		return ActionPlantSlow
	default:
		return ActionNone
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	world := g.ctrl.World()
	if world.State() == forest.StateEnded {
		screen.Fill(color.White)
		g.hud.DrawCentered(screen, EndMessage)
		return
	}
	screen.Fill(background)
	g.painter.Blit(screen, world.Cells(), world.Palette(), g.scale, HUDHeight)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.ctrl.Status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctrl.World().Size()
	return s.W * g.scale, s.H*g.scale + HUDHeight
}
