package app

import (
	"fmt"
	"log"
	"time"

	"mini-forest/internal/sims/forest"
)

// HUDHeight is the height in pixels of the status strip above the grid.
const HUDHeight = 24

// EndMessage is shown once the simulation has been stopped.
const EndMessage = "Simulation ended. Press [enter] to play again."

// Action is what a pointer press asks the forest to do.
type Action int

const (
	ActionNone Action = iota
	ActionPlantSlow
	ActionPlantFast
	ActionIgnite
)

// CellAt translates window pixel coordinates to a grid position. The grid is
// drawn at vertical offset offsetY with square cells of scale pixels.
func CellAt(px, py, scale, offsetY, size int) (forest.Position, bool) {
	if scale <= 0 || px < 0 || py < offsetY {
		return forest.Position{}, false
	}
	pos := forest.Position{X: px / scale, Y: (py - offsetY) / scale}
	if pos.X >= size || pos.Y >= size {
		return forest.Position{}, false
	}
	return pos, true
}

// Controller turns front-end input events into forest mutations and
// lifecycle transitions. It owns no rendering state.
type Controller struct {
	world *forest.World
	seed  int64
}

// NewController wraps world. seed is used for every restart.
func NewController(world *forest.World, seed int64) *Controller {
	return &Controller{world: world, seed: seed}
}

// World exposes the controlled simulation.
func (c *Controller) World() *forest.World { return c.world }

// Press applies a pointer action at pos.
func (c *Controller) Press(pos forest.Position, action Action) {
	switch action {
	case ActionPlantSlow:
		c.world.MutatePlant(pos, forest.SlowGrowing)
	case ActionPlantFast:
		c.world.MutatePlant(pos, forest.FastGrowing)
	case ActionIgnite:
		c.world.MutateIgnite(pos)
	}
}

// Start leaves setup once at least one tree is planted.
func (c *Controller) Start() bool {
	if !c.world.Start() {
		return false
	}
	log.Printf("[app] simulation started with %d trees", c.world.OccupantCount())
	return true
}

// Quit stops a running or unstarted simulation.
func (c *Controller) Quit() bool {
	if c.world.State() == forest.StateEnded {
		return false
	}
	c.world.End()
	log.Printf("[app] simulation ended after %d ticks", c.world.Ticks())
	return true
}

// Restart clears an ended simulation and returns it to setup.
func (c *Controller) Restart() bool {
	if c.world.State() != forest.StateEnded {
		return false
	}
	c.world.Reset(c.seed)
	log.Printf("[app] simulation reset")
	return true
}

// Update advances the simulation if a tick is due at now.
func (c *Controller) Update(now time.Time) bool {
	return c.world.Tick(now)
}

// Status returns the one-line status text for the current state.
func (c *Controller) Status() string {
	trees := c.world.OccupantCount()
	switch c.world.State() {
	case forest.StateSetup:
		return fmt.Sprintf("Tree count %d Click to plant, [space] to start", trees)
	case forest.StateRunning:
		return fmt.Sprintf("Tree count %d Press Q to quit", trees)
	default:
		return EndMessage
	}
}
