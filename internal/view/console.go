package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"mini-forest/internal/sims/forest"

	"github.com/logrusorgru/aurora"
)

// ConsoleOut prints progress and the final grid of a headless forest run.
type ConsoleOut struct {
	out       io.Writer
	au        aurora.Aurora
	every     int
	startTime time.Time
}

// NewConsoleOut writes to out. Colours are emitted only when colors is set.
// every controls how often a census line is printed; zero disables it.
func NewConsoleOut(out io.Writer, colors bool, every int) *ConsoleOut {
	return &ConsoleOut{out: out, au: aurora.NewAurora(colors), every: every}
}

// Register prints the running configuration.
func (c *ConsoleOut) Register(w *forest.World) {
	size := w.Size()
	fmt.Fprintln(c.out, "Running configuration:")
	fmt.Fprintf(c.out, "  Dimension: %v x %v\n", size.W, size.H)
	for _, group := range w.Parameters().Groups {
		fmt.Fprintf(c.out, "  %s\n", c.au.Colorize(group.Name, aurora.GreenFg))
		for _, p := range group.Params {
			fmt.Fprintf(c.out, "    %s: %s\n", p.Label, p.Value)
		}
	}
}

// Start marks the beginning of the timed run.
func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.out, "\nSimulation started...")
}

// Refresh prints a census line every few ticks.
func (c *ConsoleOut) Refresh(w *forest.World) {
	if c.every <= 0 || w.Ticks()%c.every != 0 {
		return
	}
	fmt.Fprintf(c.out, "  Tick %v: %s\n", w.Ticks(), c.census(w))
}

// Finish prints the summary and the final grid.
func (c *ConsoleOut) Finish(w *forest.World) {
	fmt.Fprintln(c.out, "\nFinished:")
	result := map[string]any{
		"Last tick":  w.Ticks(),
		"Total time": time.Since(c.startTime).Round(time.Millisecond),
		"Trees":      w.OccupantCount(),
		"State":      w.State(),
	}
	c.printHashData(result)
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, c.Grid(w))
}

// Grid renders the world one character per cell, one row per line.
func (c *ConsoleOut) Grid(w *forest.World) string {
	size := w.Size()
	var b strings.Builder
	b.Grow(size.W*size.H + size.H)
	cells := w.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			b.WriteString(c.glyph(forest.Kind(cells[y*size.W+x])))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *ConsoleOut) glyph(k forest.Kind) string {
	switch k {
	case forest.SlowGrowing:
		return c.au.Green("T").String()
	case forest.FastGrowing:
		return c.au.BrightGreen("t").String()
	case forest.Burning:
		return c.au.Red("*").String()
	case forest.Burned:
		return c.au.Yellow(".").String()
	default:
		return " "
	}
}

func (c *ConsoleOut) census(w *forest.World) string {
	counts := w.Census()
	kinds := []forest.Kind{forest.SlowGrowing, forest.FastGrowing, forest.Burning, forest.Burned}
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%v=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}

func (c *ConsoleOut) printHashData(d map[string]any) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
