package view

import (
	"bytes"
	"strings"
	"testing"

	"mini-forest/internal/sims/forest"
)

func TestGridPlain(t *testing.T) {
	w := forest.New(3)
	w.MutatePlant(forest.Position{X: 0, Y: 0}, forest.SlowGrowing)
	w.MutatePlant(forest.Position{X: 2, Y: 1}, forest.FastGrowing)

	c := NewConsoleOut(&bytes.Buffer{}, false, 0)
	want := "T  \n  t\n   \n"
	if got := c.Grid(w); got != want {
		t.Fatalf("unexpected grid:\n%q\nwant\n%q", got, want)
	}
}

func TestRefreshEvery(t *testing.T) {
	var buf bytes.Buffer
	w := forest.New(4)
	w.MutatePlant(forest.Position{X: 1, Y: 1}, forest.SlowGrowing)
	c := NewConsoleOut(&buf, false, 2)

	c.Refresh(w)
	if !strings.Contains(buf.String(), "Tick 0: slow=1 fast=0 burning=0 burned=0") {
		t.Fatalf("expected census line, got %q", buf.String())
	}

	buf.Reset()
	w.Start()
	w.Step()
	c.Refresh(w)
	if buf.Len() != 0 {
		t.Fatalf("expected no output on odd tick, got %q", buf.String())
	}
}

func TestRegisterAndFinish(t *testing.T) {
	var buf bytes.Buffer
	w := forest.New(2)
	c := NewConsoleOut(&buf, false, 0)

	c.Register(w)
	c.Start()
	c.Finish(w)

	out := buf.String()
	for _, want := range []string{"Dimension: 2 x 2", "Growth", "Fire", "Finished:", "Trees: 0", "State: setup"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
