package forest

// State is the engine-wide lifecycle phase.
type State uint8

const (
	// StateSetup accepts plantings only; no ticks run.
	StateSetup State = iota
	// StateRunning ticks on the configured interval and accepts all mutations.
	StateRunning
	// StateEnded is frozen until Reset.
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// State reports the current lifecycle phase.
func (w *World) State() State { return w.state }

// Start moves the engine from Setup to Running. It refuses while no tree has
// been planted.
func (w *World) Start() bool {
	if w.state != StateSetup || w.OccupantCount() == 0 {
		return false
	}
	w.state = StateRunning
	w.interval.Restart()
	return true
}

// End freezes the simulation.
func (w *World) End() bool {
	if w.state == StateEnded {
		return false
	}
	w.state = StateEnded
	return true
}
