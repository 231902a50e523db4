package game

// Frame is the input of one Step, kept so a run can be played back.
type Frame struct {
	Delta float64  `json:"d"`
	Keys  []string `json:"k,omitempty"`
}

func (f Frame) Pressed() Keys {
	if len(f.Keys) == 0 {
		return nil
	}
	return NewKeys(f.Keys...)
}

// Replay runs recorded frames against a fresh simulation of level.
// Frames after the run ends are ignored.
func Replay(level *Level, opts Options, frames []Frame) *Simulation {
	sim := New(level, opts)
	for _, frame := range frames {
		if sim.Step(frame.Delta, frame.Pressed()).Terminal() {
			break
		}
	}
	return sim
}
