package game

import "sort"

// NoteEvent is a single chart entry, spawned once its Time has elapsed.
type NoteEvent struct {
	Type     NoteType
	Time     float64 // Seconds from song start
	Track    int     // 1 or 2, anything else is dropped
	Duration float64 // Hold length in seconds
}

// Level is the loaded level data. The simulation never mutates it.
type Level struct {
	Song     string
	Duration float64 // Seconds
	BPM      float64
	Notes    []NoteEvent
}

// Chart is the simulation's working copy of the pending note events.
type Chart struct {
	pending []NoteEvent
}

// NewChart copies events and orders them by time, keeping chart order for ties.
func NewChart(events []NoteEvent) *Chart {
	pending := make([]NoteEvent, len(events))
	copy(pending, events)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Time < pending[j].Time
	})
	return &Chart{pending: pending}
}

// Due removes and returns every pending event with Time <= elapsed.
func (c *Chart) Due(elapsed float64) []NoteEvent {
	n := 0
	for n < len(c.pending) && c.pending[n].Time <= elapsed {
		n++
	}
	if n == 0 {
		return nil
	}
	due := c.pending[:n:n]
	c.pending = c.pending[n:]
	return due
}

func (c *Chart) Pending() int {
	return len(c.pending)
}
