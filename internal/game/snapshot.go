package game

import "math"

type PointView struct {
	Position Position
	State    Grade
	Caught   int
}

// Snapshot is a copy of everything the presentation layer draws.
type Snapshot struct {
	Song     string
	Elapsed  float64
	Duration float64
	Progress float64 // Elapsed over Duration, within [0, 1]
	Beat     float64

	Tracks [2][]Note // Active notes only
	Points [2]PointView

	Meter   float64
	Mood    Mood
	Stats   Stats
	Outcome Outcome
}

func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Song:     s.song,
		Elapsed:  s.elapsed,
		Duration: s.duration,
		Progress: progress(s.elapsed, s.duration),
		Beat:     Beat(s.elapsed, s.bpm),
		Meter:    s.meter.Value(),
		Mood:     s.meter.Mood(),
		Stats:    s.stats,
		Outcome:  s.outcome,
	}
	for i := range s.tracks {
		snap.Tracks[i] = s.tracks[i].Active()
		snap.Points[i] = PointView{
			Position: s.points[i].Position,
			State:    s.points[i].State,
			Caught:   s.points[i].Caught,
		}
	}
	return snap
}

func progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, elapsed/duration))
}
