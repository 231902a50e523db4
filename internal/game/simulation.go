package game

// Keys is the set of catch keys newly pressed during one frame.
type Keys map[string]bool

func NewKeys(names ...string) Keys {
	k := make(Keys, len(names))
	for _, name := range names {
		k[name] = true
	}
	return k
}

type Options struct {
	ScrollSpeed float64 // Level units per second
	Playfield   Playfield
	DownKeys    []string // Catch keys for track 1
	UpKeys      []string // Catch keys for track 2

	// Judge a collection point once per frame however many of its keys were pressed
	Collapse bool
}

func DefaultOptions() Options {
	return Options{
		ScrollSpeed: 100,
		Playfield:   DefaultPlayfield(),
		DownKeys:    []string{"s", "down"},
		UpKeys:      []string{"w", "up"},
	}
}

// Simulation owns every piece of gameplay state for one run of a level.
// It is not safe for concurrent use; call Step once per frame.
type Simulation struct {
	song     string
	duration float64
	bpm      float64
	opts     Options

	chart  *Chart
	tracks [2]*Track
	points [2]*CollectionPoint
	meter  AttentionMeter
	stats  Stats

	elapsed float64
	outcome Outcome
}

// New builds a fresh simulation. The level is copied, starting again means calling New.
func New(level *Level, opts Options) *Simulation {
	pf := opts.Playfield
	down := NewTrack(Position{X: pf.Width, Y: pf.laneY(pf.DownLane)})
	up := NewTrack(Position{X: pf.Width, Y: pf.laneY(pf.UpLane)})

	return &Simulation{
		song:     level.Song,
		duration: level.Duration,
		bpm:      level.BPM,
		opts:     opts,
		chart:    NewChart(level.Notes),
		tracks:   [2]*Track{down, up},
		points: [2]*CollectionPoint{
			NewCollectionPoint(Position{X: pf.CollectionX, Y: down.Start.Y}, down, opts.DownKeys...),
			NewCollectionPoint(Position{X: pf.CollectionX, Y: up.Start.Y}, up, opts.UpKeys...),
		},
	}
}

// Step advances the simulation by one frame and returns the outcome after it.
func (s *Simulation) Step(delta float64, pressed Keys) Outcome {
	if s.outcome.Terminal() {
		return s.outcome
	}
	if !(delta > 0) {
		delta = 0
	}

	s.elapsed += delta
	if s.evaluate() {
		return s.outcome
	}

	s.spawn()
	s.judge(pressed)

	for _, track := range s.tracks {
		track.Advance(delta, s.opts.ScrollSpeed, s.opts.Playfield.LowerBound)
		track.Prune()
	}

	// A catch that fills the meter loses on this frame, not the next.
	s.evaluate()
	return s.outcome
}

func (s *Simulation) evaluate() bool {
	s.outcome = Evaluate(s.meter.Value(), s.elapsed, s.duration)
	return s.outcome.Terminal()
}

func (s *Simulation) spawn() {
	for _, event := range s.chart.Due(s.elapsed) {
		if event.Track < 1 || event.Track > len(s.tracks) {
			continue
		}
		s.tracks[event.Track-1].AddNote(event.Type, event.Duration)
	}
}

func (s *Simulation) judge(pressed Keys) {
	if len(pressed) == 0 {
		return
	}
	for _, cp := range s.points {
		if s.opts.Collapse {
			for _, key := range cp.Keys {
				if pressed[key] {
					s.catch(cp)
					break
				}
			}
			continue
		}
		for _, key := range cp.Keys {
			if pressed[key] {
				s.catch(cp)
			}
		}
	}
}

func (s *Simulation) catch(cp *CollectionPoint) {
	grade, ok := cp.Catch()
	if !ok {
		return
	}
	delta := s.stats.Record(grade)
	if delta > 0 {
		s.meter.Increase(delta)
	} else if delta < 0 {
		s.meter.Decrease(-delta)
	}
}

func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

func (s *Simulation) Meter() float64 {
	return s.meter.Value()
}

func (s *Simulation) Stats() Stats {
	return s.stats
}

// Pending is the number of chart events not yet spawned.
func (s *Simulation) Pending() int {
	return s.chart.Pending()
}

// Track returns track 1 or 2.
func (s *Simulation) Track(n int) *Track {
	return s.tracks[n-1]
}

// Point returns the collection point of track 1 or 2.
func (s *Simulation) Point(n int) *CollectionPoint {
	return s.points[n-1]
}
