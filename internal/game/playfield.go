package game

// Playfield holds the fixed geometry of the two lanes, in level units.
type Playfield struct {
	Width       float64 // Notes spawn at this X
	Height      float64
	CollectionX float64
	DownLane    float64 // Distance of track 1 from the bottom edge
	UpLane      float64 // Distance of track 2 from the bottom edge
	LowerBound  float64 // Notes left of this are gone
}

func DefaultPlayfield() Playfield {
	return Playfield{
		Width:       800,
		Height:      480,
		CollectionX: 75,
		DownLane:    110,
		UpLane:      170,
		LowerBound:  0,
	}
}

func (p Playfield) laneY(fromBottom float64) float64 {
	return p.Height - fromBottom
}

// Beat is the number of beats played after elapsed seconds at bpm.
func Beat(elapsed, bpm float64) float64 {
	if bpm <= 0 {
		return 0
	}
	return elapsed * bpm / 60
}
