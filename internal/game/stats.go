package game

const (
	comboLength = 5
	comboRelief = 5.0
)

// Stats are accumulated for the lifetime of one simulation.
type Stats struct {
	Super, Good, Ok, Bad, Miss int
	Score                      int

	// Cumulative count of Super and Good grades, never reset by a poor grade
	Combo int
}

// Record tallies a grade and returns the change it causes to the attention meter.
func (s *Stats) Record(g Grade) float64 {
	j := Judgements[Miss]
	if int(g) < len(Judgements) {
		j = Judgements[g]
	}
	s.Score += j.Score

	switch j.Grade {
	case Super:
		s.Super++
	case Good:
		s.Good++
	case Ok:
		s.Ok++
	case Bad:
		s.Bad++
	case Miss:
		s.Miss++
	}

	delta := j.Meter
	if j.Grade.Combo() {
		s.Combo++
		if s.Combo%comboLength == 0 {
			delta -= comboRelief
		}
	}
	return delta
}

func (s *Stats) Judged() int {
	return s.Super + s.Good + s.Ok + s.Bad + s.Miss
}
