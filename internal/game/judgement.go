package game

type Grade uint8

const (
	Super Grade = iota
	Good
	Ok
	Bad
	Miss
)

// Judgement describes one grade: the offset it must stay under and what it is worth.
type Judgement struct {
	Grade  Grade
	Name   string
	Offset float64 // Exclusive upper bound, -1 for the catch-all
	Score  int
	Meter  float64 // Added to the attention meter
}

// Judgements is ordered best first, the first window the offset fits wins.
var Judgements = [...]Judgement{
	{Grade: Super, Name: "Super", Offset: 50, Score: 250},
	{Grade: Good, Name: "Good", Offset: 100, Score: 150},
	{Grade: Ok, Name: "Ok", Offset: 150, Score: 100},
	{Grade: Bad, Name: "Bad", Offset: 200, Score: 50, Meter: 5},
	{Grade: Miss, Name: "Miss", Offset: -1, Score: -10, Meter: 20},
}

func (g Grade) String() string {
	if int(g) < len(Judgements) {
		return Judgements[g].Name
	}
	return "Unknown"
}

// Combo reports whether the grade counts towards the meter relief combo.
func (g Grade) Combo() bool {
	return g == Super || g == Good
}

// Judge classifies an absolute horizontal offset.
func Judge(offset float64) Grade {
	for i := 0; i < len(Judgements)-1; i++ {
		if offset < Judgements[i].Offset {
			return Judgements[i].Grade
		}
	}
	return Miss
}
