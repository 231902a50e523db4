package game

type Outcome uint8

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	}
	return "Running"
}

func (o Outcome) Terminal() bool {
	return o != Running
}

// Evaluate decides the outcome from the meter and the song clock.
// A full meter always loses, including on the frame the song ends.
func Evaluate(meter, elapsed, duration float64) Outcome {
	switch {
	case meter >= MeterMax:
		return Lost
	case elapsed >= duration:
		return Won
	}
	return Running
}
