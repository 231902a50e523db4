package game

const (
	MeterMax      = 100.0
	hesitantLevel = 75.0
)

// AttentionMeter is clamped to [0, MeterMax] on every change.
type AttentionMeter struct {
	value float64
}

func (m *AttentionMeter) Value() float64 {
	return m.value
}

func (m *AttentionMeter) Increase(amount float64) {
	m.set(m.value + amount)
}

func (m *AttentionMeter) Decrease(amount float64) {
	m.set(m.value - amount)
}

func (m *AttentionMeter) Full() bool {
	return m.value >= MeterMax
}

func (m *AttentionMeter) set(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > MeterMax:
		v = MeterMax
	case v != v: // NaN
		return
	}
	m.value = v
}

// Mood is how the watcher reacts to the meter, used for presentation only.
type Mood uint8

const (
	Neutral Mood = iota
	Hesitant
	Angry
)

func (m Mood) String() string {
	switch m {
	case Hesitant:
		return "Hesitant"
	case Angry:
		return "Angry"
	}
	return "Neutral"
}

func (m *AttentionMeter) Mood() Mood {
	switch {
	case m.value >= MeterMax:
		return Angry
	case m.value > hesitantLevel:
		return Hesitant
	}
	return Neutral
}
