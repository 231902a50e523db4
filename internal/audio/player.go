package audio

import (
	"math"
	"time"
)

// VolumeStep is how much one volume key press changes the volume.
const VolumeStep = 0.1

type Player interface {
	Play(file string) error
	Pause(paused bool)
	SetVolume(v float64)
	Volume() float64
	Position() time.Duration
	Close()
}

// StepVolume moves v by steps of VolumeStep, staying within [0, 1].
func StepVolume(v float64, steps int) float64 {
	v = math.Round((v+float64(steps)*VolumeStep)*10) / 10
	return clamp(v)
}

func clamp(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// gain converts a linear volume into a base 2 exponent for beep's volume effect.
func gain(v float64) (exponent float64, silent bool) {
	v = clamp(v)
	if v == 0 {
		return 0, true
	}
	return math.Log2(v), false
}
