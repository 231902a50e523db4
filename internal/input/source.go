package input

import "time"

// Source reports which keys are held down at a point in time.
type Source interface {
	Open() error
	Close() error
	Poll(now time.Time) map[string]bool
}
