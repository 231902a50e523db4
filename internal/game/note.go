package game

import "strings"

type NoteType uint8

const (
	Tap NoteType = iota
	Hold
	Avoid
)

var noteTypeNames = [...]string{"Tap", "Hold", "Avoid"}

func (t NoteType) String() string {
	if int(t) < len(noteTypeNames) {
		return noteTypeNames[t]
	}
	return "Unknown"
}

// ParseNoteType accepts the names used in level files, ignoring case.
func ParseNoteType(s string) (NoteType, bool) {
	for i, name := range noteTypeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return NoteType(i), true
		}
	}
	return 0, false
}

type Position struct {
	X, Y float64
}

type Note struct {
	Type     NoteType
	Position Position // Only X is used for judging
	Duration float64  // Seconds, holds only

	// This is state
	Active bool // Cleared when caught or scrolled past the lower bound
}
