package game

import "math"

// Track is one lane. Notes are kept in spawn order and owned by the track.
type Track struct {
	Notes []*Note
	Start Position
}

func NewTrack(start Position) *Track {
	return &Track{Start: start}
}

func (t *Track) AddNote(noteType NoteType, duration float64) *Note {
	note := &Note{
		Type:     noteType,
		Position: t.Start,
		Duration: duration,
		Active:   true,
	}
	t.Notes = append(t.Notes, note)
	return note
}

// Advance scrolls active notes left and deactivates those that pass lowerBound.
func (t *Track) Advance(delta, scrollSpeed, lowerBound float64) {
	for _, note := range t.Notes {
		if !note.Active {
			continue
		}
		note.Position.X -= scrollSpeed * delta
		if note.Position.X < lowerBound {
			note.Active = false
		}
	}
}

// Prune drops inactive notes, keeping the order of the rest.
func (t *Track) Prune() {
	kept := t.Notes[:0]
	for _, note := range t.Notes {
		if note.Active {
			kept = append(kept, note)
		}
	}
	for i := len(kept); i < len(t.Notes); i++ {
		t.Notes[i] = nil
	}
	t.Notes = kept
}

// Nearest returns the active note closest to x and its absolute offset.
// Ties go to the earlier spawned note.
func (t *Track) Nearest(x float64) (*Note, float64) {
	var closest *Note
	distance := math.Inf(1)
	for _, note := range t.Notes {
		if !note.Active {
			continue
		}
		d := math.Abs(x - note.Position.X)
		if d < distance {
			distance = d
			closest = note
		}
	}
	return closest, distance
}

// Active returns copies of the live notes for presentation.
func (t *Track) Active() []Note {
	notes := make([]Note, 0, len(t.Notes))
	for _, note := range t.Notes {
		if note.Active {
			notes = append(notes, *note)
		}
	}
	return notes
}
