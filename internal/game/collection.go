package game

// CollectionPoint judges catch actions against the nearest live note of its track.
type CollectionPoint struct {
	Position Position
	State    Grade    // Last computed grade, Miss until the first catch
	Caught   int      // Number of notes judged here
	Keys     []string // Bound catch keys, judged in this order
	Track    *Track
}

func NewCollectionPoint(position Position, track *Track, keys ...string) *CollectionPoint {
	return &CollectionPoint{
		Position: position,
		State:    Miss,
		Keys:     keys,
		Track:    track,
	}
}

// Catch consumes the nearest active note and grades it.
// It reports false, and changes nothing, when no note is active.
func (cp *CollectionPoint) Catch() (Grade, bool) {
	note, offset := cp.Track.Nearest(cp.Position.X)
	if nil == note {
		return cp.State, false
	}
	note.Active = false
	cp.Caught++
	cp.State = Judge(offset)
	return cp.State, true
}
