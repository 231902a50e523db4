package game

import "testing"

func TestAdvanceAndPrune(t *testing.T) {
	track := NewTrack(Position{X: 800, Y: 370})
	first := addAt(track, 40)
	second := addAt(track, 300)
	third := addAt(track, 700)

	track.Advance(0.5, 100, 0)
	if first.Active {
		t.Error("note past the lower bound still active")
	}
	if second.Position.X != 250 || third.Position.X != 650 {
		t.Errorf("unexpected positions %v %v", second.Position.X, third.Position.X)
	}
	if second.Position.Y != 370 {
		t.Errorf("notes only move horizontally, y is %v", second.Position.Y)
	}

	track.Prune()
	if len(track.Notes) != 2 || track.Notes[0] != second || track.Notes[1] != third {
		t.Errorf("prune lost order: %v", track.Notes)
	}
}

func TestAdvanceSkipsInactive(t *testing.T) {
	track := NewTrack(Position{X: 800})
	note := addAt(track, 500)
	note.Active = false
	track.Advance(1, 100, 0)
	if note.Position.X != 500 {
		t.Errorf("inactive note moved to %v", note.Position.X)
	}
}

func TestAddNoteStartsAtSpawn(t *testing.T) {
	track := NewTrack(Position{X: 800, Y: 310})
	note := track.AddNote(Hold, 1.5)
	if note.Position != track.Start || !note.Active || note.Duration != 1.5 || note.Type != Hold {
		t.Errorf("unexpected note %+v", note)
	}
}
