package game

import "testing"

func TestChartDueOrder(t *testing.T) {
	events := []NoteEvent{
		{Type: Tap, Time: 2.0, Track: 1},
		{Type: Hold, Time: 1.0, Track: 2},
		{Type: Avoid, Time: 1.0, Track: 1},
		{Type: Tap, Time: 0.5, Track: 2},
	}
	chart := NewChart(events)

	if due := chart.Due(0.25); len(due) != 0 {
		t.Fatalf("nothing is due yet, got %v", due)
	}

	due := chart.Due(1.0)
	if len(due) != 3 {
		t.Fatalf("expected 3 due events, got %v", due)
	}
	// Equal times keep chart order
	if due[0].Time != 0.5 || due[1].Type != Hold || due[2].Type != Avoid {
		t.Errorf("unexpected order %v", due)
	}
	if chart.Pending() != 1 {
		t.Errorf("pending %d, expected 1", chart.Pending())
	}
	if again := chart.Due(1.0); len(again) != 0 {
		t.Errorf("events returned twice: %v", again)
	}

	if events[0].Time != 2.0 || events[1].Type != Hold {
		t.Error("caller's events were reordered")
	}
}

func TestChartDueDoesNotAlias(t *testing.T) {
	chart := NewChart([]NoteEvent{{Time: 1}, {Time: 2}})
	due := chart.Due(1)
	_ = append(due, NoteEvent{Time: 99})
	if next := chart.Due(2); len(next) != 1 || next[0].Time != 2 {
		t.Errorf("pending events were overwritten: %v", next)
	}
}
