package game

import "testing"

func emptyLevel(duration float64) *Level {
	return &Level{Song: "test.ogg", Duration: duration, BPM: 120}
}

// catchAt places a note on track 1 at x and presses its first key.
func catchAt(sim *Simulation, x float64) Outcome {
	addAt(sim.Track(1), x)
	return sim.Step(0.25, NewKeys("s"))
}

func TestWin(t *testing.T) {
	sim := New(emptyLevel(10), DefaultOptions())
	for i := 1; i < 20; i++ {
		if o := sim.Step(0.5, nil); o != Running {
			t.Fatalf("frame %d: outcome %v before the song ended", i, o)
		}
	}
	if o := sim.Step(0.5, nil); o != Won {
		t.Fatalf("expected Won at 10s, got %v (elapsed %v)", o, sim.Elapsed())
	}
	if sim.Meter() != 0 {
		t.Errorf("meter %v", sim.Meter())
	}

	sim.Step(0.5, nil)
	if sim.Elapsed() != 10 {
		t.Errorf("elapsed advanced after the run ended: %v", sim.Elapsed())
	}
}

func TestLoss(t *testing.T) {
	sim := New(emptyLevel(60), DefaultOptions())
	const miss, bad = 75 + 500, 75 + 175

	for _, x := range []float64{miss, miss, miss, miss, bad} {
		if o := catchAt(sim, x); o != Running {
			t.Fatalf("run ended early with meter %v", sim.Meter())
		}
	}
	if sim.Meter() != 85 {
		t.Fatalf("meter %v, expected 85", sim.Meter())
	}
	if o := catchAt(sim, miss); o != Lost {
		t.Fatalf("expected Lost, got %v", o)
	}

	stats := sim.Stats()
	if stats.Score != 0 || stats.Miss != 5 || stats.Bad != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if sim.Meter() != MeterMax {
		t.Errorf("meter %v, expected clamp at %v", sim.Meter(), MeterMax)
	}

	elapsed := sim.Elapsed()
	catchAt(sim, 75)
	if sim.Stats() != stats || sim.Elapsed() != elapsed {
		t.Error("simulation kept running after it was lost")
	}
}

func TestSpawnTies(t *testing.T) {
	level := emptyLevel(60)
	level.Notes = []NoteEvent{
		{Type: Tap, Time: 1.0, Track: 1},
		{Type: Hold, Time: 1.0, Track: 2, Duration: 2},
		{Type: Tap, Time: 1.0, Track: 3},
	}
	sim := New(level, DefaultOptions())

	sim.Step(0.5, nil)
	if sim.Pending() != 3 || len(sim.Track(1).Notes)+len(sim.Track(2).Notes) != 0 {
		t.Fatal("notes spawned before their time")
	}

	sim.Step(0.5, nil)
	if sim.Pending() != 0 {
		t.Errorf("pending %d after spawn", sim.Pending())
	}
	down, up := sim.Track(1).Notes, sim.Track(2).Notes
	if len(down) != 1 || len(up) != 1 {
		t.Fatalf("expected one note per track, got %d and %d", len(down), len(up))
	}
	if up[0].Type != Hold || up[0].Duration != 2 {
		t.Errorf("unexpected hold %+v", up[0])
	}
	if down[0].Position.X != 750 {
		t.Errorf("note should spawn at 800 then move 50, is at %v", down[0].Position.X)
	}
	if down[0].Position.Y == up[0].Position.Y {
		t.Error("tracks share a lane")
	}

	sim.Step(0.5, nil)
	if len(sim.Track(1).Notes) != 1 || len(sim.Track(2).Notes) != 1 {
		t.Error("notes spawned twice")
	}
	if len(level.Notes) != 3 {
		t.Error("level notes were consumed")
	}
}

func TestDuplicateBindingsJudgeTwice(t *testing.T) {
	sim := New(emptyLevel(60), DefaultOptions())
	addAt(sim.Track(1), 85)
	addAt(sim.Track(1), 95)

	sim.Step(0.25, NewKeys("s", "down"))
	if s := sim.Stats(); s.Super != 2 {
		t.Errorf("expected both notes caught, got %+v", s)
	}
	if len(sim.Track(1).Notes) != 0 {
		t.Errorf("caught notes not pruned: %d left", len(sim.Track(1).Notes))
	}
}

func TestCollapsedBindingsJudgeOnce(t *testing.T) {
	opts := DefaultOptions()
	opts.Collapse = true
	sim := New(emptyLevel(60), opts)
	addAt(sim.Track(1), 85)
	far := addAt(sim.Track(1), 95)

	sim.Step(0.25, NewKeys("s", "down"))
	if s := sim.Stats(); s.Super != 1 || s.Judged() != 1 {
		t.Errorf("expected one catch, got %+v", s)
	}
	if !far.Active {
		t.Error("second note consumed")
	}
}

func TestKeysOnlyJudgeTheirTrack(t *testing.T) {
	sim := New(emptyLevel(60), DefaultOptions())
	down := addAt(sim.Track(1), 75)
	up := addAt(sim.Track(2), 75)

	sim.Step(0.25, NewKeys("up"))
	if !down.Active || up.Active {
		t.Error("up key judged the wrong track")
	}
	if sim.Point(2).State != Super || sim.Point(1).State != Miss {
		t.Errorf("points %v %v", sim.Point(1).State, sim.Point(2).State)
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	sim := New(emptyLevel(60), DefaultOptions())
	addAt(sim.Track(1), 75)
	sim.Step(0.25, NewKeys("x", "space"))
	if stats := sim.Stats(); stats.Judged() != 0 {
		t.Error("unbound key judged a note")
	}
}

func TestComboLowersMeter(t *testing.T) {
	sim := New(emptyLevel(60), DefaultOptions())
	catchAt(sim, 75+500)
	for i := 0; i < 5; i++ {
		catchAt(sim, 75)
	}
	if sim.Meter() != 15 {
		t.Errorf("meter %v, expected 20 - 5", sim.Meter())
	}
}

func TestFreezeOnEnd(t *testing.T) {
	level := emptyLevel(1)
	level.Notes = []NoteEvent{{Type: Tap, Time: 0, Track: 1}}
	sim := New(level, DefaultOptions())

	sim.Step(0.5, nil)
	if o := sim.Step(0.5, NewKeys("s")); o != Won {
		t.Fatalf("expected Won, got %v", o)
	}
	notes := sim.Track(1).Notes
	if len(notes) != 1 || notes[0].Position.X != 750 || !notes[0].Active {
		t.Errorf("note not frozen where it was: %+v", notes)
	}
	if stats := sim.Stats(); stats.Judged() != 0 {
		t.Error("judged on the final frame")
	}
}

func TestNegativeDelta(t *testing.T) {
	sim := New(emptyLevel(10), DefaultOptions())
	sim.Step(-1, nil)
	if sim.Elapsed() != 0 {
		t.Errorf("elapsed went to %v", sim.Elapsed())
	}
}

var evaluateTests = []struct {
	meter, elapsed, duration float64
	expected                 Outcome
}{
	{0, 0, 10, Running},
	{99, 9.9, 10, Running},
	{100, 9.9, 10, Lost},
	{99, 10, 10, Won},
	{100, 10, 10, Lost},
}

func TestEvaluate(t *testing.T) {
	for _, test := range evaluateTests {
		if o := Evaluate(test.meter, test.elapsed, test.duration); o != test.expected {
			t.Errorf("Evaluate(%v, %v, %v) = %v, expected %v",
				test.meter, test.elapsed, test.duration, o, test.expected)
		}
	}
}

func TestSnapshot(t *testing.T) {
	level := emptyLevel(10)
	level.Notes = []NoteEvent{{Type: Avoid, Time: 0, Track: 2}}
	sim := New(level, DefaultOptions())
	sim.Step(1.5, nil)

	snap := sim.Snapshot()
	if snap.Beat != 3 || snap.Progress != 0.15 || snap.Song != "test.ogg" {
		t.Errorf("unexpected clock %+v", snap)
	}
	if len(snap.Tracks[1]) != 1 || snap.Tracks[1][0].Type != Avoid {
		t.Fatalf("unexpected tracks %+v", snap.Tracks)
	}

	snap.Tracks[1][0].Position.X = -1
	if sim.Track(2).Notes[0].Position.X == -1 {
		t.Error("snapshot aliases simulation notes")
	}
}

func TestReplayDeterministic(t *testing.T) {
	level := emptyLevel(5)
	for i := 0; i < 8; i++ {
		level.Notes = append(level.Notes, NoteEvent{Type: Tap, Time: float64(i) * 0.5, Track: 1 + i%2})
	}
	frames := []Frame{}
	for i := 0; i < 40; i++ {
		f := Frame{Delta: 0.125}
		switch i % 7 {
		case 3:
			f.Keys = []string{"s"}
		case 5:
			f.Keys = []string{"w", "up"}
		}
		frames = append(frames, f)
	}

	first := Replay(level, DefaultOptions(), frames)
	second := Replay(level, DefaultOptions(), frames)
	if first.Stats() != second.Stats() || first.Meter() != second.Meter() || first.Outcome() != second.Outcome() {
		t.Errorf("replays diverged: %+v / %+v", first.Stats(), second.Stats())
	}
	// Every catch is far from the point, the fifth miss ends the run
	if first.Outcome() != Lost || first.Stats().Miss != 5 {
		t.Errorf("expected Lost after five misses, got %v %+v", first.Outcome(), first.Stats())
	}
	if len(level.Notes) != 8 {
		t.Error("replay consumed the level")
	}
}
