package audio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestStepVolume(t *testing.T) {
	tests := []struct {
		from     float64
		steps    int
		expected float64
	}{
		{1, 1, 1},
		{1, -1, 0.9},
		{0.9, -9, 0},
		{0, -1, 0},
		{0.5, 3, 0.8},
		{0.25, 0, 0.3},
	}
	for _, test := range tests {
		if v := StepVolume(test.from, test.steps); math.Abs(v-test.expected) > 1e-9 {
			t.Errorf("StepVolume(%v, %d) = %v, expected %v", test.from, test.steps, v, test.expected)
		}
	}
}

func TestGain(t *testing.T) {
	if e, silent := gain(1); e != 0 || silent {
		t.Errorf("full volume: %v %v", e, silent)
	}
	if e, silent := gain(0.5); e != -1 || silent {
		t.Errorf("half volume: %v %v", e, silent)
	}
	if _, silent := gain(0); !silent {
		t.Error("zero volume should be silent")
	}
	if e, _ := gain(4); e != 0 {
		t.Errorf("volume above 1 not clamped: %v", e)
	}
}

func TestPlayerWithoutSong(t *testing.T) {
	p := NewDefaultPlayer(2)
	if p.Volume() != 1 {
		t.Errorf("volume %v", p.Volume())
	}
	p.SetVolume(StepVolume(p.Volume(), -2))
	if math.Abs(p.Volume()-0.8) > 1e-9 {
		t.Errorf("volume %v", p.Volume())
	}
	if p.Position() != 0 {
		t.Error("position without a song")
	}
	p.Pause(true)
	p.Close()

	if err := p.Play(filepath.Join(t.TempDir(), "missing.ogg")); nil == err {
		t.Error("played a missing file")
	}
	flac := filepath.Join(t.TempDir(), "song.flac")
	if err := os.WriteFile(flac, []byte("fLaC"), 0o644); nil != err {
		t.Fatal(err)
	}
	if err := p.Play(flac); nil == err {
		t.Error("played an unsupported file")
	}
}

type closeRecorder struct {
	*bytes.Reader
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestDecodeClosesOnError(t *testing.T) {
	for _, ext := range []string{".ogg", ".MP3", ".flac"} {
		r := &closeRecorder{Reader: bytes.NewReader([]byte("not audio at all"))}
		if _, _, err := decode(r, ext); nil == err {
			t.Errorf("%v: decoded garbage", ext)
		}
		if r.closed != 1 {
			t.Errorf("%v: reader closed %d times", ext, r.closed)
		}
	}
}
