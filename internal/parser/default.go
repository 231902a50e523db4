package parser

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/jelopf/cs-game-project-2024/internal/game"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var (
	ErrInvalidJSON = errors.New("level is not valid json")
	ErrNoDuration  = errors.New("level duration must be positive")
	ErrNotFinite   = errors.New("level numbers must be finite")
)

// DefaultParser reads JSON levels of the form
//
//	{"Song": "song.ogg", "Duration": 60, "BPM": 120,
//	 "Notes": [{"Type": 0, "Time": 1.5, "Track": 1}]}
//
// Keys are matched without regard to case. Type is either the numeric value
// (0 Tap, 1 Hold, 2 Avoid) or its name.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Level, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read level: %w", err)
	}
	level, err := p.Decode(data)
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return level, nil
}

func (p *DefaultParser) Decode(data []byte) (*game.Level, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)

	level := &game.Level{
		Song:     field(root, "song").String(),
		Duration: field(root, "duration").Float(),
		BPM:      field(root, "bpm").Float(),
	}
	if !(level.Duration > 0) {
		return nil, ErrNoDuration
	}

	notes := field(root, "notes")
	if !notes.IsArray() {
		if notes.Exists() {
			return nil, fmt.Errorf("notes must be an array, got %v", notes.Type)
		}
		return level, nil
	}

	for i, n := range notes.Array() {
		noteType, ok := p.noteType(field(n, "type"))
		if !ok {
			log.Printf("skipping note %d: unknown type %q\n", i, field(n, "type").Raw)
			continue
		}
		level.Notes = append(level.Notes, game.NoteEvent{
			Type:     noteType,
			Time:     field(n, "time").Float(),
			Track:    int(field(n, "track").Int()),
			Duration: field(n, "duration").Float(),
		})
	}

	sort.SliceStable(level.Notes, func(i, j int) bool {
		return level.Notes[i].Time < level.Notes[j].Time
	})

	return level, nil
}

func (p *DefaultParser) noteType(r gjson.Result) (game.NoteType, bool) {
	switch r.Type {
	case gjson.Null:
		return game.Tap, true
	case gjson.Number:
		t := r.Int()
		if t < 0 || t > int64(game.Avoid) {
			return 0, false
		}
		return game.NoteType(t), true
	case gjson.String:
		return game.ParseNoteType(r.Str)
	}
	return 0, false
}

// field looks a key up ignoring case, as the level files are written by hand.
func field(r gjson.Result, key string) gjson.Result {
	if v := r.Get(key); v.Exists() {
		return v
	}
	var found gjson.Result
	r.ForEach(func(k, v gjson.Result) bool {
		if strings.EqualFold(k.Str, key) {
			found = v
			return false
		}
		return true
	})
	return found
}

// Encode writes a level in the format Decode reads.
func Encode(level *game.Level) ([]byte, error) {
	if !finite(level.Duration, level.BPM) {
		return nil, ErrNotFinite
	}
	for _, n := range level.Notes {
		if !finite(n.Time, n.Duration) {
			return nil, ErrNotFinite
		}
	}

	data := []byte(`{}`)
	var err error
	set := func(path string, value interface{}) {
		if nil != err {
			return
		}
		data, err = sjson.SetBytes(data, path, value)
	}

	set("Song", level.Song)
	set("Duration", level.Duration)
	set("BPM", level.BPM)
	set("Notes", []interface{}{})
	for i, n := range level.Notes {
		base := fmt.Sprintf("Notes.%d.", i)
		set(base+"Type", n.Type.String())
		set(base+"Time", n.Time)
		set(base+"Track", n.Track)
		if n.Duration != 0 {
			set(base+"Duration", n.Duration)
		}
	}
	if nil != err {
		return nil, fmt.Errorf("unable to encode level: %w", err)
	}
	return data, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
