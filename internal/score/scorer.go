package score

import (
	"errors"
	"fmt"

	"github.com/jelopf/cs-game-project-2024/internal/game"
)

var ErrLevelMismatch = errors.New("replay was recorded on a different level")

// Store keeps the recorded input of finished runs so they can be played back.
type Store interface {
	Init(file string) error
	Deinit()

	// Save the frames of a run of this level played with opts
	Save(level *game.Level, opts game.Options, frames []game.Frame) (int64, error)

	// Load a single replay by id
	Load(id int64) (*Replay, error)

	// List every replay recorded against this level
	List(level *game.Level) ([]Replay, error)
}

type Replay struct {
	ID      int64
	Sum     string
	Song    string
	Options game.Options // As recorded, playback ignores the current settings
	Frames  []game.Frame
}

// Result is what a replay amounts to once simulated.
type Result struct {
	Stats   game.Stats
	Meter   float64
	Outcome game.Outcome
	Elapsed float64
}

// Score plays the replay back against level with the options it was recorded with.
func Score(level *game.Level, replay *Replay) (Result, error) {
	sum, err := HashLevel(level)
	if nil != err {
		return Result{}, err
	}
	if sum != replay.Sum {
		return Result{}, fmt.Errorf("%w: replay %d", ErrLevelMismatch, replay.ID)
	}
	sim := game.Replay(level, replay.Options, replay.Frames)
	return Result{
		Stats:   sim.Stats(),
		Meter:   sim.Meter(),
		Outcome: sim.Outcome(),
		Elapsed: sim.Elapsed(),
	}, nil
}
