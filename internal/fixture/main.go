package fixture

import (
	_ "embed"
	"encoding/json"

	"github.com/jelopf/cs-game-project-2024/internal/game"
)

// Level is a small two track level; one of its notes names a third track.
//
//go:embed level.json
var Level []byte

func GetLevel() (*game.Level, error) {
	var level game.Level
	if err := json.Unmarshal(Level, &level); nil != err {
		return nil, err
	}
	return &level, nil
}
