package parser

import "github.com/jelopf/cs-game-project-2024/internal/game"

type Parser interface {
	Parse(file string) (*game.Level, error)
	Decode(data []byte) (*game.Level, error)
}
