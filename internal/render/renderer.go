package render

import (
	"time"

	"github.com/jelopf/cs-game-project-2024/internal/game"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(col, row int, content string, frames int)
	RenderLoop(delay time.Duration, render func(now time.Time, delta time.Duration) bool)
	Fill(row, column int, message string)
	Draw(snap game.Snapshot)
}
