package theme

import "github.com/jelopf/cs-game-project-2024/internal/game"

type Color struct {
	R, G, B uint8
}

type Theme interface {
	RenderNote(t game.NoteType) string
	RenderHoldTail(t game.NoteType) string
	RenderCollectionPoint(state game.Grade) string
	RenderGrade(g game.Grade) string
	RenderFace(m game.Mood, beat float64) string
	RenderLane() string
	GradeColor(g game.Grade) Color
}
