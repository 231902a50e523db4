package theme

import (
	"fmt"

	"github.com/jelopf/cs-game-project-2024/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderNote(nt game.NoteType) string {
	return colorize(getNoteColor(nt), noteSyms[nt%game.NoteType(len(noteSyms))])
}

func (t *DefaultTheme) RenderHoldTail(nt game.NoteType) string {
	return colorize(getNoteColor(nt), holdSym)
}

func (t *DefaultTheme) RenderCollectionPoint(state game.Grade) string {
	return colorize(t.GradeColor(state), pointSym)
}

func (t *DefaultTheme) RenderGrade(g game.Grade) string {
	return colorize(t.GradeColor(g), g.String())
}

// RenderFace draws the watcher. The face bobs on the beat unless it is angry.
func (t *DefaultTheme) RenderFace(m game.Mood, beat float64) string {
	face := faces[m%game.Mood(len(faces))]
	if m != game.Angry && beat-float64(int(beat)) < 0.25 {
		face = bobbing[m%game.Mood(len(bobbing))]
	}
	return colorize(moodColors[m%game.Mood(len(moodColors))], face)
}

func (t *DefaultTheme) RenderLane() string {
	return laneSym
}

func (t *DefaultTheme) GradeColor(g game.Grade) Color {
	if int(g) >= len(gradeColors) {
		return gradeColors[game.Miss]
	}
	return gradeColors[g]
}

func colorize(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	holdSym  = "═"
	pointSym = "◎"
	laneSym  = "·"
)

var (
	noteSyms    = [...]string{"⬤", "◆", "⨯"}
	faces       = [...]string{"(•_•)", "(ಠ_ಠ)", "(╬ಠ益ಠ)"}
	bobbing     = [...]string{"(•‿•)", "(ಠ‿ಠ)", "(╬ಠ益ಠ)"}
	gradeColors = [...]Color{
		game.Super: {0, 236, 128}, // green
		game.Good:  {0, 118, 236}, // blue
		game.Ok:    {236, 195, 0}, // yellow
		game.Bad:   {236, 128, 0}, // orange
		game.Miss:  {236, 30, 0},  // red
	}
	moodColors = [...]Color{
		game.Neutral:  {255, 255, 255},
		game.Hesitant: {236, 195, 0},
		game.Angry:    {236, 30, 0},
	}
	noteColors = map[game.NoteType]Color{
		game.Tap:   {236, 30, 0},    // red
		game.Hold:  {106, 0, 236},   // purple
		game.Avoid: {106, 106, 106}, // grey
	}
)

func getNoteColor(nt game.NoteType) Color {
	col, ok := noteColors[nt]
	if !ok {
		return Color{255, 255, 255}
	}
	return col
}
