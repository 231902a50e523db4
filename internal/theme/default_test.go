package theme

import (
	"strings"
	"testing"

	"github.com/jelopf/cs-game-project-2024/internal/game"
)

func TestRenderGrade(t *testing.T) {
	var th Theme = &DefaultTheme{}
	for _, j := range game.Judgements {
		out := th.RenderGrade(j.Grade)
		if !strings.Contains(out, j.Name) || !strings.HasSuffix(out, "\033[0m") {
			t.Log("grade", j.Name, "rendered as", out)
			t.Fail()
		}
	}
}

func TestGradeColorOutOfRange(t *testing.T) {
	th := &DefaultTheme{}
	if th.GradeColor(game.Grade(42)) != th.GradeColor(game.Miss) {
		t.Error("unknown grades should look like a miss")
	}
}

func TestRenderFace(t *testing.T) {
	th := &DefaultTheme{}
	if th.RenderFace(game.Neutral, 2.0) == th.RenderFace(game.Neutral, 2.5) {
		t.Error("neutral face should bob on the beat")
	}
	if th.RenderFace(game.Angry, 2.0) != th.RenderFace(game.Angry, 2.5) {
		t.Error("angry face should not bob")
	}
}
