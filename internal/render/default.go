package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jelopf/cs-game-project-2024/internal/game"
	"github.com/jelopf/cs-game-project-2024/internal/theme"
	"golang.org/x/term"
)

const (
	defaultCols        = 80
	defaultRows        = 24
	defaultFramePeriod = 16 * time.Millisecond
	gradeFrames        = 30
	barWidth           = 30
	sideCol            = 3
)

// DefaultRenderer draws snapshots as ANSI text. Nothing reaches the
// terminal until the end of the frame.
type DefaultRenderer struct {
	Theme       theme.Theme
	Playfield   game.Playfield
	ScrollSpeed float64 // Used for the length of hold tails
	FramePeriod time.Duration
	Out         io.Writer

	buffer       strings.Builder
	restoreState *term.State
	decorations  []*decoration
	cols, rows   int
	caught       [2]int
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func (r *DefaultRenderer) Init() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	cols, rows, err := term.GetSize(fd)
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	state, err := term.MakeRaw(fd)
	if nil != err {
		return err
	}
	r.restoreState = state
	r.SetSize(cols, rows)

	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out(), "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

// SetSize sets the screen size in cells, falling back to 80x24.
func (r *DefaultRenderer) SetSize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		cols, rows = defaultCols, defaultRows
	}
	r.cols, r.rows = cols, rows
}

func (r *DefaultRenderer) size() (int, int) {
	if r.cols == 0 {
		r.SetSize(0, 0)
	}
	return r.cols, r.rows
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) AddDecoration(col, row int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       col,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

// Decorations are redrawn every frame because Draw clears the screen.
func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames <= 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		nd = append(nd, d)
		d.Frames--
	}
	r.decorations = nd
}

// RenderLoop calls render once per frame period, after waiting out delay,
// until render returns false.
func (r *DefaultRenderer) RenderLoop(
	delay time.Duration,
	render func(now time.Time, delta time.Duration) bool,
) {
	period := r.FramePeriod
	if period <= 0 {
		period = defaultFramePeriod
	}
	time.Sleep(delay)

	cont := true
	last := time.Now()
	for cont {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now, now.Sub(last))
		last = now

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() {
	r.out().Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}

// Column maps a playfield X to a screen column.
func (r *DefaultRenderer) Column(x float64) int {
	cols, _ := r.size()
	return scale(x, r.Playfield.Width, cols)
}

// Row maps a playfield Y to a screen row.
func (r *DefaultRenderer) Row(y float64) int {
	_, rows := r.size()
	return scale(y, r.Playfield.Height, rows)
}

func scale(v, extent float64, cells int) int {
	if extent <= 0 || cells <= 1 {
		return 1
	}
	c := 1 + int(math.Round(v/extent*float64(cells-1)))
	if c < 1 {
		return 1
	}
	if c > cells {
		return cells
	}
	return c
}

func (r *DefaultRenderer) Draw(snap game.Snapshot) {
	cols, rows := r.size()
	r.buffer.WriteString("\033[H\033[2J")

	r.Fill(1, sideCol, fmt.Sprintf("%v  %v  %5.1f/%.1fs",
		snap.Song, bar(snap.Progress, barWidth, "#", "-"), snap.Elapsed, snap.Duration))
	r.Fill(2, sideCol, fmt.Sprintf("Attention  %v  %3.0f  %v",
		bar(snap.Meter/game.MeterMax, barWidth, "█", "░"), snap.Meter, r.Theme.RenderFace(snap.Mood, snap.Beat)))

	r.Fill(4, sideCol, fmt.Sprintf("Score:  %6v", snap.Stats.Score))
	r.Fill(5, sideCol, fmt.Sprintf("Combo:  %6v", snap.Stats.Combo))
	counts := [...]int{snap.Stats.Super, snap.Stats.Good, snap.Stats.Ok, snap.Stats.Bad, snap.Stats.Miss}
	for i, judgement := range game.Judgements {
		r.Fill(7+i, sideCol, fmt.Sprintf("%5v:  %6v", judgement.Name, counts[i]))
	}

	for i := range snap.Tracks {
		point := snap.Points[i]
		row := r.Row(point.Position.Y)
		r.Fill(row, 1, strings.Repeat(r.Theme.RenderLane(), cols))

		for _, note := range snap.Tracks[i] {
			col := r.Column(note.Position.X)
			if note.Type == game.Hold && r.ScrollSpeed > 0 {
				end := r.Column(note.Position.X + note.Duration*r.ScrollSpeed)
				for c := col + 1; c <= end; c++ {
					r.Fill(row, c, r.Theme.RenderHoldTail(note.Type))
				}
			}
			r.Fill(row, col, r.Theme.RenderNote(note.Type))
		}

		pcol := r.Column(point.Position.X)
		r.Fill(row, pcol, r.Theme.RenderCollectionPoint(point.State))

		if point.Caught > r.caught[i] {
			// Track 2 reports above its lane, track 1 below
			grow := row + 1
			if i == 1 {
				grow = row - 1
			}
			r.AddDecoration(pcol, grow, r.Theme.RenderGrade(point.State), gradeFrames)
		}
		r.caught[i] = point.Caught
	}

	switch snap.Outcome {
	case game.Won:
		r.banner(rows, cols, fmt.Sprintf("Song complete!  Score %v", snap.Stats.Score))
	case game.Lost:
		r.banner(rows, cols, "The watcher lost patience")
	}
}

func (r *DefaultRenderer) banner(rows, cols int, message string) {
	col := (cols - len([]rune(message))) / 2
	if col < 1 {
		col = 1
	}
	r.Fill(rows-2, col, "\033[1m"+message+"\033[0m")
}

func bar(fraction float64, width int, full, empty string) string {
	if fraction != fraction || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	n := int(math.Round(fraction * float64(width)))
	return "[" + strings.Repeat(full, n) + strings.Repeat(empty, width-n) + "]"
}
