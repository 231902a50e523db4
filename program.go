package main

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"time"

	"github.com/jelopf/cs-game-project-2024/internal/audio"
	"github.com/jelopf/cs-game-project-2024/internal/game"
	"github.com/jelopf/cs-game-project-2024/internal/input"
	"github.com/jelopf/cs-game-project-2024/internal/parser"
	"github.com/jelopf/cs-game-project-2024/internal/render"
	"github.com/jelopf/cs-game-project-2024/internal/score"
)

// Program ties one run of a level to the terminal, the speaker and the replay store.
type Program struct {
	Parser   parser.Parser
	Store    score.Store
	Renderer render.Renderer
	Player   audio.Player
	Source   input.Source
	Keys     input.Keymap
	Options  game.Options

	levelFile string
	level     *game.Level
	sim       *game.Simulation
	edges     input.EdgeDetector

	frames     []game.Frame
	catchKeys  map[string]bool
	storeReady bool
	started    bool
	playing    bool
	drifting   bool
	paused     bool
	savedID    int64
}

// maxDrift is how far the music may wander from the simulation clock before it is logged.
const maxDrift = 100 * time.Millisecond

// Init reads the level and opens the replay store. A store that cannot be
// opened only disables replays.
func (p *Program) Init(levelFile, scores string) error {
	level, err := p.Parser.Parse(levelFile)
	if nil != err {
		return err
	}
	p.levelFile = levelFile
	p.level = level

	if err := p.Store.Init(scores); nil != err {
		log.Println("replays disabled:", err)
	} else {
		p.storeReady = true
	}

	p.catchKeys = map[string]bool{}
	for _, key := range p.Options.DownKeys {
		p.catchKeys[key] = true
	}
	for _, key := range p.Options.UpKeys {
		p.catchKeys[key] = true
	}
	p.Reset()
	return nil
}

// Reset starts the level again from the beginning.
func (p *Program) Reset() {
	p.sim = game.New(p.level, p.Options)
	p.frames = []game.Frame{}
	p.edges = input.EdgeDetector{}
	p.started = false
	p.playing = false
	p.drifting = false
	p.paused = false
	p.savedID = 0
}

func (p *Program) Deinit() {
	if p.storeReady {
		p.Store.Deinit()
	}
}

// Start takes over the terminal and keyboard.
func (p *Program) Start() error {
	if err := p.Source.Open(); nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	if err := p.Renderer.Init(); nil != err {
		p.Source.Close()
		return err
	}
	return nil
}

func (p *Program) Stop() {
	p.Player.Close()
	if err := p.Renderer.Deinit(); nil != err {
		log.Println("unable to restore terminal", err)
	}
	if err := p.Source.Close(); nil != err {
		log.Println("unable to close keyboard", err)
	}
}

func (p *Program) startMusic() {
	if p.level.Song == "" {
		return
	}
	song := filepath.Join(filepath.Dir(p.levelFile), p.level.Song)
	if err := p.Player.Play(song); nil != err {
		log.Println("playing without music:", err)
		return
	}
	p.playing = true
}

// checkDrift compares the song position with the simulation clock. Both
// stop while paused, so only running frames are compared.
func (p *Program) checkDrift() {
	if !p.playing || p.paused || p.sim.Outcome().Terminal() {
		return
	}
	elapsed := time.Duration(p.sim.Elapsed() * float64(time.Second))
	drift := p.Player.Position() - elapsed
	if drift < 0 {
		drift = -drift
	}
	if drift > maxDrift {
		if !p.drifting {
			log.Printf("music is %v away from the clock at %v\n", drift, elapsed)
		}
		p.drifting = true
		return
	}
	p.drifting = false
}

// Update runs one frame and reports whether the loop should continue.
func (p *Program) Update(now time.Time, delta time.Duration) bool {
	if !p.started {
		p.started = true
		delta = 0
		p.startMusic()
	}

	pressed := p.edges.Update(p.Source.Poll(now))

	if p.Keys.Triggered(pressed, input.Quit) {
		p.save()
		return false
	}
	if p.sim.Outcome().Terminal() {
		p.Renderer.Draw(p.sim.Snapshot())
		p.Renderer.Fill(3, 3, "Press any key")
		return len(pressed) == 0
	}
	if p.Keys.Triggered(pressed, input.VolumeUp) {
		p.Player.SetVolume(audio.StepVolume(p.Player.Volume(), 1))
	}
	if p.Keys.Triggered(pressed, input.VolumeDown) {
		p.Player.SetVolume(audio.StepVolume(p.Player.Volume(), -1))
	}
	if p.Keys.Triggered(pressed, input.Pause) {
		p.paused = !p.paused
		p.Player.Pause(p.paused)
	}

	snap := p.step(delta, pressed)
	p.checkDrift()
	p.Renderer.Draw(snap)
	if p.paused {
		p.Renderer.Fill(3, 3, "\033[1mPaused\033[0m")
	}
	return true
}

// step advances the simulation unless paused and records the frame for replays.
func (p *Program) step(delta time.Duration, pressed map[string]bool) game.Snapshot {
	if p.paused {
		return p.sim.Snapshot()
	}

	frame := game.Frame{Delta: delta.Seconds()}
	for key := range pressed {
		if p.catchKeys[key] {
			frame.Keys = append(frame.Keys, key)
		}
	}
	sort.Strings(frame.Keys)
	p.frames = append(p.frames, frame)

	if p.sim.Step(frame.Delta, frame.Pressed()).Terminal() {
		log.Printf("%v after %.2fs with score %v\n", p.sim.Outcome(), p.sim.Elapsed(), p.sim.Stats().Score)
		p.Player.Pause(true)
		p.save()
	}
	return p.sim.Snapshot()
}

func (p *Program) save() {
	if !p.storeReady || p.savedID != 0 || len(p.frames) == 0 {
		return
	}
	id, err := p.Store.Save(p.level, p.Options, p.frames)
	if nil != err {
		log.Println("unable to save replay", err)
		return
	}
	p.savedID = id
	log.Println("saved replay", id)
}

// PrintReplay plays a stored replay back against the level without rendering.
func (p *Program) PrintReplay(id int64, w io.Writer) error {
	if !p.storeReady {
		return fmt.Errorf("replay store is unavailable")
	}
	replay, err := p.Store.Load(id)
	if nil != err {
		return err
	}
	result, err := score.Score(p.level, replay)
	if nil != err {
		return err
	}
	printResult(w, replay.Song, result.Outcome, result.Elapsed, result.Meter, result.Stats)
	return nil
}

// PrintReplays lists the replays stored for the level with their results.
func (p *Program) PrintReplays(w io.Writer) error {
	if !p.storeReady {
		return fmt.Errorf("replay store is unavailable")
	}
	replays, err := p.Store.List(p.level)
	if nil != err {
		return err
	}
	if len(replays) == 0 {
		fmt.Fprintf(w, "No replays of %v\n", p.level.Song)
		return nil
	}
	for i := range replays {
		result, err := score.Score(p.level, &replays[i])
		if nil != err {
			log.Println("skipping replay", replays[i].ID, err)
			continue
		}
		fmt.Fprintf(w, "%6v  %-7v %6v  %6.2fs\n", replays[i].ID, result.Outcome, result.Stats.Score, result.Elapsed)
	}
	return nil
}

// PrintSummary describes the run that just ended.
func (p *Program) PrintSummary(w io.Writer) {
	printResult(w, p.level.Song, p.sim.Outcome(), p.sim.Elapsed(), p.sim.Meter(), p.sim.Stats())
	if p.savedID != 0 {
		fmt.Fprintf(w, "Replay:  %6v\n", p.savedID)
	}
}

func printResult(w io.Writer, song string, outcome game.Outcome, elapsed, meter float64, stats game.Stats) {
	fmt.Fprintf(w, "%v: %v after %.2fs\n", song, outcome, elapsed)
	fmt.Fprintf(w, "  Score:  %6v\n", stats.Score)
	fmt.Fprintf(w, "  Meter:  %6.0f\n", meter)
	counts := [...]int{stats.Super, stats.Good, stats.Ok, stats.Bad, stats.Miss}
	for i, judgement := range game.Judgements {
		fmt.Fprintf(w, "%7v:  %6v\n", judgement.Name, counts[i])
	}
}
