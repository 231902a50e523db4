package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jelopf/cs-game-project-2024/internal/audio"
	"github.com/jelopf/cs-game-project-2024/internal/config"
	"github.com/jelopf/cs-game-project-2024/internal/input"
	"github.com/jelopf/cs-game-project-2024/internal/parser"
	"github.com/jelopf/cs-game-project-2024/internal/render"
	"github.com/jelopf/cs-game-project-2024/internal/score"
	"github.com/jelopf/cs-game-project-2024/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	// The terminal is busy drawing, so logs go to a file
	logFile, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	opts := config.Options()
	p := &Program{
		Parser: &parser.DefaultParser{},
		Store:  &score.DefaultStore{},
		Renderer: &render.DefaultRenderer{
			Theme:       &theme.DefaultTheme{},
			Playfield:   opts.Playfield,
			ScrollSpeed: opts.ScrollSpeed,
			FramePeriod: *config.FramePeriod,
		},
		Player:  audio.NewDefaultPlayer(*config.Volume),
		Source:  &input.DefaultSource{},
		Keys:    config.Keys,
		Options: opts,
	}

	if err := p.Init(*config.Level, *config.Scores); nil != err {
		return err
	}
	defer p.Deinit()

	if *config.ListReplays {
		return p.PrintReplays(os.Stdout)
	}
	if *config.Replay != 0 {
		return p.PrintReplay(*config.Replay, os.Stdout)
	}

	if err := p.Start(); nil != err {
		return err
	}
	p.Renderer.RenderLoop(config.StartDelay(), p.Update)
	p.Stop()

	p.PrintSummary(os.Stdout)
	return nil
}
