package config

import (
	"fmt"
	"time"

	"github.com/jelopf/cs-game-project-2024/internal/game"
	"github.com/jelopf/cs-game-project-2024/internal/input"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/ini.v1"
)

var (
	app = kingpin.New("eotc", "Catch notes on two tracks before the watcher loses patience.").Version("0.3.0")

	Level        = app.Arg("level", "Level file").Required().ExistingFile()
	File         = app.Flag("config", "INI file with key bindings and playfield").Short('c').String()
	ScrollSpeed  = app.Flag("scroll-speed", "Note speed in playfield units per second").Default("100").Short('s').Float64()
	FramePeriod  = app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	Delay        = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	Volume       = app.Flag("volume", "Music volume between 0 and 1").Default("1.0").Short('v').Float64()
	Scores       = app.Flag("scores", "Replay database").Default("./replays.db").String()
	Replay       = app.Flag("replay", "Re-run a stored replay without rendering").Default("0").Int64()
	ListReplays  = app.Flag("list-replays", "List the stored replays of the level").Short('l').Bool()
	CollapseKeys = app.Flag("collapse-keys", "Judge each track once per frame, however many of its keys are pressed").Bool()
	LogFile      = app.Flag("log", "Log file, the terminal is busy drawing").Default("eotc.log").String()

	Keys      input.Keymap
	Playfield game.Playfield
)

const defaultConfig = `
[Keys]
Down       = s, down
Up         = w, up
Pause      = p, space
Quit       = esc, q
VolumeUp   = +, =
VolumeDown = -

[Playfield]
Width       = 800
Height      = 480
CollectionX = 75
DownLane    = 110
UpLane      = 170
LowerBound  = 0
`

// Parse reads the command line and then the optional INI file layered over the defaults.
func Parse(args []string) error {
	if _, err := app.Parse(args); nil != err {
		return err
	}
	if *Volume < 0 || *Volume > 1 {
		return fmt.Errorf("volume %v is outside [0, 1]", *Volume)
	}
	if !(*ScrollSpeed > 0) {
		return fmt.Errorf("scroll speed must be positive, got %v", *ScrollSpeed)
	}
	return Load(*File)
}

// Load reads bindings and playfield from file, falling back to the built in defaults.
func Load(file string) error {
	options := ini.LoadOptions{
		Insensitive:             true,
		SkipUnrecognizableLines: true,
		AllowShadows:            false,
	}
	sources := []interface{}{[]byte(defaultConfig)}
	if file != "" {
		sources = append(sources, file)
	}
	f, err := ini.LoadSources(options, sources[0], sources[1:]...)
	if nil != err {
		return fmt.Errorf("unable to read config: %w", err)
	}

	keys := f.Section("keys")
	Keys = input.Keymap{
		input.CatchDown:  keyList(keys.Key("down")),
		input.CatchUp:    keyList(keys.Key("up")),
		input.Pause:      keyList(keys.Key("pause")),
		input.Quit:       keyList(keys.Key("quit")),
		input.VolumeUp:   keyList(keys.Key("volumeup")),
		input.VolumeDown: keyList(keys.Key("volumedown")),
	}
	if len(Keys[input.CatchDown]) == 0 || len(Keys[input.CatchUp]) == 0 {
		return fmt.Errorf("both tracks need at least one key")
	}

	pf := f.Section("playfield")
	def := game.DefaultPlayfield()
	Playfield = game.Playfield{
		Width:       pf.Key("width").MustFloat64(def.Width),
		Height:      pf.Key("height").MustFloat64(def.Height),
		CollectionX: pf.Key("collectionx").MustFloat64(def.CollectionX),
		DownLane:    pf.Key("downlane").MustFloat64(def.DownLane),
		UpLane:      pf.Key("uplane").MustFloat64(def.UpLane),
		LowerBound:  pf.Key("lowerbound").MustFloat64(def.LowerBound),
	}
	if Playfield.CollectionX >= Playfield.Width || Playfield.LowerBound >= Playfield.CollectionX {
		return fmt.Errorf("collection point %v must lie between the lower bound %v and the spawn edge %v",
			Playfield.CollectionX, Playfield.LowerBound, Playfield.Width)
	}
	return nil
}

func keyList(k *ini.Key) []string {
	keys := []string{}
	for _, name := range k.Strings(",") {
		if name = input.Normalize(name); name != "" {
			keys = append(keys, name)
		}
	}
	return keys
}

// Options builds the simulation options from the parsed configuration.
func Options() game.Options {
	return game.Options{
		ScrollSpeed: *ScrollSpeed,
		Playfield:   Playfield,
		DownKeys:    Keys[input.CatchDown],
		UpKeys:      Keys[input.CatchUp],
		Collapse:    *CollapseKeys,
	}
}

func StartDelay() time.Duration {
	if *Delay < 0 {
		return 0
	}
	return *Delay
}
