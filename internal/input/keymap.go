package input

import "strings"

type Action uint8

const (
	CatchDown Action = iota // Track 1
	CatchUp                 // Track 2
	Pause
	Quit
	VolumeUp
	VolumeDown
)

// Keymap binds each logical action to one or more key names, in judging order.
type Keymap map[Action][]string

// Triggered reports whether any key bound to a was newly pressed.
func (k Keymap) Triggered(pressed map[string]bool, a Action) bool {
	for _, key := range k[a] {
		if pressed[key] {
			return true
		}
	}
	return false
}

var aliases = map[string]string{
	"arrowup":   "up",
	"arrowdown": "down",
	"escape":    "esc",
	" ":         "space",
	"plus":      "+",
	"minus":     "-",
}

// Normalize turns a configured key name into the form key events are reported in.
func Normalize(name string) string {
	if name == " " {
		return "space"
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}
