package input

import (
	"log"
	"time"
	"unicode"

	"github.com/eiannone/keyboard"
)

const (
	// HoldWindow is how long a repeating key counts as down after its last event.
	HoldWindow = 50 * time.Millisecond

	// RepeatDelay covers the pause terminals leave between a key press and
	// its first auto-repeat.
	RepeatDelay = 600 * time.Millisecond
)

// DefaultSource reads key events from the terminal. Terminals only report
// presses and auto-repeat, so a held key is one whose events keep arriving:
// within RepeatDelay of the press, then within HoldWindow of each repeat.
// Two taps of the same key inside RepeatDelay read as one hold.
type DefaultSource struct {
	events <-chan keyboard.KeyEvent
	keys   map[string]*heldKey
	hold   time.Duration
	delay  time.Duration
	closer func() error
}

type heldKey struct {
	last      time.Time
	repeating bool // An event arrived after the initial press
}

func (k *heldKey) window(hold, delay time.Duration) time.Duration {
	if k.repeating {
		return hold
	}
	return delay
}

func (s *DefaultSource) Open() error {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return err
	}
	s.events = events
	s.closer = keyboard.Close
	return nil
}

func (s *DefaultSource) Close() error {
	if nil == s.closer {
		return nil
	}
	return s.closer()
}

// Poll drains pending events and returns the keys currently held down.
func (s *DefaultSource) Poll(now time.Time) map[string]bool {
	if nil == s.keys {
		s.keys = map[string]*heldKey{}
	}
	if s.hold == 0 {
		s.hold = HoldWindow
	}
	if s.delay == 0 {
		s.delay = RepeatDelay
	}

	// Drop keys released before these events arrived, so a fresh press
	// after a release starts with the long window again.
	s.expire(now)

	for drained := false; !drained; {
		select {
		case ev, ok := <-s.events:
			if !ok {
				drained = true
				break
			}
			if nil != ev.Err {
				log.Println("unable to read key", ev.Err)
				continue
			}
			name := KeyName(ev)
			if name == "" {
				continue
			}
			if k, ok := s.keys[name]; ok {
				k.last = now
				k.repeating = true
			} else {
				s.keys[name] = &heldKey{last: now}
			}
		default:
			drained = true
		}
	}

	down := make(map[string]bool, len(s.keys))
	for name := range s.keys {
		down[name] = true
	}
	return down
}

func (s *DefaultSource) expire(now time.Time) {
	for name, k := range s.keys {
		if now.Sub(k.last) >= k.window(s.hold, s.delay) {
			delete(s.keys, name)
		}
	}
}

var keyNames = map[keyboard.Key]string{
	keyboard.KeyArrowUp:    "up",
	keyboard.KeyArrowDown:  "down",
	keyboard.KeyArrowLeft:  "left",
	keyboard.KeyArrowRight: "right",
	keyboard.KeyEsc:        "esc",
	keyboard.KeySpace:      "space",
	keyboard.KeyEnter:      "enter",
	keyboard.KeyCtrlC:      "esc",
}

// KeyName maps a terminal key event to the names used in key bindings.
func KeyName(ev keyboard.KeyEvent) string {
	if ev.Rune == ' ' {
		return "space"
	}
	if ev.Rune != 0 {
		return string(unicode.ToLower(ev.Rune))
	}
	return keyNames[ev.Key]
}
