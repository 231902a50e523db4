package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
)

// DefaultPlayer streams a single song through the speaker.
type DefaultPlayer struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64
}

func NewDefaultPlayer(volume float64) *DefaultPlayer {
	return &DefaultPlayer{level: clamp(volume)}
}

func (p *DefaultPlayer) Play(file string) error {
	f, err := os.Open(file)
	if nil != err {
		return err
	}

	streamer, format, err := decode(f, filepath.Ext(file))
	if nil != err {
		return fmt.Errorf("unable to decode %v: %w", file, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/30)); nil != err {
		streamer.Close()
		return fmt.Errorf("unable to open speaker: %w", err)
	}

	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer}
	exponent, silent := gain(p.level)
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: exponent, Silent: silent}

	log.Printf("Playing %v at %v Hz\n", file, format.SampleRate)
	speaker.Play(p.volume)
	return nil
}

// decode picks the decoder by extension. The reader is closed unless a
// stream is returned.
func decode(r io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	var streamer beep.StreamSeekCloser
	var format beep.Format
	var err error
	switch strings.ToLower(ext) {
	case ".ogg":
		streamer, format, err = vorbis.Decode(r)
	case ".mp3":
		streamer, format, err = mp3.Decode(r)
	default:
		err = fmt.Errorf("unsupported audio format %q", ext)
	}
	if nil != err {
		r.Close()
		return nil, format, err
	}
	return streamer, format, nil
}

func (p *DefaultPlayer) Pause(paused bool) {
	if nil == p.ctrl {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *DefaultPlayer) SetVolume(v float64) {
	p.level = clamp(v)
	if nil == p.volume {
		return
	}
	exponent, silent := gain(p.level)
	speaker.Lock()
	p.volume.Volume = exponent
	p.volume.Silent = silent
	speaker.Unlock()
}

func (p *DefaultPlayer) Volume() float64 {
	return p.level
}

func (p *DefaultPlayer) Position() time.Duration {
	if nil == p.streamer {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position())
}

func (p *DefaultPlayer) Close() {
	if nil == p.streamer {
		return
	}
	speaker.Clear()
	if err := p.streamer.Close(); nil != err {
		log.Println("unable to close audio stream", err)
	}
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
}
