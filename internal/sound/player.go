// Package sound plays the wheel's tick and win effects through the system
// speaker and reports the current output level for on-screen feedback.
package sound

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)

	levelRingSize = 4096
	// ~23ms of audio, roughly one and a half frames
	levelWindow = 1024

	// cap on concurrently playing ticks so a fast spin cannot pile up
	maxVoices = 8
)

var ErrUnsupported = errors.New("sound: unsupported file type")

// Player owns the speaker. A Player that failed to initialise, or was never
// initialised, accepts every call and stays silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	tap    *levelTap
	tick   *beep.Buffer
	volume float64
	ready  bool
}

// NewPlayer creates a silent player; call Init to open the speaker.
func NewPlayer() *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer: mixer,
		tap:   newLevelTap(mixer, levelRingSize),
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	p.ready = true
	return nil
}

// LoadTick replaces the synthesized tick with a sample decoded from a wav,
// mp3 or flac file. The whole sample is held in memory.
func (p *Player) LoadTick(path string) error {
	buf, err := decodeFile(path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.tick = buf
	p.mu.Unlock()
	log.Printf("sound: loaded tick sample %s (%d samples)", path, buf.Len())
	return nil
}

// SetVolume sets the effect volume in powers of two, 0 being unchanged.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// PlayTick plays the slice-boundary click.
func (p *Player) PlayTick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	var s beep.Streamer
	if p.tick != nil {
		s = p.tick.Streamer(0, p.tick.Len())
	} else {
		s = tickSound(sampleRate)
	}
	p.add(s)
}

// PlayWin plays the chime for a wheel coming to rest.
func (p *Player) PlayWin() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.add(winSound(sampleRate))
}

// Level is the current output loudness in [0, 1].
func (p *Player) Level() float64 {
	return p.tap.level(levelWindow)
}

// Close silences everything. beep has no way to close the speaker itself.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.ready = false
}

// add must be called with p.mu held.
func (p *Player) add(s beep.Streamer) {
	v := &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(v)
	}
	speaker.Unlock()
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := decode(f, filepath.Ext(path))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// decode picks a decoder by file extension. The returned streamer owns f.
func decode(f *os.File, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}
