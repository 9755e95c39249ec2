package game

import (
	"time"

	"github.com/iburimskiy/spinning-wheel/internal/wheel"
)

// spinTracker watches consecutive frames and turns them into sound cues.
type spinTracker struct {
	winner    int
	spinning  bool
	spinStart float64
	lastSpin  time.Duration
}

// cue is what a frame change should sound like.
type cue int

const (
	cueNone cue = iota
	cueTick
	cueWin
)

func newSpinTracker(m wheel.Model, f wheel.Frame, now float64) *spinTracker {
	return &spinTracker{
		winner:    f.Winner,
		spinning:  m.IsSpinning(),
		spinStart: now,
	}
}

// observe records the latest frame. A slice passing the marker while the
// wheel turns is a tick; coming to rest without a pending gesture is a win.
func (t *spinTracker) observe(m wheel.Model, f wheel.Frame, now float64) cue {
	c := cueNone
	spinning := m.IsSpinning()

	switch {
	case spinning && !t.spinning:
		t.spinStart = now
	case !spinning && t.spinning:
		t.lastSpin = time.Duration((now - t.spinStart) * float64(time.Second))
		if m.Gesture == nil {
			c = cueWin
		}
	case spinning && f.Winner != t.winner:
		c = cueTick
	}

	t.spinning = spinning
	t.winner = f.Winner
	return c
}

// elapsed is how long the current spin has been running.
func (t *spinTracker) elapsed(now float64) time.Duration {
	if !t.spinning {
		return t.lastSpin
	}
	return time.Duration((now - t.spinStart) * float64(time.Second))
}
