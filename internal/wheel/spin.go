package wheel

import (
	"fmt"
	"math"
)

// Mode selects the interaction model.
type Mode int

const (
	// Timer toggles between spinning and stopped on every press.
	Timer Mode = iota
	// Flick freezes the wheel on press and throws it on release with a
	// momentum proportional to the drag distance.
	Flick
)

func (m Mode) String() string {
	switch m {
	case Timer:
		return "timer"
	case Flick:
		return "flick"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "timer":
		return Timer, nil
	case "flick":
		return Flick, nil
	}
	return 0, fmt.Errorf("wheel: unknown mode %q", s)
}

const (
	// TimerMomentum is the fixed momentum of a timer-mode spin.
	TimerMomentum = 10.0
	// MinElapsed bounds the timer decay away from its singularity at t=0.
	MinElapsed = 1.0 / 60
	// StopThreshold is the flick speed below which the wheel stops.
	StopThreshold = 0.001
	// DragDivisor converts drag distance in pixels into momentum.
	DragDivisor = 5.0
)

// State is either Stopped or Spinning.
type State interface {
	isState()
}

// Stopped holds the frozen rotation in radians.
type Stopped struct {
	Angle float64
}

// Spinning records when the spin began and with what momentum. Angle is the
// live rotation in radians, refreshed on every tick.
type Spinning struct {
	Start    float64
	Momentum float64
	Angle    float64
}

func (Stopped) isState()  {}
func (Spinning) isState() {}

// Gesture is the pending press position of a flick.
type Gesture struct {
	Pos Point
}

// Model is the whole mutable state of a wheel. Transitions never modify
// their argument; they return the next Model.
type Model struct {
	Mode    Mode
	State   State
	Gesture *Gesture
}

// NewModel returns the start-up state. A timer wheel starts spinning from
// time zero; a flick wheel starts at rest.
func NewModel(mode Mode) Model {
	if mode == Timer {
		return Model{Mode: mode, State: Spinning{Start: 0, Momentum: TimerMomentum}}
	}
	return Model{Mode: mode, State: Stopped{}}
}

// IsSpinning reports whether the wheel is moving.
func (m Model) IsSpinning() bool {
	_, ok := m.State.(Spinning)
	return ok
}

// TimerAngle is the timer-mode rotation t seconds after a spin began:
// 10/t, large right after the press and falling towards zero.
func TimerAngle(t float64) float64 {
	if t < MinElapsed {
		t = MinElapsed
	}
	return (1 / t) * TimerMomentum
}

// Speed is the flick-mode per-tick angular step for a spin of the given
// momentum that has been running for elapsed seconds.
func Speed(momentum, elapsed float64) float64 {
	return (momentum - elapsed) / 100
}

// CurrentAngle returns the rotation in radians to draw at time now.
func CurrentAngle(m Model, now float64) float64 {
	switch s := m.State.(type) {
	case Stopped:
		return s.Angle
	case Spinning:
		if m.Mode == Timer {
			return TimerAngle(now - s.Start)
		}
		return s.Angle
	default:
		panic(fmt.Sprintf("wheel: unexpected state %T", m.State))
	}
}

// OnPress handles a pointer press at pos.
func OnPress(m Model, pos Point, now float64) Model {
	switch m.Mode {
	case Timer:
		switch s := m.State.(type) {
		case Spinning:
			m.State = Stopped{Angle: TimerAngle(now - s.Start)}
		case Stopped:
			m.State = Spinning{Start: now, Momentum: TimerMomentum}
		}
	case Flick:
		if m.Gesture != nil {
			return m
		}
		m.State = Stopped{Angle: CurrentAngle(m, now)}
		m.Gesture = &Gesture{Pos: pos}
	}
	return m
}

// OnRelease handles a pointer release at pos. Only a flick wheel with a
// pending gesture reacts.
func OnRelease(m Model, pos Point, now float64) Model {
	if m.Mode != Flick || m.Gesture == nil {
		return m
	}
	momentum := Distance(m.Gesture.Pos, pos) / DragDivisor
	m.Gesture = nil
	m.State = Spinning{
		Start:    now,
		Momentum: momentum,
		Angle:    CurrentAngle(m, now),
	}
	return m
}

// OnTick advances the wheel to time now.
func OnTick(m Model, now float64) Model {
	s, ok := m.State.(Spinning)
	if !ok {
		return m
	}

	if m.Mode == Timer {
		s.Angle = TimerAngle(now - s.Start)
		m.State = s
		return m
	}

	speed := Speed(s.Momentum, now-s.Start)
	if speed < StopThreshold {
		m.State = Stopped{Angle: s.Angle}
		return m
	}
	s.Angle += speed
	m.State = s
	return m
}

// Kick starts a spin without a pointer gesture. A timer wheel restarts its
// decay; a flick wheel is thrown with the given momentum from where it is.
func Kick(m Model, momentum, now float64) Model {
	angle := CurrentAngle(m, now)
	m.Gesture = nil
	if m.Mode == Timer {
		m.State = Spinning{Start: now, Momentum: TimerMomentum, Angle: angle}
		return m
	}
	m.State = Spinning{Start: now, Momentum: momentum, Angle: angle}
	return m
}

// Distance is the euclidean distance between two pointer positions.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
