// Package game hosts the wheel in an ebiten window: it turns mouse and
// keyboard input into wheel transitions and draws the rendered frame.
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spinning-wheel/internal/config"
	"github.com/iburimskiy/spinning-wheel/internal/sound"
	"github.com/iburimskiy/spinning-wheel/internal/wheel"
)

// Sounds is the audio feedback the game needs.
type Sounds interface {
	PlayTick()
	PlayWin()
	Level() float64
}

type Game struct {
	cfg    *config.Config
	layout *wheel.Layout
	model  wheel.Model
	frame  wheel.Frame
	sounds Sounds

	clock   func() float64
	tracker *spinTracker

	// true while a press that started on the wheel is held
	wheelPressed bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	labels  map[string]*ebiten.Image
	lastErr error
}

// New builds a game from cfg. The slices file, when configured, must parse;
// otherwise the default wheel is used.
func New(cfg *config.Config, sounds Sounds) (*Game, error) {
	slices := wheel.DefaultSlices()
	if cfg.SlicesFile != "" {
		s, err := wheel.LoadSlices(cfg.SlicesFile)
		if err != nil {
			return nil, fmt.Errorf("load slices: %w", err)
		}
		slices = s
	}

	layout, err := wheel.NewLayout(slices, cfg.Distribution())
	if err != nil {
		return nil, err
	}
	if sounds == nil {
		sounds = sound.NewPlayer()
	}

	start := time.Now()
	g := &Game{
		cfg:     cfg,
		layout:  layout,
		model:   wheel.NewModel(cfg.Mode),
		sounds:  sounds,
		clock:   func() float64 { return time.Since(start).Seconds() },
		prevKey: map[ebiten.Key]bool{},
		labels:  map[string]*ebiten.Image{},
	}
	now := g.clock()
	g.frame = wheel.Render(g.layout, g.model, now, cfg.Radius)
	g.tracker = newSpinTracker(g.model, g.frame, now)

	log.Printf("wheel: %d slices, %s mode, %s layout", layout.Len(), cfg.Mode, layout.Distribution())
	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	now := g.clock()
	mouseX, mouseY := ebiten.CursorPosition()
	pos := wheel.Point{X: float64(mouseX), Y: float64(mouseY)}

	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.buttonHovered {
			g.buttonPressed = true
		} else {
			g.wheelPressed = true
			g.model = wheel.OnPress(g.model, pos, now)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openSlicesDialog(); err != nil {
				g.lastErr = err
			}
		}
		if g.wheelPressed {
			g.model = wheel.OnRelease(g.model, pos, now)
		}
		g.buttonPressed = false
		g.wheelPressed = false
	}

	if justPressed(ebiten.KeySpace) && !g.wheelPressed {
		g.model = wheel.Kick(g.model, config.KickMomentum, now)
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.model = wheel.OnTick(g.model, now)
	g.frame = wheel.Render(g.layout, g.model, now, g.cfg.Radius)

	switch g.tracker.observe(g.model, g.frame, now) {
	case cueTick:
		g.sounds.PlayTick()
	case cueWin:
		g.sounds.PlayWin()
		log.Printf("wheel: stopped on %q after %s", g.layout.Slice(g.frame.Winner).Label, formatDuration(g.tracker.lastSpin))
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) openSlicesDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Wheel"),
		zenity.FileFilters{{
			Name:     "Wheel slices",
			Patterns: []string{"*.txt", "*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadSlices(filename)
}

func (g *Game) loadSlices(path string) error {
	slices, err := wheel.LoadSlices(path)
	if err != nil {
		return err
	}
	layout, err := wheel.NewLayout(slices, g.cfg.Distribution())
	if err != nil {
		return err
	}

	now := g.clock()
	g.layout = layout
	g.model = wheel.NewModel(g.cfg.Mode)
	g.frame = wheel.Render(g.layout, g.model, now, g.cfg.Radius)
	g.tracker = newSpinTracker(g.model, g.frame, now)
	g.lastErr = nil

	log.Printf("wheel: loaded %d slices from %s", layout.Len(), path)
	return nil
}
