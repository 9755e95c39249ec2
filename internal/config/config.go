package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iburimskiy/spinning-wheel/internal/wheel"
)

const (
	WindowWidth  = 720
	WindowHeight = 720

	DefaultRadius = 300.0
	DefaultTitle  = "Wheel - click and flick to spin, Space: spin, Esc/Q: Quit"

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 12
	ButtonY      = 28

	// Momentum of a Space-key spin in flick mode
	KickMomentum = 40.0

	// Debug font cell, used to size cached label images
	LabelCharWidth = 6
	LabelHeight    = 16
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Mode          wheel.Mode
	SlicesFile    string
	Radius        float64
	SoundEnabled  bool
	Volume        float64
	TickSoundFile string
	Title         string
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Mode:         wheel.Flick,
		Radius:       DefaultRadius,
		SoundEnabled: true,
		Title:        DefaultTitle,
	}
}

// Load reads a .env file if there is one and then the WHEEL_* environment
// variables. Invalid values are logged and replaced with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() *Config {
	cfg := Default()

	if v := os.Getenv("WHEEL_MODE"); v != "" {
		mode, err := wheel.ParseMode(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			log.Printf("config: %v, using %s", err, cfg.Mode)
		} else {
			cfg.Mode = mode
		}
	}

	if v := os.Getenv("WHEEL_RADIUS"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			log.Printf("config: bad WHEEL_RADIUS %q: %v", v, err)
		case r <= 0 || r > WindowWidth/2:
			log.Printf("config: WHEEL_RADIUS %v out of range (0, %d]", r, WindowWidth/2)
		default:
			cfg.Radius = r
		}
	}

	if v := os.Getenv("WHEEL_SOUND"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("config: bad WHEEL_SOUND %q: %v", v, err)
		} else {
			cfg.SoundEnabled = on
		}
	}

	// powers of two: -1 halves, 1 doubles
	if v := os.Getenv("WHEEL_VOLUME"); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			log.Printf("config: bad WHEEL_VOLUME %q: %v", v, err)
		case vol < -8 || vol > 2:
			log.Printf("config: WHEEL_VOLUME %v out of range [-8, 2]", vol)
		default:
			cfg.Volume = vol
		}
	}

	cfg.SlicesFile = os.Getenv("WHEEL_SLICES_FILE")
	cfg.TickSoundFile = os.Getenv("WHEEL_TICK_SOUND")
	cfg.Title = getEnvOrDefault("WHEEL_TITLE", cfg.Title)

	return cfg
}

// Distribution is the slice layout that goes with the configured mode.
func (c *Config) Distribution() wheel.Distribution {
	if c.Mode == wheel.Timer {
		return wheel.Even
	}
	return wheel.Remainder
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
