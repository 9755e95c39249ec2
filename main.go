package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/spinning-wheel/internal/config"
	"github.com/iburimskiy/spinning-wheel/internal/game"
	"github.com/iburimskiy/spinning-wheel/internal/sound"
)

func main() {
	cfg := config.Load()

	player := sound.NewPlayer()
	player.SetVolume(cfg.Volume)
	if cfg.SoundEnabled {
		if err := player.Init(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else if cfg.TickSoundFile != "" {
			if err := player.LoadTick(cfg.TickSoundFile); err != nil {
				log.Printf("using built-in tick: %v", err)
			}
		}
	}

	g, err := game.New(cfg, player)
	if err != nil {
		player.Close()
		log.Fatal(err)
	}
	defer player.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
