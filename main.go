package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/config"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", config.DefaultPath, "path to the TOML settings file")
	seed := flag.Int64("seed", 0, "random seed (0 = use settings, then the clock)")
	scriptName := flag.String("script", "", "opponent script in prefabs/scripts (.tengo or .lua)")
	debug := flag.Bool("debug", false, "enable debug mode (debug logging, overlay, hot reload)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Match.Seed = *seed
	}
	if *scriptName != "" {
		cfg.Match.Script = *scriptName
	}
	if *debug {
		cfg.Logging.Level = "debug"
		cfg.Dev.HotReload = true
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(cfg, log, *debug)
	if err != nil {
		return err
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(float64(w)*cfg.Window.Scale), int(float64(h)*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game exited", zap.Error(err))
		return err
	}
	return nil
}
