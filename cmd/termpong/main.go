// Command termpong plays a match in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pong/config"
	"github.com/milk9111/pong/match"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/script"
	"go.uber.org/zap"
)

const tickRate = 16 * time.Millisecond

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
	mute := flag.Bool("mute", false, "disable sound")
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

	// The terminal owns stderr, so logs only go somewhere when a file is set.
	log := zap.NewNop()
	if cfg.Logging.File != "" {
		log, err = config.NewLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()
	}

	spec, err := prefabs.LoadMatchSpec(cfg.Match.Prefab)
	if err != nil {
		return err
	}
	name := cfg.Match.Script
	if name == "" {
		name = spec.Opponent.Script
	}
	var opp match.Opponent = match.Reactive{}
	if name != "" {
		policy, err := script.Load(name, log)
		if err != nil {
			return err
		}
		defer policy.Close()
		opp = policy
	}

	matchSeed := cfg.Match.Seed
	if matchSeed == 0 {
		matchSeed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	var sound *blipper
	if cfg.Window.Sound && !*mute {
		sound, err = newBlipper()
		if err != nil {
			log.Warn("audio disabled", zap.Error(err))
		}
		defer sound.close()
	}

	s := &session{
		log:   log,
		loop:  match.NewLoop(spec.Rules(), opp, match.NewRand(matchSeed)),
		view:  &termView{screen: screen, styles: stylesFromSpec(spec)},
		sound: sound,
	}
	log.Info("match ready",
		zap.String("prefab", spec.Name),
		zap.String("opponent", name),
		zap.Int64("seed", matchSeed))

	s.run(screen)
	return nil
}

type session struct {
	log   *zap.Logger
	loop  *match.Loop
	keys  heldKeys
	view  match.Renderer
	sound *blipper
}

func (s *session) run(screen tcell.Screen) {
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handle(ev) {
				return
			}
		case <-ticker.C:
			s.tick()
		}
	}
}

// handle applies a terminal event and reports whether to keep running.
func (s *session) handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	switch c := commandFor(key); c {
	case cmdQuit:
		return false
	case cmdRestart:
		s.loop.Restart()
	default:
		s.keys.press(c)
	}
	return true
}

func (s *session) tick() {
	s.loop.SetIntent(s.keys.advance())
	s.loop.Tick(s.view)

	for _, e := range s.loop.Events() {
		s.sound.play(e.Kind)
		switch e.Kind {
		case match.EventGoal:
			st := s.loop.State()
			s.log.Info("goal",
				zap.Stringer("scorer", e.Side),
				zap.Int("player", st.Score.Player),
				zap.Int("opponent", st.Score.Opponent))
		case match.EventMatchOver:
			s.log.Info("match over", zap.Stringer("winner", e.Side), zap.Uint64("tick", e.Tick))
		case match.EventRestart:
			s.log.Info("match restarted")
		}
	}
}
