package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/config"
	"github.com/milk9111/pong/match"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/script"
	"go.uber.org/zap"
)

type Game struct {
	log   *zap.Logger
	debug bool

	loop  *match.Loop
	frame match.State

	prefab     string
	scriptName string
	policy     *script.Policy

	view      *fieldView
	overUI    *matchOverUI
	overFor   match.Rules
	overDirty bool
	sounds    *sounds
	watcher   *prefabs.Watcher
	restarts  int
}

func NewGame(cfg *config.Config, log *zap.Logger, debug bool) (*Game, error) {
	spec, err := prefabs.LoadMatchSpec(cfg.Match.Prefab)
	if err != nil {
		return nil, err
	}
	rules := spec.Rules()

	seed := cfg.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		log:        log,
		debug:      debug,
		prefab:     cfg.Match.Prefab,
		scriptName: cfg.Match.Script,
		view:       newFieldView(spec),
	}
	if g.scriptName == "" {
		g.scriptName = spec.Opponent.Script
	}

	var opp match.Opponent = match.Reactive{}
	if g.scriptName != "" {
		policy, err := script.Load(g.scriptName, log)
		if err != nil {
			return nil, err
		}
		g.policy = policy
		opp = policy
	}

	g.loop = match.NewLoop(rules, opp, match.NewRand(seed))
	g.frame = g.loop.State()
	g.buildOverlay(rules)

	if cfg.Window.Sound {
		g.sounds = newSounds()
	}

	if cfg.Dev.HotReload {
		if dirs := prefabs.DiskDirs(); len(dirs) > 0 {
			w, err := prefabs.NewWatcher(dirs...)
			if err != nil {
				log.Warn("hot reload disabled", zap.Error(err))
			} else {
				g.watcher = w
				log.Info("watching prefabs", zap.Strings("dirs", dirs))
			}
		}
	}

	log.Info("match ready",
		zap.String("prefab", spec.Name),
		zap.String("opponent", g.scriptName),
		zap.Int64("seed", seed),
		zap.Int("win_score", rules.WinScore))
	return g, nil
}

func (g *Game) Update() error {
	g.applyReloads()

	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Restart {
		g.restart()
	}

	g.loop.SetIntent(in.Intent)
	g.loop.Tick(match.RendererFunc(func(s match.State) { g.frame = s }))
	g.handleEvents(g.loop.Events())

	if g.frame.Over() {
		g.overUI.show(g.frame)
	}
	g.overUI.update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.frame)
	g.overUI.draw(screen)

	if g.debug {
		op := &text.DrawOptions{}
		op.GeoM.Translate(6, 6)
		text.Draw(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f  tick: %d  restarts: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.frame.Tick, g.restarts), assets.DebugFace(), op)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.frame.Rules.FieldWidth), int(g.frame.Rules.FieldHeight)
}

func (g *Game) restart() {
	g.restarts++
	g.loop.Restart()
	g.frame = g.loop.State()
	if g.overDirty || !g.overFor.SameField(g.frame.Rules) {
		g.buildOverlay(g.frame.Rules)
	}
	g.overUI.hide()
}

// buildOverlay sizes the end-of-match panel for r's field.
func (g *Game) buildOverlay(r match.Rules) {
	g.overUI = newMatchOverUI(int(r.FieldWidth), int(r.FieldHeight), g.view.pal.text, g.restart)
	g.overFor = r
	g.overDirty = false
}

func (g *Game) handleEvents(events []match.Event) {
	for _, e := range events {
		g.sounds.play(e.Kind)

		switch e.Kind {
		case match.EventPaddleHit:
			g.log.Debug("paddle hit", zap.Stringer("side", e.Side), zap.Uint64("tick", e.Tick))
		case match.EventGoal:
			score := g.loop.State().Score
			g.log.Info("goal",
				zap.Stringer("scorer", e.Side),
				zap.Int("player", score.Player),
				zap.Int("opponent", score.Opponent),
				zap.Uint64("tick", e.Tick))
		case match.EventMatchOver:
			g.log.Info("match over", zap.Stringer("winner", e.Side), zap.Uint64("tick", e.Tick))
		case match.EventRestart:
			g.log.Info("match restarted", zap.Int("restarts", g.restarts))
		}
	}
}

// applyReloads drains the prefab watcher without blocking the frame.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err := <-g.watcher.Errors:
			if err != nil {
				g.log.Warn("prefab watcher", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ChangeMatch:
		if change.Name != filepath.Base(g.prefab) {
			return
		}
		spec, err := prefabs.LoadMatchSpec(g.prefab)
		if err != nil {
			g.log.Warn("prefab reload failed", zap.String("file", change.Path), zap.Error(err))
			return
		}
		g.loop.SetRules(spec.Rules())
		g.view = newFieldView(spec)
		g.overDirty = true
		g.log.Info("prefab reloaded, rules apply on restart", zap.String("file", change.Path))
	case prefabs.ChangeScript:
		if change.Name != filepath.Base(g.scriptName) {
			return
		}
		policy, err := script.Load(g.scriptName, g.log)
		if err != nil {
			g.log.Warn("script reload failed", zap.String("file", change.Path), zap.Error(err))
			return
		}
		g.policy.Close()
		g.policy = policy
		g.loop.SetOpponent(policy)
		g.log.Info("opponent script reloaded", zap.String("script", policy.Name()), zap.String("file", change.Path))
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.policy.Close()
}

type sounds struct {
	wall   *audio.Player
	paddle *audio.Player
	goal   *audio.Player
	over   *audio.Player
}

func newSounds() *sounds {
	return &sounds{
		wall:   assets.NewTonePlayer(440, 40*time.Millisecond, 0.5),
		paddle: assets.NewTonePlayer(660, 50*time.Millisecond, 0.6),
		goal:   assets.NewTonePlayer(220, 250*time.Millisecond, 0.7),
		over:   assets.NewTonePlayer(330, 600*time.Millisecond, 0.7),
	}
}

func (s *sounds) play(kind match.EventKind) {
	if s == nil {
		return
	}
	var p *audio.Player
	switch kind {
	case match.EventWallBounce:
		p = s.wall
	case match.EventPaddleHit:
		p = s.paddle
	case match.EventGoal:
		p = s.goal
	case match.EventMatchOver:
		p = s.over
	default:
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
