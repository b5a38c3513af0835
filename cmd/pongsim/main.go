// Command pongsim plays seeded matches headlessly and logs their results.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/pong/config"
	"github.com/milk9111/pong/match"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/script"
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
	matches := flag.Int("matches", 10, "number of matches to play")
	seed := flag.Int64("seed", 1, "seed of the first match; later matches use seed+i")
	scriptName := flag.String("script", "", "opponent script in prefabs/scripts (empty = prefab default, \"native\" = built-in)")
	maxTicks := flag.Uint64("max-ticks", 200000, "abandon a match after this many ticks")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	spec, err := prefabs.LoadMatchSpec(cfg.Match.Prefab)
	if err != nil {
		return err
	}
	rules := spec.Rules()

	name := *scriptName
	if name == "" {
		name = cfg.Match.Script
	}
	if name == "" {
		name = spec.Opponent.Script
	}

	var opp match.Opponent = match.Reactive{}
	if name != "" && name != "native" {
		policy, err := script.Load(name, log)
		if err != nil {
			return err
		}
		defer policy.Close()
		opp = policy
	} else {
		name = "native"
	}

	log.Info("simulating",
		zap.String("prefab", spec.Name),
		zap.String("opponent", name),
		zap.Int("matches", *matches),
		zap.Int64("seed", *seed))

	var playerWins, opponentWins, unfinished int
	for i := 0; i < *matches; i++ {
		res := simulate(rules, opp, *seed+int64(i), *maxTicks)
		fields := []zap.Field{
			zap.Int64("seed", res.Seed),
			zap.Int("player", res.Score.Player),
			zap.Int("opponent", res.Score.Opponent),
			zap.Uint64("ticks", res.Ticks),
			zap.Int("paddle_hits", res.Hits),
			zap.Int("wall_bounces", res.Bounces),
		}
		switch {
		case !res.Finished:
			unfinished++
			log.Warn("match unfinished", fields...)
		case res.Winner == match.SidePlayer:
			playerWins++
			log.Info("match", append(fields, zap.Stringer("winner", res.Winner))...)
		default:
			opponentWins++
			log.Info("match", append(fields, zap.Stringer("winner", res.Winner))...)
		}
	}

	log.Info("done",
		zap.Int("player_wins", playerWins),
		zap.Int("opponent_wins", opponentWins),
		zap.Int("unfinished", unfinished))
	return nil
}
