package main

import (
	"github.com/milk9111/pong/match"
)

// trackSlack is how far the autopilot lets the ball drift from its paddle
// center before moving. Larger values lose more rallies.
const trackSlack = 12

type result struct {
	Seed     int64
	Score    match.Score
	Winner   match.Side
	Finished bool
	Ticks    uint64
	Hits     int
	Bounces  int
}

// autopilot chases the ball center while it approaches the player and
// drifts back to the middle otherwise.
func autopilot(s match.State) match.Intent {
	target := s.Rules.FieldHeight / 2
	if s.Ball.Vel.X < 0 {
		target = s.Ball.CenterY()
	}
	center := s.Player.CenterY()
	return match.Intent{
		Up:   center > target+trackSlack,
		Down: center < target-trackSlack,
	}
}

// simulate plays one match to completion or until maxTicks steps ran.
func simulate(r match.Rules, opp match.Opponent, seed int64, maxTicks uint64) result {
	loop := match.NewLoop(r, opp, match.NewRand(seed))
	res := result{Seed: seed}

	for res.Ticks < maxTicks {
		loop.SetIntent(autopilot(loop.State()))
		if !loop.Tick(nil) {
			break
		}
		res.Ticks++
		for _, e := range loop.Events() {
			switch e.Kind {
			case match.EventPaddleHit:
				res.Hits++
			case match.EventWallBounce:
				res.Bounces++
			}
		}
	}

	final := loop.State()
	res.Score = final.Score
	res.Winner, res.Finished = final.Winner()
	return res
}
