package match

import (
	"math"

	"github.com/jakecoffman/cp"
)

// New builds the opening state: paddles centered and the ball served from
// the center in a random diagonal.
func New(r Rules, rng Rand) State {
	s := State{
		Rules:    r,
		Player:   newPaddle(r, r.playerX(), r.PlayerSpeed),
		Opponent: newPaddle(r, r.opponentX(), r.OpponentSpeed),
		Ball:     Ball{Size: r.BallSize},
	}
	s.Ball.Pos = centerBall(r)
	s.Ball.Vel = cp.Vector{
		X: r.ServeSpeed * randomSign(rng),
		Y: r.OpeningDY * randomSign(rng),
	}
	return s
}

// Restart clears the score, recenters both paddles and serves toward a
// random side.
func Restart(r Rules, rng Rand) State {
	s := State{
		Rules:    r,
		Player:   newPaddle(r, r.playerX(), r.PlayerSpeed),
		Opponent: newPaddle(r, r.opponentX(), r.OpponentSpeed),
		Ball:     Ball{Size: r.BallSize},
	}
	serve(&s, randomSign(rng), rng)
	return s
}

func newPaddle(r Rules, x, speed float64) Paddle {
	return Paddle{
		Pos:    cp.Vector{X: x, Y: r.FieldHeight/2 - r.PaddleHeight/2},
		Speed:  speed,
		Width:  r.PaddleWidth,
		Height: r.PaddleHeight,
	}
}

func centerBall(r Rules) cp.Vector {
	return cp.Vector{X: r.FieldWidth/2 - r.BallSize/2, Y: r.FieldHeight/2 - r.BallSize/2}
}

// Advance simulates one tick. A finished match is returned unchanged.
// A nil opponent falls back to Reactive.
func Advance(s State, in Intent, opp Opponent, rng Rand) (State, []Event) {
	if s.Phase == Over {
		return s, nil
	}
	if opp == nil {
		opp = Reactive{}
	}

	s.Tick++
	var events []Event

	movePaddle(&s.Opponent, opp.Velocity(s), s.Rules)
	movePaddle(&s.Player, playerVelocity(s.Player, in), s.Rules)

	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel)

	// Walls and both paddles are checked independently, so a single tick can
	// bounce off a wall and a paddle.
	if bounceWalls(&s) {
		events = append(events, Event{Kind: EventWallBounce, Tick: s.Tick})
	}
	if hitPlayer(&s, rng) {
		events = append(events, Event{Kind: EventPaddleHit, Side: SidePlayer, Tick: s.Tick})
	}
	if hitOpponent(&s, rng) {
		events = append(events, Event{Kind: EventPaddleHit, Side: SideOpponent, Tick: s.Tick})
	}

	if side, ok := scoreGoal(&s, rng); ok {
		events = append(events, Event{Kind: EventGoal, Side: side, Tick: s.Tick})
	}

	if s.Score.reached(s.Rules.WinScore) {
		s.Phase = Over
		winner, _ := s.Winner()
		events = append(events, Event{Kind: EventMatchOver, Side: winner, Tick: s.Tick})
	}

	return s, events
}

func playerVelocity(p Paddle, in Intent) float64 {
	switch {
	case in.Up:
		return -p.Speed
	case in.Down:
		return p.Speed
	default:
		return 0
	}
}

// movePaddle treats a non-finite velocity as standing still.
func movePaddle(p *Paddle, dy float64, r Rules) {
	if math.IsNaN(dy) || math.IsInf(dy, 0) {
		dy = 0
	}
	p.DY = dy
	p.Pos.Y = cp.Clamp(p.Pos.Y+dy, 0, r.paddleMaxY())
}
