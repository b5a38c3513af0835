package match

import "github.com/jakecoffman/cp"

func bounceWalls(s *State) bool {
	b := &s.Ball
	if b.Pos.Y > 0 && b.Pos.Y+b.Size < s.Rules.FieldHeight {
		return false
	}
	b.Vel.Y = -b.Vel.Y
	b.Pos.Y = cp.Clamp(b.Pos.Y, 0, s.Rules.ballMaxY())
	return true
}

func overlapsVertically(b Ball, p Paddle) bool {
	bb := p.Bounds()
	return b.Pos.Y+b.Size > bb.B && b.Pos.Y < bb.T
}

// hitPlayer tests the ball's left edge against the player paddle's span.
func hitPlayer(s *State, rng Rand) bool {
	b, p := &s.Ball, s.Player
	bb := p.Bounds()
	if b.Pos.X > bb.R || b.Pos.X < bb.L || !overlapsVertically(*b, p) {
		return false
	}
	b.Vel.X = -b.Vel.X
	b.Pos.X = bb.R + 1
	b.Vel.Y = deflect(*b, p, s.Rules, rng)
	return true
}

// hitOpponent tests the ball's right edge against the opponent paddle's span.
func hitOpponent(s *State, rng Rand) bool {
	b, p := &s.Ball, s.Opponent
	bb := p.Bounds()
	right := b.Pos.X + b.Size
	if right < bb.L || right > bb.R || !overlapsVertically(*b, p) {
		return false
	}
	b.Vel.X = -b.Vel.X
	b.Pos.X = bb.L - b.Size - 1
	b.Vel.Y = deflect(*b, p, s.Rules, rng)
	return true
}

// deflect angles the return by how far from the paddle center the ball hit.
func deflect(b Ball, p Paddle, r Rules, rng Rand) float64 {
	return r.Deflection*(b.CenterY()-p.CenterY()) + uniform(rng, r.DeflectionNoise)
}

// scoreGoal awards at most one point per tick and re-serves toward the
// side that conceded.
func scoreGoal(s *State, rng Rand) (Side, bool) {
	switch {
	case s.Ball.Pos.X < 0:
		s.Score.Opponent++
		serve(s, -1, rng)
		return SideOpponent, true
	case s.Ball.Pos.X+s.Ball.Size > s.Rules.FieldWidth:
		s.Score.Player++
		serve(s, 1, rng)
		return SidePlayer, true
	}
	return 0, false
}

func serve(s *State, direction float64, rng Rand) {
	s.Ball.Pos = centerBall(s.Rules)
	s.Ball.Vel.X = s.Rules.ServeSpeed * direction
	s.Ball.Vel.Y = uniform(rng, s.Rules.ServeSpread)
}
