package match

// Opponent decides the opponent paddle's vertical velocity for a tick.
// Advance applies and clamps it.
type Opponent interface {
	Velocity(s State) float64
}

type OpponentFunc func(s State) float64

func (f OpponentFunc) Velocity(s State) float64 {
	return f(s)
}

// Reactive tracks the ball once it is inbound on the opponent's half and
// otherwise drifts back to the middle at half speed.
type Reactive struct{}

func (Reactive) Velocity(s State) float64 {
	r := s.Rules
	p := s.Opponent
	center := p.CenterY()

	if s.Ball.Vel.X > 0 && s.Ball.Pos.X > r.FieldWidth/2 {
		return approach(center, s.Ball.CenterY(), r.DeadZone, p.Speed)
	}
	return approach(center, r.FieldHeight/2, r.RecenterDeadZone, p.Speed/2)
}

func approach(from, to, deadZone, speed float64) float64 {
	switch {
	case from < to-deadZone:
		return speed
	case from > to+deadZone:
		return -speed
	default:
		return 0
	}
}
