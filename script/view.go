package script

import "github.com/milk9111/pong/match"

// view is the read-only snapshot a script sees each tick.
type view struct {
	FieldWidth       float64
	FieldHeight      float64
	BallX            float64
	BallY            float64
	BallDX           float64
	BallDY           float64
	BallSize         float64
	PaddleY          float64
	PaddleHeight     float64
	Speed            float64
	DeadZone         float64
	RecenterDeadZone float64
}

func newView(s match.State) view {
	return view{
		FieldWidth:       s.Rules.FieldWidth,
		FieldHeight:      s.Rules.FieldHeight,
		BallX:            s.Ball.Pos.X,
		BallY:            s.Ball.Pos.Y,
		BallDX:           s.Ball.Vel.X,
		BallDY:           s.Ball.Vel.Y,
		BallSize:         s.Ball.Size,
		PaddleY:          s.Opponent.Pos.Y,
		PaddleHeight:     s.Opponent.Height,
		Speed:            s.Opponent.Speed,
		DeadZone:         s.Rules.DeadZone,
		RecenterDeadZone: s.Rules.RecenterDeadZone,
	}
}

func (v view) fields() map[string]float64 {
	return map[string]float64{
		"field_width":        v.FieldWidth,
		"field_height":       v.FieldHeight,
		"ball_x":             v.BallX,
		"ball_y":             v.BallY,
		"ball_dx":            v.BallDX,
		"ball_dy":            v.BallDY,
		"ball_size":          v.BallSize,
		"paddle_y":           v.PaddleY,
		"paddle_height":      v.PaddleHeight,
		"speed":              v.Speed,
		"dead_zone":          v.DeadZone,
		"recenter_dead_zone": v.RecenterDeadZone,
	}
}
