package match

import (
	"errors"
	"fmt"
)

var ErrInvalidRules = errors.New("match: invalid rules")

// Rules holds the fixed dimensions and tuning of a match. Speeds are in
// field units per tick; there is no delta-time compensation.
type Rules struct {
	FieldWidth  float64
	FieldHeight float64

	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64

	PlayerSpeed   float64
	OpponentSpeed float64

	BallSize    float64
	ServeSpeed  float64
	OpeningDY   float64
	ServeSpread float64

	Deflection      float64
	DeflectionNoise float64

	DeadZone         float64
	RecenterDeadZone float64

	WinScore int
}

func DefaultRules() Rules {
	return Rules{
		FieldWidth:       800,
		FieldHeight:      500,
		PaddleWidth:      15,
		PaddleHeight:     80,
		PaddleInset:      20,
		PlayerSpeed:      6,
		OpponentSpeed:    5,
		BallSize:         18,
		ServeSpeed:       5,
		OpeningDY:        4,
		ServeSpread:      3.5,
		Deflection:       0.25,
		DeflectionNoise:  1.5,
		DeadZone:         10,
		RecenterDeadZone: 10,
		WinScore:         7,
	}
}

func (r Rules) Validate() error {
	switch {
	case r.FieldWidth <= 0 || r.FieldHeight <= 0:
		return fmt.Errorf("%w: field must be positive, got %gx%g", ErrInvalidRules, r.FieldWidth, r.FieldHeight)
	case r.PaddleWidth <= 0 || r.PaddleHeight <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %gx%g", ErrInvalidRules, r.PaddleWidth, r.PaddleHeight)
	case r.PaddleHeight > r.FieldHeight:
		return fmt.Errorf("%w: paddle height %g exceeds field height %g", ErrInvalidRules, r.PaddleHeight, r.FieldHeight)
	case r.PaddleInset < 0 || 2*(r.PaddleInset+r.PaddleWidth) >= r.FieldWidth:
		return fmt.Errorf("%w: paddle inset %g does not fit field width %g", ErrInvalidRules, r.PaddleInset, r.FieldWidth)
	case r.BallSize <= 0 || r.BallSize > r.FieldHeight:
		return fmt.Errorf("%w: ball size %g", ErrInvalidRules, r.BallSize)
	case r.PlayerSpeed < 0 || r.OpponentSpeed < 0 || r.ServeSpeed <= 0:
		return fmt.Errorf("%w: speeds must be non-negative and serve speed positive", ErrInvalidRules)
	case r.DeadZone < 0 || r.RecenterDeadZone < 0 || r.DeflectionNoise < 0 || r.ServeSpread < 0:
		return fmt.Errorf("%w: tolerances must be non-negative", ErrInvalidRules)
	case r.WinScore <= 0:
		return fmt.Errorf("%w: win score must be positive, got %d", ErrInvalidRules, r.WinScore)
	}
	return nil
}

// SameField reports whether both rule sets describe the same field size.
func (r Rules) SameField(o Rules) bool {
	return r.FieldWidth == o.FieldWidth && r.FieldHeight == o.FieldHeight
}

func (r Rules) playerX() float64 {
	return r.PaddleInset
}

func (r Rules) opponentX() float64 {
	return r.FieldWidth - r.PaddleInset - r.PaddleWidth
}

func (r Rules) paddleMaxY() float64 {
	return r.FieldHeight - r.PaddleHeight
}

func (r Rules) ballMaxY() float64 {
	return r.FieldHeight - r.BallSize
}
