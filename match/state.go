package match

import "github.com/jakecoffman/cp"

type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

type Phase int

const (
	InProgress Phase = iota
	Over
)

func (p Phase) String() string {
	if p == Over {
		return "over"
	}
	return "in_progress"
}

// Paddle is a vertical bar. Pos is its top-left corner; only Y moves.
type Paddle struct {
	Pos    cp.Vector
	DY     float64
	Speed  float64
	Width  float64
	Height float64
}

// Bounds returns the paddle rectangle. Y grows downward, so B is the top edge.
func (p Paddle) Bounds() cp.BB {
	return cp.BB{L: p.Pos.X, B: p.Pos.Y, R: p.Pos.X + p.Width, T: p.Pos.Y + p.Height}
}

func (p Paddle) CenterY() float64 {
	return p.Pos.Y + p.Height/2
}

// Ball is a circle of diameter Size whose bounding box starts at Pos.
type Ball struct {
	Pos  cp.Vector
	Vel  cp.Vector
	Size float64
}

func (b Ball) CenterY() float64 {
	return b.Pos.Y + b.Size/2
}

type Score struct {
	Player   int
	Opponent int
}

func (s Score) reached(win int) bool {
	return s.Player >= win || s.Opponent >= win
}

// Intent is the player's held direction for the current tick.
type Intent struct {
	Up   bool
	Down bool
}

// State is everything a tick reads and writes. It is a value: Advance
// returns a new State and never retains the one passed in.
type State struct {
	Rules    Rules
	Player   Paddle
	Opponent Paddle
	Ball     Ball
	Score    Score
	Phase    Phase
	Tick     uint64
}

func (s State) Over() bool {
	return s.Phase == Over
}

// Winner reports the side that reached the win score, if the match is over.
func (s State) Winner() (Side, bool) {
	if s.Phase != Over {
		return 0, false
	}
	if s.Score.Player > s.Score.Opponent {
		return SidePlayer, true
	}
	return SideOpponent, true
}
