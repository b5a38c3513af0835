package match

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

// fixedRand always returns the same draw. 0.5 makes every uniform noise term zero.
type fixedRand float64

func (f fixedRand) Float64() float64 {
	return float64(f)
}

func still() Opponent {
	return OpponentFunc(func(State) float64 { return 0 })
}

func TestNewCentersEverything(t *testing.T) {
	r := DefaultRules()
	s := New(r, fixedRand(0.9))

	if s.Player.Pos.Y != 210 || s.Opponent.Pos.Y != 210 {
		t.Fatalf("expected paddles at y=210, got %v and %v", s.Player.Pos.Y, s.Opponent.Pos.Y)
	}
	if s.Player.Pos.X != 20 || s.Opponent.Pos.X != 765 {
		t.Fatalf("unexpected paddle x: %v %v", s.Player.Pos.X, s.Opponent.Pos.X)
	}
	if s.Ball.Pos != (cp.Vector{X: 391, Y: 241}) {
		t.Fatalf("expected centered ball, got %v", s.Ball.Pos)
	}
	if s.Ball.Vel != (cp.Vector{X: 5, Y: 4}) {
		t.Fatalf("expected opening serve (5,4), got %v", s.Ball.Vel)
	}
	if s.Phase != InProgress {
		t.Fatalf("expected in progress, got %v", s.Phase)
	}
}

func TestPlayerIntent(t *testing.T) {
	cases := []struct {
		name  string
		in    Intent
		start float64
		want  float64
		dy    float64
	}{
		{"idle", Intent{}, 100, 100, 0},
		{"up", Intent{Up: true}, 100, 94, -6},
		{"down", Intent{Down: true}, 100, 106, 6},
		{"both_prefers_up", Intent{Up: true, Down: true}, 100, 94, -6},
		{"clamp_top", Intent{Up: true}, 3, 0, -6},
		{"clamp_bottom", Intent{Down: true}, 417, 420, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New(DefaultRules(), fixedRand(0.5))
			s.Player.Pos.Y = c.start
			next, _ := Advance(s, c.in, still(), fixedRand(0.5))
			if next.Player.Pos.Y != c.want {
				t.Fatalf("expected y=%v, got %v", c.want, next.Player.Pos.Y)
			}
			if next.Player.DY != c.dy {
				t.Fatalf("expected dy=%v, got %v", c.dy, next.Player.DY)
			}
		})
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	s := New(DefaultRules(), fixedRand(0.5))
	before := s
	_, _ = Advance(s, Intent{Down: true}, nil, fixedRand(0.5))
	if s != before {
		t.Fatalf("Advance mutated its input state")
	}
}

func TestWallBounce(t *testing.T) {
	cases := []struct {
		name  string
		y, dy float64
		wantY float64
	}{
		{"top", 2, -5, 0},
		{"bottom", 480, 5, 482},
		{"exactly_touching_top", 4, -4, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New(DefaultRules(), fixedRand(0.5))
			s.Ball.Pos = cp.Vector{X: 400, Y: c.y}
			s.Ball.Vel = cp.Vector{X: 5, Y: c.dy}

			next, events := Advance(s, Intent{}, still(), fixedRand(0.5))
			if next.Ball.Pos.Y != c.wantY {
				t.Fatalf("expected y=%v, got %v", c.wantY, next.Ball.Pos.Y)
			}
			if next.Ball.Vel.Y != -c.dy {
				t.Fatalf("expected dy=%v, got %v", -c.dy, next.Ball.Vel.Y)
			}
			if !hasEvent(events, EventWallBounce) {
				t.Fatalf("expected wall bounce event, got %v", events)
			}
		})
	}
}

func TestPlayerPaddleHit(t *testing.T) {
	s := New(DefaultRules(), fixedRand(0.5))
	s.Ball.Pos = cp.Vector{X: 38, Y: 240}
	s.Ball.Vel = cp.Vector{X: -5, Y: 0}

	next, events := Advance(s, Intent{}, still(), fixedRand(0.5))

	if next.Ball.Vel.X != 5 {
		t.Fatalf("expected dx to flip to 5, got %v", next.Ball.Vel.X)
	}
	right := next.Player.Bounds().R
	if next.Ball.Pos.X <= right {
		t.Fatalf("expected ball strictly outside paddle (x > %v), got %v", right, next.Ball.Pos.X)
	}
	// center 249 vs paddle center 250, no noise at 0.5
	if next.Ball.Vel.Y != -0.25 {
		t.Fatalf("expected dy=-0.25, got %v", next.Ball.Vel.Y)
	}
	if !hasEvent(events, EventPaddleHit) {
		t.Fatalf("expected paddle hit event")
	}
}

func TestOpponentPaddleHit(t *testing.T) {
	s := New(DefaultRules(), fixedRand(0.5))
	// right edge lands at 770, inside [765, 780]
	s.Ball.Pos = cp.Vector{X: 747, Y: 270}
	s.Ball.Vel = cp.Vector{X: 5, Y: 0}

	next, events := Advance(s, Intent{}, still(), fixedRand(0.5))

	if next.Ball.Vel.X != -5 {
		t.Fatalf("expected dx=-5, got %v", next.Ball.Vel.X)
	}
	if next.Ball.Pos.X+next.Ball.Size >= next.Opponent.Pos.X {
		t.Fatalf("expected ball left of opponent paddle, got x=%v", next.Ball.Pos.X)
	}
	if want := 0.25 * (279.0 - 250.0); next.Ball.Vel.Y != want {
		t.Fatalf("expected dy=%v, got %v", want, next.Ball.Vel.Y)
	}
	if len(events) != 1 || events[0].Side != SideOpponent {
		t.Fatalf("expected one opponent hit event, got %v", events)
	}
}

func TestDeflectionNoiseRange(t *testing.T) {
	for _, draw := range []float64{0, 0.25, 0.999} {
		s := New(DefaultRules(), fixedRand(0.5))
		s.Ball.Pos = cp.Vector{X: 38, Y: 241}
		s.Ball.Vel = cp.Vector{X: -5, Y: 0}

		next, _ := Advance(s, Intent{}, still(), fixedRand(draw))
		noise := next.Ball.Vel.Y
		if noise < -1.5 || noise >= 1.5 {
			t.Fatalf("draw %v: noise %v outside [-1.5, 1.5)", draw, noise)
		}
	}
}

func TestDoubleBounceInOneTick(t *testing.T) {
	s := New(DefaultRules(), fixedRand(0.5))
	s.Player.Pos.Y = 0
	s.Ball.Pos = cp.Vector{X: 38, Y: 3}
	s.Ball.Vel = cp.Vector{X: -5, Y: -5}

	next, events := Advance(s, Intent{}, still(), fixedRand(0.5))

	if !hasEvent(events, EventWallBounce) || !hasEvent(events, EventPaddleHit) {
		t.Fatalf("expected both wall and paddle events, got %v", events)
	}
	if next.Ball.Pos.Y != 0 {
		t.Fatalf("expected ball clamped to top, got %v", next.Ball.Pos.Y)
	}
	if next.Ball.Vel.X != 5 {
		t.Fatalf("expected dx=5, got %v", next.Ball.Vel.X)
	}
	// paddle hit overrides the wall's dy: 0.25 * (9 - 40)
	if next.Ball.Vel.Y != -7.75 {
		t.Fatalf("expected dy=-7.75, got %v", next.Ball.Vel.Y)
	}
}

func TestGoalResetsTowardPlayer(t *testing.T) {
	r := DefaultRules()
	s := New(r, fixedRand(0.5))
	s.Ball.Pos = cp.Vector{X: 2, Y: 241}
	s.Ball.Vel = cp.Vector{X: -5, Y: 4}

	next, events := Advance(s, Intent{}, still(), fixedRand(0.5))

	if next.Score.Opponent != 1 || next.Score.Player != 0 {
		t.Fatalf("expected 0-1, got %+v", next.Score)
	}
	if next.Ball.Pos != (cp.Vector{X: 391, Y: 241}) {
		t.Fatalf("expected ball recentered, got %v", next.Ball.Pos)
	}
	if next.Ball.Vel.X != -5 {
		t.Fatalf("expected serve dx=-5, got %v", next.Ball.Vel.X)
	}
	if !hasEvent(events, EventGoal) {
		t.Fatalf("expected goal event")
	}
}

func TestGoalScoresExactlyOnce(t *testing.T) {
	cases := []struct {
		name         string
		x, dx        float64
		wantPlayer   int
		wantOpponent int
		wantServeDX  float64
	}{
		{"left_overshoot", -300, -5, 0, 1, -5},
		{"right_overshoot", 1200, 5, 1, 0, 5},
		{"right_edge", 780, 5, 1, 0, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New(DefaultRules(), fixedRand(0.5))
			s.Ball.Pos = cp.Vector{X: c.x, Y: 100}
			s.Ball.Vel = cp.Vector{X: c.dx, Y: 0}

			next, events := Advance(s, Intent{}, still(), fixedRand(0.5))
			if next.Score.Player != c.wantPlayer || next.Score.Opponent != c.wantOpponent {
				t.Fatalf("expected %d-%d, got %+v", c.wantPlayer, c.wantOpponent, next.Score)
			}
			if next.Ball.Vel.X != c.wantServeDX {
				t.Fatalf("expected serve dx=%v, got %v", c.wantServeDX, next.Ball.Vel.X)
			}
			goals := 0
			for _, e := range events {
				if e.Kind == EventGoal {
					goals++
				}
			}
			if goals != 1 {
				t.Fatalf("expected one goal event, got %d", goals)
			}
		})
	}
}

func TestMatchOverAtWinScore(t *testing.T) {
	s := New(DefaultRules(), fixedRand(0.5))
	s.Score = Score{Player: 2, Opponent: 6}
	s.Ball.Pos = cp.Vector{X: 2, Y: 100}
	s.Ball.Vel = cp.Vector{X: -5, Y: 0}

	next, events := Advance(s, Intent{}, still(), fixedRand(0.5))
	if next.Phase != Over {
		t.Fatalf("expected match over at 7, got %v", next.Phase)
	}
	if winner, ok := next.Winner(); !ok || winner != SideOpponent {
		t.Fatalf("expected opponent win, got %v %v", winner, ok)
	}
	if !hasEvent(events, EventMatchOver) {
		t.Fatalf("expected match over event")
	}

	after, events := Advance(next, Intent{Down: true}, still(), fixedRand(0.5))
	if after != next || events != nil {
		t.Fatalf("expected finished match to stay frozen")
	}
}

func TestMatchNotOverBeforeWinScore(t *testing.T) {
	s := New(DefaultRules(), fixedRand(0.5))
	s.Score = Score{Player: 5, Opponent: 5}
	s.Ball.Pos = cp.Vector{X: 2, Y: 100}
	s.Ball.Vel = cp.Vector{X: -5, Y: 0}

	next, _ := Advance(s, Intent{}, still(), fixedRand(0.5))
	if next.Phase != InProgress {
		t.Fatalf("expected match in progress at 5-6")
	}
	if _, ok := next.Winner(); ok {
		t.Fatalf("expected no winner yet")
	}
}

func TestBoundsHoldOverRandomPlay(t *testing.T) {
	r := DefaultRules()
	rng := NewRand(42)
	inputs := NewRand(7)
	s := New(r, rng)

	for i := 0; i < 20000; i++ {
		in := Intent{Up: inputs.Intn(3) == 0, Down: inputs.Intn(3) == 0}
		prev := s.Score
		next, _ := Advance(s, in, Reactive{}, rng)

		for _, p := range []Paddle{next.Player, next.Opponent} {
			if p.Pos.Y < 0 || p.Pos.Y > r.FieldHeight-r.PaddleHeight {
				t.Fatalf("tick %d: paddle out of bounds: %v", i, p.Pos.Y)
			}
		}
		if next.Ball.Pos.Y < 0 || next.Ball.Pos.Y > r.FieldHeight-r.BallSize {
			t.Fatalf("tick %d: ball out of bounds: %v", i, next.Ball.Pos.Y)
		}
		gained := (next.Score.Player - prev.Player) + (next.Score.Opponent - prev.Opponent)
		if gained < 0 || gained > 1 {
			t.Fatalf("tick %d: score jumped from %+v to %+v", i, prev, next.Score)
		}
		if s.Phase == Over && next.Phase != Over {
			t.Fatalf("tick %d: phase reverted without restart", i)
		}
		if next.Phase == Over && math.Max(float64(next.Score.Player), float64(next.Score.Opponent)) != float64(r.WinScore) {
			t.Fatalf("tick %d: over with score %+v", i, next.Score)
		}

		s = next
		if s.Over() {
			s = Restart(r, rng)
		}
	}
}

func TestRestart(t *testing.T) {
	r := DefaultRules()
	got := Restart(r, fixedRand(0.9))

	if got.Score != (Score{}) {
		t.Fatalf("expected zero score, got %+v", got.Score)
	}
	if got.Player.Pos.Y != 210 || got.Opponent.Pos.Y != 210 {
		t.Fatalf("expected centered paddles")
	}
	if got.Phase != InProgress {
		t.Fatalf("expected in progress")
	}
	if got.Ball.Vel.X != 5 {
		t.Fatalf("expected serve to the right for draw 0.9, got %v", got.Ball.Vel.X)
	}
	if want := (0.9 - 0.5) * 7; math.Abs(got.Ball.Vel.Y-want) > 1e-9 {
		t.Fatalf("expected dy=%v, got %v", want, got.Ball.Vel.Y)
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
