package match

// Renderer draws a state. It must not retain or mutate it.
type Renderer interface {
	Render(s State)
}

type RendererFunc func(s State)

func (f RendererFunc) Render(s State) {
	f(s)
}

// Loop owns the live match and drives it one tick at a time. It is not safe
// for concurrent use; front ends call it from their frame callback.
type Loop struct {
	state    State
	rules    Rules
	intent   Intent
	opponent Opponent
	rng      Rand
	events   EventQueue
}

func NewLoop(r Rules, opp Opponent, rng Rand) *Loop {
	if rng == nil {
		rng = NewRand(0)
	}
	return &Loop{
		state:    New(r, rng),
		rules:    r,
		opponent: opp,
		rng:      rng,
	}
}

// Tick renders the current state and then, unless the match is over,
// advances it. It reports whether a simulation step ran.
func (l *Loop) Tick(r Renderer) bool {
	if r != nil {
		r.Render(l.state)
	}
	if l.state.Over() {
		return false
	}

	next, events := Advance(l.state, l.intent, l.opponent, l.rng)
	l.state = next
	l.events.Push(events...)
	return true
}

func (l *Loop) SetIntent(in Intent) {
	l.intent = in
}

func (l *Loop) SetOpponent(opp Opponent) {
	l.opponent = opp
}

// SetRules stores rules for the next restart. The live match keeps its own.
func (l *Loop) SetRules(r Rules) {
	l.rules = r
}

// Restart starts a fresh match with the most recent rules.
func (l *Loop) Restart() {
	l.state = Restart(l.rules, l.rng)
	l.events.Push(Event{Kind: EventRestart})
}

func (l *Loop) State() State {
	return l.state
}

// Events drains everything that happened since the last call.
func (l *Loop) Events() []Event {
	return l.events.Drain()
}
