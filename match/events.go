package match

type EventKind string

const (
	EventWallBounce EventKind = "wall_bounce"
	EventPaddleHit  EventKind = "paddle_hit"
	EventGoal       EventKind = "goal"
	EventMatchOver  EventKind = "match_over"
	EventRestart    EventKind = "restart"
)

// Event describes something that happened during a tick. Side is the paddle
// that was hit, the side that scored, or the winner.
type Event struct {
	Kind EventKind
	Side Side
	Tick uint64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evts ...Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evts...)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
