package game

// EventKind identifies a state change published by the engine.
type EventKind int

const (
	EventRunStarted     EventKind = iota // A run (or a continued level) began
	EventRunEnded                        // Won or lost
	EventCoinsChanged                    // Coins or total coins changed
	EventLivesChanged                    // Lives changed
	EventLevelChanged                    // Current level changed
	EventLevelCompleted                  // A non-final level goal was met
	EventPauseChanged                    // Pause toggled
	EventCollected                       // Coin or gem picked up
	EventHealed                          // Heart picked up
	EventHit                             // Obstacle hit
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventRunEnded:
		return "run_ended"
	case EventCoinsChanged:
		return "coins_changed"
	case EventLivesChanged:
		return "lives_changed"
	case EventLevelChanged:
		return "level_changed"
	case EventLevelCompleted:
		return "level_completed"
	case EventPauseChanged:
		return "pause_changed"
	case EventCollected:
		return "collected"
	case EventHealed:
		return "healed"
	case EventHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Event is a discrete state change. State is the run state right after
// the change.
type Event struct {
	Kind      EventKind
	State     RunState
	Level     int        // Level the event refers to
	Object    ObjectKind // Collected, Healed, Hit
	Value     int        // Coins added by a pickup
	Continued bool       // RunStarted from a level transition
	NewRecord bool       // RunEnded with a new best time
}

// Listener receives engine events on the engine's goroutine.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers a listener and returns a func that removes it.
func (e *Engine) Subscribe(fn Listener) (unsubscribe func()) {
	e.nextSubID++
	id := e.nextSubID
	e.subs = append(e.subs, subscription{id: id, fn: fn})

	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) emit(ev Event) {
	if len(e.subs) == 0 {
		return
	}
	ev.State = e.state
	// Copy so listeners may unsubscribe while being called
	subs := append([]subscription(nil), e.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
}
