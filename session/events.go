package session

// EventType identifies session events.
type EventType string

const (
	EventGrainSpawned   EventType = "grain_spawned"
	EventBucketExploded EventType = "bucket_exploded"
	EventLevelLoaded    EventType = "level_loaded"
	EventLevelComplete  EventType = "level_complete"
	EventLevelFailed    EventType = "level_failed"
	EventLevelTimedOut  EventType = "level_timed_out"
	EventGameWon        EventType = "game_won"
)

// Event is something the game loop may react to.
type Event struct {
	Type  EventType
	Level int
	// Index is the grain or bucket index, when relevant.
	Index int
	Err   error
}

// EventQueue collects the events of one or more session updates until the
// game loop drains them, in the order they happened.
type EventQueue struct {
	pending []Event
}

// Push records evt behind anything not yet drained.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.pending = append(q.pending, evt)
}

// Drain hands over every pending event, oldest first, and empties the queue.
// It returns nil when nothing happened since the last drain.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	events := q.pending
	q.pending = nil
	return events
}

// Len is the number of events waiting to be drained.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}
