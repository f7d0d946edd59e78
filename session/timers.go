package session

import "time"

const (
	timerIntro      = "intro"
	timerStartFlow  = "start-flow"
	timerTransition = "level-transition"
	timerTimeout    = "level-timeout"
	timerExit       = "exit"
)

// Timers holds at most one deadline per name. Deadlines are polled, never
// fired asynchronously.
type Timers struct {
	deadlines map[string]time.Time
}

// Arm sets name to fire at now+d, replacing any earlier deadline.
func (t *Timers) Arm(name string, now time.Time, d time.Duration) {
	if t.deadlines == nil {
		t.deadlines = make(map[string]time.Time)
	}
	t.deadlines[name] = now.Add(d)
}

func (t *Timers) Disarm(name string) {
	delete(t.deadlines, name)
}

func (t *Timers) Armed(name string) bool {
	_, ok := t.deadlines[name]
	return ok
}

// Remaining returns the time left on name.
func (t *Timers) Remaining(name string, now time.Time) (time.Duration, bool) {
	at, ok := t.deadlines[name]
	if !ok {
		return 0, false
	}
	return at.Sub(now), true
}

// Fired reports whether name has expired and disarms it if so.
func (t *Timers) Fired(name string, now time.Time) bool {
	at, ok := t.deadlines[name]
	if !ok || now.Before(at) {
		return false
	}
	delete(t.deadlines, name)
	return true
}
