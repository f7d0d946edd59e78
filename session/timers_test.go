package session

import (
	"testing"
	"time"
)

func TestTimers(t *testing.T) {
	var timers Timers
	now := time.Unix(0, 0)
	if timers.Fired("x", now) {
		t.Fatalf("unarmed timer fired")
	}

	timers.Arm("x", now, time.Second)
	timers.Arm("x", now, 2*time.Second)
	if timers.Fired("x", now.Add(time.Second)) {
		t.Fatalf("re-arming should replace the deadline")
	}
	if rem, ok := timers.Remaining("x", now.Add(time.Second)); !ok || rem != time.Second {
		t.Fatalf("remaining = %v %v", rem, ok)
	}
	if !timers.Fired("x", now.Add(2*time.Second)) {
		t.Fatalf("timer should fire at its deadline")
	}
	if timers.Armed("x") || timers.Fired("x", now.Add(time.Hour)) {
		t.Fatalf("timer should fire once")
	}

	timers.Arm("y", now, 0)
	timers.Disarm("y")
	if timers.Fired("y", now) {
		t.Fatalf("disarmed timer fired")
	}
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	if q.Drain() != nil {
		t.Fatalf("empty queue should drain nil")
	}
	q.Push(Event{Type: EventGrainSpawned})
	q.Push(Event{Type: EventLevelComplete})
	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventGrainSpawned || got[1].Type != EventLevelComplete {
		t.Fatalf("drained %v", got)
	}
	if q.Len() != 0 {
		t.Fatalf("queue not cleared")
	}
	var nilQ *EventQueue
	nilQ.Push(Event{})
}

func TestStateString(t *testing.T) {
	if StateSpawning.String() != "spawning" || State(99).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}
