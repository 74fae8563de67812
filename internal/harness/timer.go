package harness

import (
	"fmt"
	"time"
)

// Timer provides simple wall-clock timing for benchmark trials.
type Timer struct {
	start    time.Time
	name     string
	duration time.Duration
}

// NewTimer creates a started timer with the given name.
func NewTimer(name string) *Timer {
	return &Timer{
		name:  name,
		start: time.Now(),
	}
}

// Stop stops the timer and returns the elapsed duration.
func (t *Timer) Stop() time.Duration {
	t.duration = time.Since(t.start)
	return t.duration
}

// Duration returns the recorded duration (only valid after Stop).
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// String returns a formatted representation of the timer.
func (t *Timer) String() string {
	return fmt.Sprintf("%s: %v", t.name, t.duration)
}
