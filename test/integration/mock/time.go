package mock

import (
	"sync"
	"time"
)

// Time is a frozen clock that scenarios move by hand.
type Time struct {
	mu  sync.Mutex
	now time.Time
}

func NewTime(start time.Time) *Time {
	return &Time{now: start}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = currentTime
}

func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = t.now.Add(d)
}

func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.now
}
