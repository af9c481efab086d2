package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Waiters registered through AfterAt
// fire once Advance moves the current instant past their deadline; a
// waiter anchored at an instant already reached fires immediately.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	waiters []waiter
}

type waiter struct {
	at time.Time
	ch chan time.Time
}

func NewFake(start time.Time) *Fake {
	return &Fake{now: start.UTC()}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *Fake) AfterAt(t time.Time) <-chan time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan time.Time, 1)
	if !t.After(f.now) {
		ch <- f.now
		return ch
	}
	f.waiters = append(f.waiters, waiter{at: t, ch: ch})
	return ch
}

// Advance moves the clock forward and releases every waiter whose deadline
// has been reached. Callbacks run in their own goroutines, not here.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	var due []waiter
	var remaining []waiter
	for _, w := range f.waiters {
		if !w.at.After(f.now) {
			due = append(due, w)
		} else {
			remaining = append(remaining, w)
		}
	}
	f.waiters = remaining
	now := f.now
	f.mu.Unlock()

	for _, w := range due {
		w.ch <- now
	}
}
