package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"chat-mock/clock"
)

type task struct {
	name string
	due  time.Time
	fn   func()
}

// Scheduler runs deferred tasks on a single goroutine, ordered by due time.
// Tasks have no cancellation: once scheduled they fire unless the process
// stops first. Driving it through clock.Clock keeps the delivery delays
// testable with a fake clock.
type Scheduler struct {
	mu    sync.Mutex
	log   *slog.Logger
	clk   clock.Clock
	tasks []task
	wake  chan struct{}
}

func NewScheduler(log *slog.Logger, clk clock.Clock) *Scheduler {
	return &Scheduler{
		log:  log,
		clk:  clk,
		wake: make(chan struct{}, 1),
	}
}

// Schedule queues fn to run once delay has elapsed. Safe to call from any
// goroutine, including from a running task.
func (s *Scheduler) Schedule(name string, delay time.Duration, fn func()) {
	due := s.clk.Now().Add(delay)

	s.mu.Lock()
	at := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due.After(due)
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[at+1:], s.tasks[at:])
	s.tasks[at] = task{name: name, due: due, fn: fn}
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Pending reports how many tasks have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Run drains the queue until the context ends. Due tasks run inline on this
// goroutine, so a task must not block for long.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		s.mu.Lock()
		if len(s.tasks) == 0 {
			s.mu.Unlock()
			select {
			case <-ctx.Done():
				return nil
			case <-s.wake:
			}
			continue
		}

		next := s.tasks[0]
		if !next.due.After(s.clk.Now()) {
			s.tasks = s.tasks[1:]
			s.mu.Unlock()
			s.log.Debug(fmt.Sprintf("Running scheduled task: %s", next.name))
			next.fn()
			continue
		}
		s.mu.Unlock()

		// Anchored at the absolute due instant: a clock advance landing
		// between the check above and this registration still releases it.
		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
			// An earlier task may have been queued, re-check the head.
		case <-s.clk.AfterAt(next.due):
		}
	}
}
