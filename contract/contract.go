//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"chat-mock/domain"
	"chat-mock/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself.
// Can be silly, focused. The supervisor handles panics and restarts.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes domain events. Sinks are the only way state changes
// leave the core: projections, storage, search, and UI observers all
// implement this.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry is the observer surface: consumers subscribe a sink per chat
// key (or the empty key for roster-level events) instead of relying on an
// ambient re-render.
type IRegistry interface {
	SinksFor(key domain.ChatKey) []EventSink
	Subscribe(observerID string, key domain.ChatKey, sink EventSink)
	Unsubscribe(observerID string, key domain.ChatKey)
}

// IScheduler defers work on a single task queue driven by a clock.
// Scheduled tasks are best-effort: they fire unless the process ends first,
// and there is no cancellation.
type IScheduler interface {
	Schedule(name string, delay time.Duration, fn func())
}

// RosterReader is the read-side of the roster used by the delivery
// simulator to decide whether a synthetic reply is warranted.
type RosterReader interface {
	Session() (domain.User, bool)
	User(id string) (domain.User, bool)
}
