package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-mock/contract"
	"chat-mock/domain/event"
)

// EventFanout broadcasts domain events to in-process consumers: the
// permanent sinks (projection, archive, search, stats), any registry
// subscribers for the event's chat key, and the delivery worker's tee
// channel.
//
// Fan-out is best effort with no delivery, ordering, or retry guarantees.
// EventFanout is not a message broker; it exists for side effects and
// observability, not for core domain logic.
type EventFanout struct {
	log         *slog.Logger
	sinks       []contract.EventSink
	registry    contract.IRegistry
	events      chan event.DomainEvent
	delivery    chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, sinks []contract.EventSink,
	registry contract.IRegistry, events, delivery chan event.DomainEvent,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		sinks:       sinks,
		registry:    registry,
		events:      events,
		delivery:    delivery,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.Fanout(ctx, evt)
			select {
			case <-ctx.Done():
				return nil
			case w.delivery <- evt:
			}
		}
	}
}

// Fanout pushes one event into every permanent sink and every registry
// subscriber of its key. A slow sink only gets sinkTimeout of patience.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	targets := w.sinks
	if subscribed := w.registry.SinksFor(evt.Key()); len(subscribed) > 0 {
		targets = append(append([]contract.EventSink{}, targets...), subscribed...)
	}

	for _, sink := range targets {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink rejected event", "error", err)
		}
		cancel()
	}
}
