package sink

import (
	"context"

	"chat-mock/domain"
	"chat-mock/domain/event"
	"chat-mock/observability"
)

// StatsSink counts the event stream for the telemetry worker.
type StatsSink struct {
	stats *observability.Stats
}

func NewStatsSink(stats *observability.Stats) StatsSink {
	return StatsSink{stats: stats}
}

func (s StatsSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageAppended:
		s.stats.IncrMessagesSent()
	case event.StatusChanged:
		switch evt.Status {
		case domain.StatusDelivered:
			s.stats.IncrDelivered()
		case domain.StatusSeen:
			s.stats.IncrSeen()
		}
	}
	return nil
}
