package observability

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// StatsSnapshot aggregates engine counters for logging and the demo surface.
type StatsSnapshot struct {
	MessagesSent        uint64 `json:"messages_sent"`
	RepliesInjected     uint64 `json:"replies_injected"`
	Delivered           uint64 `json:"delivered"`
	Seen                uint64 `json:"seen"`
	Censored            uint64 `json:"censored"`
	IceBreakerCalls     uint64 `json:"ice_breaker_calls"`
	IceBreakerFallbacks uint64 `json:"ice_breaker_fallbacks"`
}

// Stats collects real-time engine telemetry through atomic counters.
type Stats struct {
	log *slog.Logger

	messagesSent        uint64
	repliesInjected     uint64
	delivered           uint64
	seen                uint64
	censored            uint64
	iceBreakerCalls     uint64
	iceBreakerFallbacks uint64

	LastCheck time.Time
}

func NewStats(log *slog.Logger) *Stats {
	return &Stats{log: log, LastCheck: time.Now()}
}

func (s *Stats) IncrMessagesSent() {
	atomic.AddUint64(&s.messagesSent, 1)
}

func (s *Stats) IncrRepliesInjected() {
	atomic.AddUint64(&s.repliesInjected, 1)
}

func (s *Stats) IncrDelivered() {
	atomic.AddUint64(&s.delivered, 1)
}

func (s *Stats) IncrSeen() {
	atomic.AddUint64(&s.seen, 1)
}

func (s *Stats) IncrCensored() {
	atomic.AddUint64(&s.censored, 1)
}

func (s *Stats) IncrIceBreakerCalls() {
	atomic.AddUint64(&s.iceBreakerCalls, 1)
}

func (s *Stats) IncrIceBreakerFallbacks() {
	atomic.AddUint64(&s.iceBreakerFallbacks, 1)
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		MessagesSent:        atomic.LoadUint64(&s.messagesSent),
		RepliesInjected:     atomic.LoadUint64(&s.repliesInjected),
		Delivered:           atomic.LoadUint64(&s.delivered),
		Seen:                atomic.LoadUint64(&s.seen),
		Censored:            atomic.LoadUint64(&s.censored),
		IceBreakerCalls:     atomic.LoadUint64(&s.iceBreakerCalls),
		IceBreakerFallbacks: atomic.LoadUint64(&s.iceBreakerFallbacks),
	}
}
