// Package projection builds local read models from observed events.
// Handles ordering and per-conversation aggregation.
// Does not emit events or interact with the UI directly.
package projection

import (
	"context"
	"sort"
	"sync"

	"chat-mock/domain"
	"chat-mock/domain/event"
)

// Summary is what a conversation list screen needs per conversation:
// the latest message and how many entries still await the session user.
type Summary struct {
	ChatKey     domain.ChatKey
	LastMessage domain.Message
	Total       int
	Unread      int
}

// SessionFunc resolves the current session user at consume time, so the
// projection follows logins and logouts without being rebuilt.
type SessionFunc func() (domain.User, bool)

// Timeline folds MessageAppended / StatusChanged events into per-key
// summaries.
type Timeline struct {
	mu        sync.RWMutex
	session   SessionFunc
	summaries map[domain.ChatKey]*Summary
}

func NewTimeline(session SessionFunc) *Timeline {
	return &Timeline{
		session:   session,
		summaries: make(map[domain.ChatKey]*Summary),
	}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	owner, ok := t.session()
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.MessageAppended:
		s, found := t.summaries[evt.ChatKey]
		if !found {
			s = &Summary{ChatKey: evt.ChatKey}
			t.summaries[evt.ChatKey] = s
		}
		s.LastMessage = evt.Message
		s.Total++
		if evt.Message.ReceiverID == owner.ID {
			s.Unread++
		}
	case event.StatusChanged:
		if evt.Status != domain.StatusSeen || evt.ReceiverID != owner.ID {
			return nil
		}
		if s, found := t.summaries[evt.ChatKey]; found && s.Unread > 0 {
			s.Unread--
		}
	}
	return nil
}

// Summaries returns the projection ordered by most recent activity first.
func (t *Timeline) Summaries() []Summary {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Summary, 0, len(t.summaries))
	for _, s := range t.summaries {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessage.Timestamp.After(out[j].LastMessage.Timestamp)
	})
	return out
}
