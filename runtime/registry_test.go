package runtime

import (
	"context"
	"testing"

	"chat-mock/domain"
	"chat-mock/domain/event"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type nopSink struct{ id int }

func (s nopSink) Consume(_ context.Context, _ event.DomainEvent) error { return nil }

func TestRegistry_SubscribeOneKeyOneObserver(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	observerID := uuid.NewString()
	key := domain.ChatKey("user-1-user-2")
	sink := nopSink{id: 1}

	// Given no observer is registered
	req.Empty(registry.SinksFor(key))

	// When an observer subscribes to a chat key
	registry.Subscribe(observerID, key, sink)

	// Then its sink is returned for that key only
	req.Len(registry.SinksFor(key), 1)
	req.Contains(registry.SinksFor(key), sink)
	req.Empty(registry.SinksFor(domain.ChatKey("group-1")))
}

func TestRegistry_SubscribeOneKeyMultipleObservers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	key := domain.ChatKey("group-1")
	sink1 := nopSink{id: 1}
	sink2 := nopSink{id: 2}

	registry.Subscribe(uuid.NewString(), key, sink1)
	registry.Subscribe(uuid.NewString(), key, sink2)

	sinks := registry.SinksFor(key)
	req.Len(sinks, 2)
	req.Contains(sinks, sink1)
	req.Contains(sinks, sink2)
}

func TestRegistry_Unsubscribe(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	observerID := uuid.NewString()
	key := domain.ChatKey("user-1-user-2")

	registry.Subscribe(observerID, key, nopSink{})
	registry.Unsubscribe(observerID, key)

	req.Empty(registry.SinksFor(key))
}

func TestRegistry_EmptyKeySubscription(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sink := nopSink{id: 7}

	// The empty key carries roster-level events only.
	registry.Subscribe(uuid.NewString(), "", sink)

	req.Contains(registry.SinksFor(""), sink)
	req.Empty(registry.SinksFor(domain.ChatKey("user-1-user-2")))
}
