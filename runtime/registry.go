package runtime

import (
	"sync"

	"chat-mock/contract"
	"chat-mock/domain"
)

type Set map[string]struct{}

// Registry tracks which observers want events for which chat key.
// It performs a two-step lookup: keyMembers resolves a chat key to observer
// ids, and observers resolves those ids to their sinks, so an observer
// watching several conversations keeps a single sink entry.
type Registry struct {
	mu         sync.RWMutex
	observers  map[string]contract.EventSink
	keyMembers map[domain.ChatKey]Set
}

func NewRegistry() *Registry {
	return &Registry{
		observers:  make(map[string]contract.EventSink),
		keyMembers: make(map[domain.ChatKey]Set),
	}
}

// SinksFor returns the sinks of every observer subscribed to key.
// Returns nil when nobody watches the key.
func (r *Registry) SinksFor(key domain.ChatKey) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.keyMembers[key]
	if !ok {
		return nil
	}
	var active []contract.EventSink
	for observerID := range members {
		if sink, exists := r.observers[observerID]; exists {
			active = append(active, sink)
		}
	}
	return active
}

// Subscribe registers an observer's sink and attaches it to a chat key.
// The empty key subscribes to roster-level events only.
func (r *Registry) Subscribe(observerID string, key domain.ChatKey, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observers[observerID] = sink

	if _, ok := r.keyMembers[key]; !ok {
		r.keyMembers[key] = make(Set)
	}
	r.keyMembers[key][observerID] = struct{}{}
}

// Unsubscribe detaches an observer from a key and drops its sink.
// Empty membership sets are removed so the map does not grow over time.
func (r *Registry) Unsubscribe(observerID string, key domain.ChatKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.observers, observerID)

	if members, ok := r.keyMembers[key]; ok {
		delete(members, observerID)
		if len(members) == 0 {
			delete(r.keyMembers, key)
		}
	}
}
