//go:generate go run go.uber.org/mock/mockgen -source=ledger.go -destination=../mocks/mock_ledger.go -package=mocks
package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"chat-mock/clock"
	"chat-mock/domain"
	"chat-mock/domain/event"
)

type ILedger interface {
	Append(key domain.ChatKey, draft domain.Message) (domain.Message, []event.DomainEvent)
	ListFor(key domain.ChatKey) []domain.Message
	SetStatus(key domain.ChatKey, messageID string, status domain.MessageStatus) []event.DomainEvent
	MarkSeen(key domain.ChatKey, viewerID string) []event.DomainEvent
}

// Ledger owns every conversation partition for the process lifetime.
// Mutators return the domain events they produced so the caller can feed
// them into the fanout pipeline; reads return snapshots.
type Ledger struct {
	mu            sync.Mutex
	log           *slog.Logger
	clk           clock.Clock
	conversations map[domain.ChatKey]*domain.Conversation
	seq           uint64
}

func New(log *slog.Logger, clk clock.Clock) *Ledger {
	return &Ledger{
		log:           log,
		clk:           clk,
		conversations: make(map[domain.ChatKey]*domain.Conversation),
	}
}

// Append assigns the id and timestamp, forces status SENT, and stores the
// message as the trailing entry of its conversation. Message ids are
// zero-padded sequence numbers, so later ids sort after earlier ones.
func (l *Ledger) Append(key domain.ChatKey, draft domain.Message) (domain.Message, []event.DomainEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	conv, ok := l.conversations[key]
	if !ok {
		conv = domain.NewConversation(key)
		l.conversations[key] = conv
	}

	l.seq++
	draft.ID = fmt.Sprintf("msg-%06d", l.seq)
	draft.Timestamp = l.clk.Now()
	draft.Status = domain.StatusSent
	conv.Append(draft)

	l.log.Debug("Message appended", "key", key, "id", draft.ID, "type", draft.Type)
	return draft, []event.DomainEvent{event.MessageAppended{ChatKey: key, Message: draft}}
}

// ListFor returns the current snapshot of a conversation. Unseen keys yield
// an empty sequence, not an error.
func (l *Ledger) ListFor(key domain.ChatKey) []domain.Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	conv, ok := l.conversations[key]
	if !ok {
		return []domain.Message{}
	}
	return conv.Snapshot()
}

// SetStatus advances one message. Unknown keys or ids and non-forward
// transitions are silent no-ops producing no events.
func (l *Ledger) SetStatus(key domain.ChatKey, messageID string, status domain.MessageStatus) []event.DomainEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	conv, ok := l.conversations[key]
	if !ok {
		return nil
	}
	updated, changed := conv.SetStatus(messageID, status)
	if !changed {
		return nil
	}
	return []event.DomainEvent{event.StatusChanged{
		ChatKey:    key,
		MessageID:  updated.ID,
		ReceiverID: updated.ReceiverID,
		Status:     updated.Status,
	}}
}

// MarkSeen bulk-advances to SEEN every message addressed to the viewer.
// Already-SEEN entries are skipped, keeping the operation idempotent.
func (l *Ledger) MarkSeen(key domain.ChatKey, viewerID string) []event.DomainEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	conv, ok := l.conversations[key]
	if !ok {
		return nil
	}

	var events []event.DomainEvent
	for _, m := range conv.MarkSeen(viewerID) {
		events = append(events, event.StatusChanged{
			ChatKey:    key,
			MessageID:  m.ID,
			ReceiverID: m.ReceiverID,
			Status:     m.Status,
		})
	}
	return events
}
