package event

import (
	"chat-mock/domain"
)

// DomainEvent is a fact observed after a state mutation. Events are fanned
// out to projections, storage, search, registry subscribers, and the
// delivery simulator.
type DomainEvent interface {
	Key() domain.ChatKey
}

// MessageAppended fires once per ledger append, after moderation.
type MessageAppended struct {
	ChatKey domain.ChatKey
	Message domain.Message
}

func (e MessageAppended) Key() domain.ChatKey {
	return e.ChatKey
}

// StatusChanged fires when a message actually transitioned; no-op status
// writes produce no event.
type StatusChanged struct {
	ChatKey    domain.ChatKey
	MessageID  string
	ReceiverID string
	Status     domain.MessageStatus
}

func (e StatusChanged) Key() domain.ChatKey {
	return e.ChatKey
}

// ConversationViewed is the UI signal that a conversation became active on
// the viewer's side. The delivery simulator turns it into a deferred bulk
// SEEN transition.
type ConversationViewed struct {
	ChatKey  domain.ChatKey
	ViewerID string
}

func (e ConversationViewed) Key() domain.ChatKey {
	return e.ChatKey
}

// RosterChanged fires on login, logout, and profile updates. It carries no
// chat key; only global subscribers observe it.
type RosterChanged struct {
	Reason string
}

func (e RosterChanged) Key() domain.ChatKey {
	return ""
}
