package domain

// Command is a mutation request routed through the runtime pipeline.
// All ledger writes funnel through commands so moderation and event fanout
// see a single ordered stream.
type Command interface {
	Key() ChatKey
}

// SendMessageCommand appends a new message to the conversation between
// SenderID and ReceiverID. Exactly one of Text / ContentURL must be set,
// matching Type.
type SendMessageCommand struct {
	SenderID   string
	ReceiverID string
	Type       MessageType
	Text       string
	ContentURL string
}

func (c SendMessageCommand) Key() ChatKey {
	return ResolveKey(c.SenderID, c.ReceiverID)
}

// SetStatusCommand advances the status of a single message.
type SetStatusCommand struct {
	ChatKey   ChatKey
	MessageID string
	Status    MessageStatus
}

func (c SetStatusCommand) Key() ChatKey {
	return c.ChatKey
}

// MarkSeenCommand bulk-advances to SEEN every message in the conversation
// addressed to ViewerID.
type MarkSeenCommand struct {
	ChatKey  ChatKey
	ViewerID string
}

func (c MarkSeenCommand) Key() ChatKey {
	return c.ChatKey
}
