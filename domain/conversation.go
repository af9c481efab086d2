package domain

// Conversation is one ledger partition: an append-only ordered log of
// messages. Append order is chronological order; status mutation never
// reorders entries.
type Conversation struct {
	Key      ChatKey
	messages []Message
}

func NewConversation(key ChatKey) *Conversation {
	return &Conversation{Key: key}
}

func (c *Conversation) Append(m Message) {
	c.messages = append(c.messages, m)
}

// Snapshot returns a copy of the current log so callers can iterate without
// holding any lock owned by the ledger.
func (c *Conversation) Snapshot() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// SetStatus applies a forward-only status transition to one entry.
// Returns the updated message and true when a transition actually happened;
// unknown ids and backward or repeated transitions are no-ops.
func (c *Conversation) SetStatus(messageID string, next MessageStatus) (Message, bool) {
	for i := range c.messages {
		if c.messages[i].ID != messageID {
			continue
		}
		if !c.messages[i].Status.CanAdvanceTo(next) {
			return Message{}, false
		}
		c.messages[i].Status = next
		return c.messages[i], true
	}
	return Message{}, false
}

// MarkSeen bulk-advances every message addressed to viewerID that is not
// already SEEN. Returns the entries that transitioned.
func (c *Conversation) MarkSeen(viewerID string) []Message {
	var changed []Message
	for i := range c.messages {
		if c.messages[i].ReceiverID != viewerID {
			continue
		}
		if !c.messages[i].Status.CanAdvanceTo(StatusSeen) {
			continue
		}
		c.messages[i].Status = StatusSeen
		changed = append(changed, c.messages[i])
	}
	return changed
}
