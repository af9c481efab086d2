// Package domain contains core concepts of the mock chat system.
// This file defines Message values and their status lifecycle.
package domain

import (
	"fmt"
	"time"
)

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusSeen      MessageStatus = "seen"
)

// rank orders statuses along the delivery lifecycle.
func (s MessageStatus) rank() int {
	switch s {
	case StatusSent:
		return 0
	case StatusDelivered:
		return 1
	case StatusSeen:
		return 2
	default:
		return -1
	}
}

// CanAdvanceTo reports whether moving to next is a strictly forward
// transition. Status never moves backward and SEEN is terminal.
func (s MessageStatus) CanAdvanceTo(next MessageStatus) bool {
	return next.rank() > s.rank() && s.rank() >= 0
}

type MessageType string

const (
	TypeText  MessageType = "text"
	TypeImage MessageType = "image"
	TypeGIF   MessageType = "gif"
)

// Message is a ledger entry. Entries are never deleted or edited; only the
// Status field is mutated, in place, by the delivery simulation.
//
// Invariant: exactly one of Text / ContentURL is populated, chosen by Type.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string // a user id for 1:1, a group id for group chat
	Timestamp  time.Time
	Status     MessageStatus
	Type       MessageType
	Text       string
	ContentURL string
}

func (m Message) Validate() error {
	switch m.Type {
	case TypeText:
		if m.Text == "" || m.ContentURL != "" {
			return fmt.Errorf("text message must carry text and no content url")
		}
	case TypeImage, TypeGIF:
		if m.ContentURL == "" || m.Text != "" {
			return fmt.Errorf("%s message must carry a content url and no text", m.Type)
		}
	default:
		return fmt.Errorf("unknown message type %q", m.Type)
	}
	return nil
}
