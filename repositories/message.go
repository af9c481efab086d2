//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"chat-mock/domain"
	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	StoreMessage(message ArchivedMessage) error
	UpdateStatus(key domain.ChatKey, messageID string, status domain.MessageStatus) error
	GetMessages(key domain.ChatKey, cursor *string) ([]ArchivedMessage, *string, error)
}

// MessageRepository keeps the message history in BadgerDB. The database is
// opened in-memory: the archive exists for cursor pagination within one
// session, never for durability.
type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// ArchivedMessage is the storage-layer representation of a ledger entry.
type ArchivedMessage struct {
	ID         string               `json:"id"`
	ChatKey    domain.ChatKey       `json:"chat_key"`
	SenderID   string               `json:"sender_id"`
	ReceiverID string               `json:"receiver_id"`
	At         time.Time            `json:"at"`
	Status     domain.MessageStatus `json:"status"`
	Type       domain.MessageType   `json:"type"`
	Text       string               `json:"text,omitempty"`
	ContentURL string               `json:"content_url,omitempty"`
}

// StoreMessage persists one message. The key is formatted as
// "msg:{chat_key}:{timestamp_padded}:{message_id}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Keep the message id available for in-place status rewrites.
func (m MessageRepository) StoreMessage(message ArchivedMessage) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.ChatKey,
		message.At.UnixNano(),
		message.ID,
	)
	value, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// UpdateStatus rewrites the stored copy of one message with its new status.
// Missing entries are a no-op; the live ledger stays authoritative.
func (m MessageRepository) UpdateStatus(chatKey domain.ChatKey, messageID string, status domain.MessageStatus) error {
	prefix := []byte(fmt.Sprintf("msg:%s:", chatKey))
	suffix := []byte(":" + messageID)

	return m.db.Update(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if !bytes.HasSuffix(item.Key(), suffix) {
				continue
			}
			var archived ArchivedMessage
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &archived)
			})
			if err != nil {
				return err
			}
			archived.Status = status
			value, err := json.Marshal(archived)
			if err != nil {
				return err
			}
			return txn.Set(item.KeyCopy(nil), value)
		}
		return nil
	})
}

// GetMessages retrieves a conversation's history using a reverse prefix
// scan, newest first. Thanks to the padded timestamp in the key, entries are
// naturally sorted by time. It stops once the configured limitMessages is
// reached and returns a cursor for the next page.
func (m MessageRepository) GetMessages(chatKey domain.ChatKey, cursor *string) ([]ArchivedMessage, *string, error) {
	var rawValues [][]byte
	var lastKey string

	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", chatKey)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible timestamp, then walk backwards
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(rawValues) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limitMessages))
				break
			}
			item := it.Item()
			// Memorize the cursor part of the actual key
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				rawValues = append(rawValues, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]ArchivedMessage, 0, len(rawValues))
	for _, raw := range rawValues {
		var archived ArchivedMessage
		if err = json.Unmarshal(raw, &archived); err != nil {
			return nil, nil, err
		}
		messages = append(messages, archived)
	}
	return messages, &lastKey, nil
}

// FromMessage converts a ledger entry to its storage representation.
func FromMessage(key domain.ChatKey, m domain.Message) ArchivedMessage {
	return ArchivedMessage{
		ID:         m.ID,
		ChatKey:    key,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		At:         m.Timestamp,
		Status:     m.Status,
		Type:       m.Type,
		Text:       m.Text,
		ContentURL: m.ContentURL,
	}
}
