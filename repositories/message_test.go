package repositories

import (
	"log/slog"
	"testing"
	"time"

	"chat-mock/domain"
	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func archived(key domain.ChatKey, id, sender, text string, at time.Time) ArchivedMessage {
	return ArchivedMessage{
		ID:         id,
		ChatKey:    key,
		SenderID:   sender,
		ReceiverID: "user-2",
		At:         at,
		Status:     domain.StatusSent,
		Type:       domain.TypeText,
		Text:       text,
	}
}

func TestMessageRepository_StoreAndGetNewestFirst(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	key := domain.ChatKey("user-1-user-2")
	at := time.Now().UTC()
	stored := []ArchivedMessage{
		archived(key, "msg-000001", "user-1", "first", at),
		archived(key, "msg-000002", "user-2", "second", at.Add(1*time.Minute)),
		archived(key, "msg-000003", "user-1", "third", at.Add(2*time.Minute)),
	}
	for _, am := range stored {
		req.NoError(repository.StoreMessage(am))
	}

	fetched, _, err := repository.GetMessages(key, nil)
	req.NoError(err)
	req.Len(fetched, 3)
	req.Equal("third", fetched[0].Text)
	req.Equal("first", fetched[2].Text)
}

func TestMessageRepository_LimitAndCursor(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), lo.ToPtr(2))

	key := domain.ChatKey("user-1-user-2")
	at := time.Now().UTC()
	req.NoError(repository.StoreMessage(archived(key, "msg-000001", "user-1", "first", at)))
	req.NoError(repository.StoreMessage(archived(key, "msg-000002", "user-2", "second", at.Add(time.Minute))))
	req.NoError(repository.StoreMessage(archived(key, "msg-000003", "user-1", "third", at.Add(2*time.Minute))))

	page, cursor, err := repository.GetMessages(key, nil)
	req.NoError(err)
	req.Len(page, 2)
	req.NotNil(cursor)

	nextPage, _, err := repository.GetMessages(key, cursor)
	req.NoError(err)
	req.Len(nextPage, 1)
	req.Equal("first", nextPage[0].Text)
}

func TestMessageRepository_KeysPartitionConversations(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	at := time.Now().UTC()
	req.NoError(repository.StoreMessage(archived("user-1-user-2", "msg-000001", "user-1", "private", at)))
	req.NoError(repository.StoreMessage(archived("group-1", "msg-000002", "user-1", "to the group", at)))

	private, _, err := repository.GetMessages("user-1-user-2", nil)
	req.NoError(err)
	req.Len(private, 1)

	group, _, err := repository.GetMessages("group-1", nil)
	req.NoError(err)
	req.Len(group, 1)
	req.Equal("to the group", group[0].Text)
}

func TestMessageRepository_UpdateStatusRewritesEntry(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	key := domain.ChatKey("user-1-user-2")
	at := time.Now().UTC()
	req.NoError(repository.StoreMessage(archived(key, "msg-000001", "user-1", "hello", at)))

	req.NoError(repository.UpdateStatus(key, "msg-000001", domain.StatusDelivered))

	fetched, _, err := repository.GetMessages(key, nil)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal(domain.StatusDelivered, fetched[0].Status)
	req.Equal("hello", fetched[0].Text)

	// Unknown ids are a silent no-op
	req.NoError(repository.UpdateStatus(key, "msg-999999", domain.StatusSeen))
}
