package projection

import (
	"context"
	"testing"
	"time"

	"chat-mock/domain"
	"chat-mock/domain/event"
	"github.com/stretchr/testify/require"
)

func fixedSession(id string) SessionFunc {
	return func() (domain.User, bool) {
		return domain.User{ID: id, Name: "Alice"}, true
	}
}

func appended(key domain.ChatKey, id, sender, receiver, text string, at time.Time) event.MessageAppended {
	return event.MessageAppended{
		ChatKey: key,
		Message: domain.Message{
			ID:         id,
			SenderID:   sender,
			ReceiverID: receiver,
			Timestamp:  at,
			Status:     domain.StatusSent,
			Type:       domain.TypeText,
			Text:       text,
		},
	}
}

func TestTimeline_TracksLastMessageAndUnread(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(fixedSession("user-1"))
	ctx := context.Background()
	key := domain.ChatKey("user-1-user-2")
	at := time.Now().UTC()

	req.NoError(timeline.Consume(ctx, appended(key, "msg-000001", "user-2", "user-1", "hey", at)))
	req.NoError(timeline.Consume(ctx, appended(key, "msg-000002", "user-2", "user-1", "you there?", at.Add(time.Second))))
	req.NoError(timeline.Consume(ctx, appended(key, "msg-000003", "user-1", "user-2", "here!", at.Add(2*time.Second))))

	summaries := timeline.Summaries()
	req.Len(summaries, 1)
	req.Equal(3, summaries[0].Total)
	req.Equal(2, summaries[0].Unread) // own message doesn't count
	req.Equal("here!", summaries[0].LastMessage.Text)
}

func TestTimeline_SeenEventsDrainUnread(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(fixedSession("user-1"))
	ctx := context.Background()
	key := domain.ChatKey("user-1-user-2")
	at := time.Now().UTC()

	req.NoError(timeline.Consume(ctx, appended(key, "msg-000001", "user-2", "user-1", "hey", at)))
	req.NoError(timeline.Consume(ctx, event.StatusChanged{
		ChatKey:    key,
		MessageID:  "msg-000001",
		ReceiverID: "user-1",
		Status:     domain.StatusSeen,
	}))

	req.Zero(timeline.Summaries()[0].Unread)
}

func TestTimeline_OrdersByRecentActivity(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(fixedSession("user-1"))
	ctx := context.Background()
	at := time.Now().UTC()

	req.NoError(timeline.Consume(ctx, appended("user-1-user-2", "msg-000001", "user-2", "user-1", "older", at)))
	req.NoError(timeline.Consume(ctx, appended("group-1", "msg-000002", "user-3", "group-1", "newer", at.Add(time.Minute))))

	summaries := timeline.Summaries()
	req.Len(summaries, 2)
	req.Equal(domain.ChatKey("group-1"), summaries[0].ChatKey)
}

func TestTimeline_IgnoresEventsWithoutSession(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(func() (domain.User, bool) { return domain.User{}, false })

	req.NoError(timeline.Consume(context.Background(),
		appended("user-1-user-2", "msg-000001", "user-2", "user-1", "hey", time.Now())))
	req.Empty(timeline.Summaries())
}
