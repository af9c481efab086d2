package workers

import (
	"context"
	"testing"
	"time"

	"chat-mock/domain"
	"chat-mock/moderation"
	"chat-mock/observability"
	"github.com/stretchr/testify/require"
	"log/slog"
)

func moderationFixture(t *testing.T) (chan domain.Command, chan domain.Command, *observability.Stats) {
	t.Helper()
	moderator, err := moderation.NewModerator([]string{"idiot", "loser"}, '*')
	require.NoError(t, err)

	raw := make(chan domain.Command, 8)
	sanitized := make(chan domain.Command, 8)
	stats := observability.NewStats(slog.Default())
	worker := NewModerationWorker(moderator, stats, raw,
		[]chan domain.Command{sanitized}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = worker.Run(ctx) }()

	return raw, sanitized, stats
}

func TestModeration_CensorsTextCommands(t *testing.T) {
	req := require.New(t)
	raw, sanitized, stats := moderationFixture(t)

	raw <- domain.SendMessageCommand{
		SenderID: "user-1", ReceiverID: "user-2",
		Type: domain.TypeText, Text: "you idiot",
	}

	select {
	case cmd := <-sanitized:
		send, ok := cmd.(domain.SendMessageCommand)
		req.True(ok)
		req.Equal("you *****", send.Text)
	case <-time.After(time.Second):
		req.Fail("sanitized command never arrived")
	}
	req.Equal(uint64(1), stats.Snapshot().Censored)
}

func TestModeration_CleanTextPassesUnchanged(t *testing.T) {
	req := require.New(t)
	raw, sanitized, stats := moderationFixture(t)

	raw <- domain.SendMessageCommand{
		SenderID: "user-1", ReceiverID: "user-2",
		Type: domain.TypeText, Text: "hello there",
	}

	select {
	case cmd := <-sanitized:
		req.Equal("hello there", cmd.(domain.SendMessageCommand).Text)
	case <-time.After(time.Second):
		req.Fail("command never arrived")
	}
	req.Zero(stats.Snapshot().Censored)
}

func TestModeration_NonTextCommandsPassThrough(t *testing.T) {
	req := require.New(t)
	raw, sanitized, _ := moderationFixture(t)

	cmd := domain.SetStatusCommand{
		ChatKey: "user-1-user-2", MessageID: "msg-000001",
		Status: domain.StatusDelivered,
	}
	raw <- cmd

	select {
	case got := <-sanitized:
		req.Equal(cmd, got)
	case <-time.After(time.Second):
		req.Fail("command never arrived")
	}
}
