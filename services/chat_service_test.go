package services

import (
	"context"
	"testing"
	"time"

	"chat-mock/ai"
	"chat-mock/clock"
	"chat-mock/domain"
	"chat-mock/errors"
	"chat-mock/ledger"
	"chat-mock/observability"
	"chat-mock/projection"
	"chat-mock/repositories"
	"chat-mock/roster"
	"chat-mock/runtime"
	"chat-mock/runtime/workers"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"log/slog"
)

type chatFixture struct {
	store   *roster.Store
	service *ChatService
	search  *repositories.SearchRepository
}

func newChatFixture(t *testing.T) *chatFixture {
	t.Helper()
	log := slog.Default()
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	store := roster.NewStore(log, clk)
	led := ledger.New(log, clk)
	stats := observability.NewStats(log)
	searchRepo := repositories.NewSearchRepository(writer, log)
	messageRepo := repositories.NewMessageRepository(db, log, nil)

	orch := runtime.NewOrchestrator(log, runtime.DefaultConfig(), store, led,
		messageRepo, workers.NewSupervisor(log), runtime.NewRegistry(),
		runtime.NewScheduler(log, clk), stats)

	timeline := projection.NewTimeline(store.Session)
	service := NewChatService(store, orch, searchRepo, timeline, ai.Disabled{})
	return &chatFixture{store: store, service: service, search: searchRepo}
}

func login(t *testing.T, store *roster.Store) domain.User {
	t.Helper()
	user, err := store.Login(roster.ProfileDraft{
		Name: "Alice", Age: 30, Country: "France", City: "Paris", Gender: "Female",
	})
	require.NoError(t, err)
	return user
}

func TestChatService_SendRequiresSession(t *testing.T) {
	fx := newChatFixture(t)
	err := fx.service.SendText("user-2", "hi")
	require.ErrorIs(t, err, errors.ErrNoActiveSession)
}

func TestChatService_UnknownConversation(t *testing.T) {
	req := require.New(t)
	fx := newChatFixture(t)
	login(t, fx.store)

	req.ErrorIs(fx.service.SendText("user-999", "hi"), errors.ErrUnknownConversation)
	req.ErrorIs(fx.service.SendText("group-999", "hi"), errors.ErrUnknownConversation)

	_, _, err := fx.service.Messages("user-999")
	req.ErrorIs(err, errors.ErrUnknownConversation)
	req.ErrorIs(fx.service.MarkViewed("group-999"), errors.ErrUnknownConversation)
}

func TestChatService_KnownTargetsAccepted(t *testing.T) {
	req := require.New(t)
	fx := newChatFixture(t)
	login(t, fx.store)

	req.NoError(fx.service.SendText("user-2", "hi"))
	req.NoError(fx.service.SendGIF("group-1", domain.SeedGIFs()[0]))

	messages, key, err := fx.service.Messages("user-2")
	req.NoError(err)
	req.NotEmpty(key)
	// Pipeline is not running in this fixture, so the snapshot is empty.
	req.Empty(messages)
}

func TestChatService_AttachmentSniffing(t *testing.T) {
	req := require.New(t)
	fx := newChatFixture(t)
	login(t, fx.store)

	gif := []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
	req.NoError(fx.service.SendAttachment("user-2", gif))

	text := []byte("just some plain text, not an image")
	req.ErrorIs(fx.service.SendAttachment("user-2", text), errors.ErrUnsupportedAttachment)
}

func TestChatService_SearchParsesComposeInput(t *testing.T) {
	req := require.New(t)
	fx := newChatFixture(t)
	session := login(t, fx.store)
	key := domain.ResolveKey(session.ID, "user-2")

	req.NoError(fx.search.Index(key, domain.Message{
		ID: "msg-000001", SenderID: session.ID, ReceiverID: "user-2",
		Type: domain.TypeText, Text: "dinner plans tonight",
	}))

	hits, total, err := fx.service.Search(context.Background(), "/find dinner --chat "+string(key))
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Len(hits, 1)
	req.Equal("msg-000001", hits[0].MessageID)
}

func TestChatService_IceBreakerNeverErrors(t *testing.T) {
	fx := newChatFixture(t)
	require.Equal(t, ai.FallbackOnEmpty, fx.service.IceBreaker(context.Background()))
}
