//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"chat-mock/ai"
	"chat-mock/contract"
	"chat-mock/domain"
	"chat-mock/domain/event"
	"chat-mock/domain/mimetypes"
	"chat-mock/domain/search"
	"chat-mock/errors"
	"chat-mock/projection"
	"chat-mock/repositories"
	"chat-mock/roster"
	"chat-mock/runtime"
)

type IChatService interface {
	SendText(peerOrGroupID, text string) error
	SendImage(peerOrGroupID, contentURL string) error
	SendGIF(peerOrGroupID, contentURL string) error
	SendAttachment(peerOrGroupID string, data []byte) error
	Messages(peerOrGroupID string) ([]domain.Message, domain.ChatKey, error)
	MarkViewed(peerOrGroupID string) error
	History(peerOrGroupID string, cursor *string) ([]domain.Message, *string, error)
	Search(ctx context.Context, input string) ([]repositories.SearchHit, uint64, error)
	IceBreaker(ctx context.Context) string
	Summaries() []projection.Summary
	Watch(observerID, peerOrGroupID string, sink contract.EventSink) error
	Unwatch(observerID, peerOrGroupID string) error
}

// ChatService is the application surface a chat screen talks to. Sends are
// fire and forget: the command enters the pipeline and the caller observes
// the outcome through events or a later snapshot.
type ChatService struct {
	store            roster.IStore
	orchestrator     *runtime.Orchestrator
	searchRepository repositories.ISearchRepository
	timeline         *projection.Timeline
	suggester        ai.Suggester
}

func NewChatService(store roster.IStore, o *runtime.Orchestrator,
	searchRepository repositories.ISearchRepository,
	timeline *projection.Timeline, suggester ai.Suggester) *ChatService {
	return &ChatService{
		store:            store,
		orchestrator:     o,
		searchRepository: searchRepository,
		timeline:         timeline,
		suggester:        suggester,
	}
}

// resolve turns a peer or group id into a conversation key, rejecting ids
// that match nothing in the roster so callers can redirect to the list.
func (s *ChatService) resolve(peerOrGroupID string) (domain.User, domain.ChatKey, error) {
	session, ok := s.store.Session()
	if !ok {
		return domain.User{}, "", errors.ErrNoActiveSession
	}
	if domain.IsGroupID(peerOrGroupID) {
		if _, known := s.store.Group(peerOrGroupID); !known {
			return domain.User{}, "", errors.ErrUnknownConversation
		}
	} else if _, known := s.store.User(peerOrGroupID); !known {
		return domain.User{}, "", errors.ErrUnknownConversation
	}
	return session, domain.ResolveKey(session.ID, peerOrGroupID), nil
}

func (s *ChatService) SendText(peerOrGroupID, text string) error {
	session, _, err := s.resolve(peerOrGroupID)
	if err != nil {
		return err
	}
	s.orchestrator.Dispatch(domain.SendMessageCommand{
		SenderID:   session.ID,
		ReceiverID: peerOrGroupID,
		Type:       domain.TypeText,
		Text:       text,
	})
	return nil
}

func (s *ChatService) SendImage(peerOrGroupID, contentURL string) error {
	return s.sendContent(peerOrGroupID, domain.TypeImage, contentURL)
}

func (s *ChatService) SendGIF(peerOrGroupID, contentURL string) error {
	return s.sendContent(peerOrGroupID, domain.TypeGIF, contentURL)
}

// SendAttachment sniffs the payload, refuses anything that is not an
// image, and inlines the bytes as a data URL.
func (s *ChatService) SendAttachment(peerOrGroupID string, data []byte) error {
	msgType, mime, err := mimetypes.DetectAttachmentType(data)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	return s.sendContent(peerOrGroupID, msgType, url)
}

func (s *ChatService) sendContent(peerOrGroupID string, msgType domain.MessageType, contentURL string) error {
	session, _, err := s.resolve(peerOrGroupID)
	if err != nil {
		return err
	}
	s.orchestrator.Dispatch(domain.SendMessageCommand{
		SenderID:   session.ID,
		ReceiverID: peerOrGroupID,
		Type:       msgType,
		ContentURL: contentURL,
	})
	return nil
}

// Messages returns the live snapshot of one conversation. A fresh
// conversation yields an empty slice, not an error.
func (s *ChatService) Messages(peerOrGroupID string) ([]domain.Message, domain.ChatKey, error) {
	_, key, err := s.resolve(peerOrGroupID)
	if err != nil {
		return nil, "", err
	}
	return s.orchestrator.Messages(key), key, nil
}

// MarkViewed signals that the conversation became active. Two viewed
// signals go out: one for the session user, clearing their unread side,
// and one for the simulated peer, who notices the session user's messages
// in return. Groups carry no receipts, so the signal is swallowed for them.
func (s *ChatService) MarkViewed(peerOrGroupID string) error {
	session, key, err := s.resolve(peerOrGroupID)
	if err != nil {
		return err
	}
	if domain.IsGroupID(peerOrGroupID) {
		return nil
	}
	s.orchestrator.Emit(event.ConversationViewed{ChatKey: key, ViewerID: session.ID})
	s.orchestrator.Emit(event.ConversationViewed{ChatKey: key, ViewerID: peerOrGroupID})
	return nil
}

// History pages through the archived copy of a conversation, newest first.
func (s *ChatService) History(peerOrGroupID string, cursor *string) ([]domain.Message, *string, error) {
	_, key, err := s.resolve(peerOrGroupID)
	if err != nil {
		return nil, nil, err
	}
	return s.orchestrator.History(key, cursor)
}

// Search parses compose-box input ("/find dinner --chat k --limit 5") and
// queries the full-text index.
func (s *ChatService) Search(ctx context.Context, input string) ([]repositories.SearchHit, uint64, error) {
	query := search.NewQuery(input)
	return s.searchRepository.Search(ctx, query.Terms, query.ChatKey, query.Limit)
}

// IceBreaker asks the suggestion backend for a conversation opener.
// Failures are absorbed inside the suggester; this never errors.
func (s *ChatService) IceBreaker(ctx context.Context) string {
	return s.suggester.Suggest(ctx)
}

// Summaries lists per-conversation aggregates for the roster screen.
func (s *ChatService) Summaries() []projection.Summary {
	return s.timeline.Summaries()
}

// Watch subscribes an observer sink to one conversation's events.
func (s *ChatService) Watch(observerID, peerOrGroupID string, sink contract.EventSink) error {
	_, key, err := s.resolve(peerOrGroupID)
	if err != nil {
		return err
	}
	s.orchestrator.Subscribe(observerID, key, sink)
	return nil
}

func (s *ChatService) Unwatch(observerID, peerOrGroupID string) error {
	_, key, err := s.resolve(peerOrGroupID)
	if err != nil {
		return err
	}
	s.orchestrator.Unsubscribe(observerID, key)
	return nil
}
