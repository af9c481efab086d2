package sink

import (
	"context"
	"log/slog"

	"chat-mock/domain"
	"chat-mock/domain/event"
	"chat-mock/repositories"
)

// SearchSink feeds sent TEXT messages into the full-text index.
// Image and GIF messages carry no searchable text and are skipped.
type SearchSink struct {
	repository repositories.ISearchRepository
	log        *slog.Logger
}

func NewSearchSink(repository repositories.ISearchRepository, log *slog.Logger) SearchSink {
	return SearchSink{repository: repository, log: log}
}

func (s SearchSink) Consume(_ context.Context, e event.DomainEvent) error {
	appended, ok := e.(event.MessageAppended)
	if !ok || appended.Message.Type != domain.TypeText {
		return nil
	}
	return s.repository.Index(appended.ChatKey, appended.Message)
}
