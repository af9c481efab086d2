package sink

import (
	"context"
	"fmt"
	"log/slog"

	"chat-mock/domain/event"
	"chat-mock/repositories"
)

// ArchiveSink mirrors ledger mutations into the badger-backed history so
// cursor pagination sees the same statuses as the live snapshot.
type ArchiveSink struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
}

func NewArchiveSink(repository repositories.IMessageRepository, log *slog.Logger) ArchiveSink {
	return ArchiveSink{repository: repository, log: log}
}

func (s ArchiveSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageAppended:
		return s.repository.StoreMessage(repositories.FromMessage(evt.ChatKey, evt.Message))
	case event.StatusChanged:
		return s.repository.UpdateStatus(evt.ChatKey, evt.MessageID, evt.Status)
	default:
		s.log.Debug(fmt.Sprintf("Archive ignores event: %T", evt))
		return nil
	}
}
