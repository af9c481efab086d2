package workers

import (
	"context"
	"log/slog"

	"chat-mock/contract"
	"chat-mock/domain"
	"chat-mock/domain/event"
	"chat-mock/ledger"
)

// Ensure *PoolUnitWorker implements the contract.Worker interface at
// compile time.
var _ contract.Worker = (*PoolUnitWorker)(nil)

// PoolUnitWorker applies sanitized commands to the ledger and forwards the
// resulting domain events to the fanout. Each unit owns its command
// channel: the moderation stage shards commands by conversation key, so
// every conversation lands on one unit and its appends stay ordered.
type PoolUnitWorker struct {
	ledger   ledger.ILedger
	commands chan domain.Command
	events   chan event.DomainEvent
	log      *slog.Logger
}

func NewPoolUnitWorker(
	ledger ledger.ILedger,
	commands chan domain.Command,
	events chan event.DomainEvent,
	log *slog.Logger) *PoolUnitWorker {
	return &PoolUnitWorker{
		ledger:   ledger,
		commands: commands,
		events:   events,
		log:      log,
	}
}

func (w *PoolUnitWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			for _, evt := range w.apply(cmd) {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case w.events <- evt:
				}
			}
		}
	}
}

func (w *PoolUnitWorker) apply(cmd domain.Command) []event.DomainEvent {
	switch c := cmd.(type) {
	case domain.SendMessageCommand:
		draft := domain.Message{
			SenderID:   c.SenderID,
			ReceiverID: c.ReceiverID,
			Type:       c.Type,
			Text:       c.Text,
			ContentURL: c.ContentURL,
		}
		if err := draft.Validate(); err != nil {
			w.log.Warn("Dropping malformed send command", "error", err)
			return nil
		}
		_, events := w.ledger.Append(c.Key(), draft)
		return events
	case domain.SetStatusCommand:
		return w.ledger.SetStatus(c.ChatKey, c.MessageID, c.Status)
	case domain.MarkSeenCommand:
		return w.ledger.MarkSeen(c.ChatKey, c.ViewerID)
	default:
		w.log.Debug("Ignoring unknown command type")
		return nil
	}
}
