package workers

import (
	"context"
	"hash/fnv"
	"log/slog"

	"chat-mock/domain"
	"chat-mock/moderation"
	"chat-mock/observability"

	"github.com/abadojack/whatlanggo"
)

// ModerationWorker sits between the raw command stream and the command
// pool. Text payloads are censored before the ledger ever sees them, so
// every downstream consumer observes the sanitized content. Non-text
// commands pass through untouched.
//
// Commands are sharded to a pool channel by their chat key: one
// conversation always lands on the same pool unit, which keeps append
// order equal to send order within that conversation.
type ModerationWorker struct {
	moderator moderation.Moderator
	stats     *observability.Stats
	raw       chan domain.Command
	pool      []chan domain.Command
	log       *slog.Logger
}

func NewModerationWorker(moderator moderation.Moderator, stats *observability.Stats,
	raw chan domain.Command, pool []chan domain.Command, log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{
		moderator: moderator,
		stats:     stats,
		raw:       raw,
		pool:      pool,
		log:       log,
	}
}

func (w ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.raw:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if send, isSend := cmd.(domain.SendMessageCommand); isSend && send.Type == domain.TypeText {
				cmd = w.sanitize(send)
			}
			select {
			case <-ctx.Done():
				w.log.Debug("Stopping worker")
				return ctx.Err()
			case w.shardFor(cmd.Key()) <- cmd:
			}
		}
	}
}

func (w ModerationWorker) shardFor(key domain.ChatKey) chan domain.Command {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return w.pool[int(h.Sum32())%len(w.pool)]
}

func (w ModerationWorker) sanitize(cmd domain.SendMessageCommand) domain.SendMessageCommand {
	info := whatlanggo.Detect(cmd.Text)
	langCode := info.Lang.Iso6391()

	censored, changed := w.moderator.Censor(cmd.Text)
	if changed {
		w.stats.IncrCensored()
		w.log.Warn("Censored message content",
			"sender", cmd.SenderID,
			"lang", langCode)
		cmd.Text = censored
	}
	return cmd
}
