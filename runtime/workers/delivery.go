package workers

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"chat-mock/contract"
	"chat-mock/domain"
	"chat-mock/domain/event"
	"chat-mock/observability"
)

// ReplyText is the canned answer injected on behalf of a simulated peer.
const ReplyText = "That sounds interesting!"

// DeliveryWorker simulates the far side of every 1:1 conversation. It
// watches the event stream and schedules deferred transitions:
//
//   - a fresh 1:1 message becomes DELIVERED after deliveredDelay;
//   - a viewed conversation bulk-advances to SEEN after seenDelay;
//   - a TEXT message sent by the session user earns a canned reply from
//     the peer after replyMinDelay plus a random jitter.
//
// Replies only trigger on messages whose sender is the session user, so a
// synthetic reply never answers itself. Group messages stay at SENT.
// Scheduled transitions are best effort and die with the process.
type DeliveryWorker struct {
	log            *slog.Logger
	roster         contract.RosterReader
	scheduler      contract.IScheduler
	stats          *observability.Stats
	dispatch       func(domain.Command)
	events         chan event.DomainEvent
	rnd            *rand.Rand
	deliveredDelay time.Duration
	seenDelay      time.Duration
	replyMinDelay  time.Duration
	replyJitter    time.Duration
}

func NewDeliveryWorker(log *slog.Logger, roster contract.RosterReader,
	scheduler contract.IScheduler, stats *observability.Stats,
	dispatch func(domain.Command), events chan event.DomainEvent,
	deliveredDelay, seenDelay, replyMinDelay, replyJitter time.Duration) *DeliveryWorker {
	return &DeliveryWorker{
		log:            log,
		roster:         roster,
		scheduler:      scheduler,
		stats:          stats,
		dispatch:       dispatch,
		events:         events,
		rnd:            rand.New(rand.NewSource(time.Now().UnixNano())),
		deliveredDelay: deliveredDelay,
		seenDelay:      seenDelay,
		replyMinDelay:  replyMinDelay,
		replyJitter:    replyJitter,
	}
}

func (w *DeliveryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			switch evt := e.(type) {
			case event.MessageAppended:
				w.onAppended(evt)
			case event.ConversationViewed:
				w.onViewed(evt)
			}
		}
	}
}

func (w *DeliveryWorker) onAppended(evt event.MessageAppended) {
	msg := evt.Message
	if domain.IsGroupID(msg.ReceiverID) {
		// No receipts for groups.
		return
	}

	w.scheduler.Schedule("delivered", w.deliveredDelay, func() {
		w.dispatch(domain.SetStatusCommand{
			ChatKey:   evt.ChatKey,
			MessageID: msg.ID,
			Status:    domain.StatusDelivered,
		})
	})

	if msg.Type != domain.TypeText {
		return
	}
	session, ok := w.roster.Session()
	if !ok || msg.SenderID != session.ID {
		return
	}
	if msg.ReceiverID == session.ID {
		// A note-to-self conversation must not reply to itself forever.
		return
	}
	if _, known := w.roster.User(msg.ReceiverID); !known {
		return
	}

	delay := w.replyMinDelay
	if w.replyJitter > 0 {
		delay += time.Duration(w.rnd.Int63n(int64(w.replyJitter)))
	}
	peer := msg.ReceiverID
	self := msg.SenderID
	w.scheduler.Schedule("reply", delay, func() {
		w.stats.IncrRepliesInjected()
		w.dispatch(domain.SendMessageCommand{
			SenderID:   peer,
			ReceiverID: self,
			Type:       domain.TypeText,
			Text:       ReplyText,
		})
	})
}

func (w *DeliveryWorker) onViewed(evt event.ConversationViewed) {
	w.scheduler.Schedule("mark-seen", w.seenDelay, func() {
		w.dispatch(domain.MarkSeenCommand{
			ChatKey:  evt.ChatKey,
			ViewerID: evt.ViewerID,
		})
	})
}
