package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"chat-mock/contract"
	"chat-mock/domain"
	"chat-mock/domain/event"
	"chat-mock/ledger"
	"chat-mock/moderation"
	"chat-mock/observability"
	"chat-mock/repositories"
	"chat-mock/runtime/workers"

	"github.com/samber/lo"
)

//go:embed censored/*
var censoredFolder embed.FS

// Orchestrator wires the whole pipeline: raw commands flow through
// moderation into the command pool, which mutates the ledger and emits
// domain events; events fan out to the permanent sinks, to registry
// subscribers, and into the delivery simulator, which schedules further
// commands through the scheduler. Everything runs under one supervisor.
type Orchestrator struct {
	mu                sync.Mutex
	log               *slog.Logger
	cfg               Config
	roster            contract.RosterReader
	ledger            ledger.ILedger
	messageRepository repositories.IMessageRepository
	stats             *observability.Stats
	supervisor        contract.ISupervisor
	registry          contract.IRegistry
	scheduler         *Scheduler
	permanentSinks    []contract.EventSink
	rawCommands       chan domain.Command
	sanitizedCommands []chan domain.Command
	domainEvents      chan event.DomainEvent
	deliveryEvents    chan event.DomainEvent
}

func NewOrchestrator(log *slog.Logger, cfg Config, roster contract.RosterReader,
	ledger ledger.ILedger, messageRepository repositories.IMessageRepository,
	supervisor *workers.Supervisor, registry *Registry, scheduler *Scheduler,
	stats *observability.Stats) *Orchestrator {
	// One sanitized channel per pool unit: commands are sharded by chat
	// key so a conversation is always applied in send order.
	sanitized := make([]chan domain.Command, cfg.NumWorkers)
	for i := range sanitized {
		sanitized[i] = make(chan domain.Command, cfg.BufferSize)
	}

	return &Orchestrator{
		log:               log,
		cfg:               cfg,
		roster:            roster,
		ledger:            ledger,
		messageRepository: messageRepository,
		stats:             stats,
		supervisor:        supervisor,
		registry:          registry,
		scheduler:         scheduler,
		rawCommands:       make(chan domain.Command, cfg.BufferSize),
		sanitizedCommands: sanitized,
		domainEvents:      make(chan event.DomainEvent, cfg.BufferSize),
		deliveryEvents:    make(chan event.DomainEvent, cfg.BufferSize),
	}
}

// Add registers extra permanent sinks. Must be called before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Dispatch queues a mutation command without blocking the caller.
// A full pipeline drops the command with a warning; senders are UI-driven
// and must never stall on the core.
func (o *Orchestrator) Dispatch(cmd domain.Command) {
	select {
	case o.rawCommands <- cmd:
	default:
		o.log.Warn(fmt.Sprintf("Command channel full for chat %s, dropping command", cmd.Key()))
	}
}

// Emit injects a non-mutating signal (viewed, roster changed) straight
// into the event stream so sinks and the delivery simulator observe it.
func (o *Orchestrator) Emit(evt event.DomainEvent) {
	select {
	case o.domainEvents <- evt:
	default:
		o.log.Warn(fmt.Sprintf("Event channel full, dropping %T", evt))
	}
}

// Messages returns the live ledger snapshot for a conversation.
func (o *Orchestrator) Messages(key domain.ChatKey) []domain.Message {
	return o.ledger.ListFor(key)
}

// History pages through the archived copy of a conversation, newest first.
func (o *Orchestrator) History(key domain.ChatKey, cursor *string) ([]domain.Message, *string, error) {
	archived, next, err := o.messageRepository.GetMessages(key, cursor)
	return fromArchived(archived), next, err
}

func fromArchived(messages []repositories.ArchivedMessage) []domain.Message {
	return lo.Map(messages, func(item repositories.ArchivedMessage, _ int) domain.Message {
		return domain.Message{
			ID:         item.ID,
			SenderID:   item.SenderID,
			ReceiverID: item.ReceiverID,
			Timestamp:  item.At,
			Status:     item.Status,
			Type:       item.Type,
			Text:       item.Text,
			ContentURL: item.ContentURL,
		}
	})
}

// Subscribe attaches an observer sink to a chat key.
func (o *Orchestrator) Subscribe(observerID string, key domain.ChatKey, sink contract.EventSink) {
	o.registry.Subscribe(observerID, key, sink)
}

// Unsubscribe detaches an observer.
func (o *Orchestrator) Unsubscribe(observerID string, key domain.ChatKey) {
	o.registry.Unsubscribe(observerID, key)
}

// Start prepares all workers and then blocks inside the supervisor until
// ctx ends. Heavy preparation (loading dictionaries, building the
// Aho-Corasick automaton) happens before the short locked section.
func (o *Orchestrator) Start(ctx context.Context) error {
	poolWorkers := o.preparePoolWorkers()

	moderationWorker, err := o.prepareModeration("censored", o.cfg.CharReplacement)
	if err != nil {
		return err
	}

	fanoutWorker := o.prepareFanout()
	deliveryWorker := o.prepareDelivery()
	telemetryWorker := workers.NewTelemetryWorker(o.log, o.stats, o.cfg.MetricInterval)

	o.mu.Lock()
	o.supervisor.Add(moderationWorker)
	o.supervisor.Add(fanoutWorker)
	o.supervisor.Add(deliveryWorker)
	o.supervisor.Add(telemetryWorker)
	o.supervisor.Add(o.scheduler)
	for _, w := range poolWorkers {
		o.supervisor.Add(w)
	}
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// preparePoolWorkers creates the worker pool applying commands to the ledger.
func (o *Orchestrator) preparePoolWorkers() []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.cfg.NumWorkers; i++ {
		res = append(res, workers.NewPoolUnitWorker(o.ledger, o.sanitizedCommands[i], o.domainEvents, o.log))
	}
	return res
}

// prepareModeration loads censored words and builds the Aho-Corasick automaton.
func (o *Orchestrator) prepareModeration(path string, charReplacement rune) (contract.Worker, error) {
	loader := NewCensoredLoader(censoredFolder)
	data, err := loader.LoadAll(path)
	if err != nil {
		return nil, err
	}

	o.log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	o.log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	moderator, err := moderation.NewModerator(data.Words, charReplacement)
	if err != nil {
		return nil, err
	}

	return workers.NewModerationWorker(moderator, o.stats, o.rawCommands, o.sanitizedCommands, o.log), nil
}

func (o *Orchestrator) prepareFanout() contract.Worker {
	o.mu.Lock()
	sinks := append([]contract.EventSink{}, o.permanentSinks...)
	o.mu.Unlock()

	return workers.NewEventFanout(o.log, sinks, o.registry,
		o.domainEvents, o.deliveryEvents, o.cfg.SinkTimeout)
}

func (o *Orchestrator) prepareDelivery() contract.Worker {
	return workers.NewDeliveryWorker(o.log, o.roster, o.scheduler, o.stats,
		o.Dispatch, o.deliveryEvents,
		o.cfg.DeliveredDelay, o.cfg.SeenDelay, o.cfg.ReplyMinDelay, o.cfg.ReplyJitter)
}

// Stop initiates a graceful shutdown: the supervised context is canceled
// and Start returns once every worker has exited.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
