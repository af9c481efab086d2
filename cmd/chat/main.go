package main

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"chat-mock/ai"
	"chat-mock/clock"
	"chat-mock/errors"
	"chat-mock/ledger"
	"chat-mock/observability"
	"chat-mock/projection"
	"chat-mock/repositories"
	"chat-mock/roster"
	"chat-mock/runtime"
	"chat-mock/runtime/workers"
	"chat-mock/services"
	"chat-mock/sink"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes every component, hands the lifecycle to the orchestrator,
// and centralizes error reporting, so deferred cleanups always execute.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage. Everything lives in memory: the archive and the search
	// index exist for the process lifetime only, like the ledger itself.
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		url := fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, "/inspect", archiveMapper)
	}

	blugeWriter, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Core state & pipeline
	clk := clock.New()
	store := roster.NewStore(logger, clk)
	chatLedger := ledger.New(logger, clk)
	stats := observability.NewStats(logger)
	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	searchRepository := repositories.NewSearchRepository(blugeWriter, logger)
	timeline := projection.NewTimeline(store.Session)

	runtimeCfg := runtime.Config{
		NumWorkers:      config.NumberOfWorkers,
		BufferSize:      config.BufferSize,
		CharReplacement: charReplacement,
		SinkTimeout:     config.SinkTimeout,
		MetricInterval:  config.MetricInterval,
		DeliveredDelay:  config.DeliveredDelay,
		SeenDelay:       config.SeenDelay,
		ReplyMinDelay:   config.ReplyMinDelay,
		ReplyJitter:     config.ReplyJitter,
	}

	orchestrator := runtime.NewOrchestrator(logger, runtimeCfg, store, chatLedger,
		messageRepository, workers.NewSupervisor(logger), runtime.NewRegistry(),
		runtime.NewScheduler(logger, clk), stats)
	orchestrator.Add(
		timeline,
		sink.NewArchiveSink(messageRepository, logger),
		sink.NewSearchSink(searchRepository, logger),
		sink.NewStatsSink(stats),
	)

	// 4. Ice breaker. A missing API key disables the feature only.
	var suggester ai.Suggester = ai.Disabled{}
	if aiCfg, err := ai.LoadConfig(); err == nil {
		suggester = ai.NewIceBreakerClient(aiCfg, stats, logger)
	} else if stderrors.Is(err, errors.ErrMissingAPIKey) {
		logger.Warn("GEMINI_API_KEY not set, ice breaker suggestions disabled")
	} else {
		return exitConfig, err
	}

	sessionService := services.NewSessionService(store, orchestrator)
	chatService := services.NewChatService(store, orchestrator, searchRepository, timeline, suggester)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	if config.RunDemo {
		go runDemo(ctx, logger, config, sessionService, chatService, stats)
	}

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		orchestrator.Stop()
		return exitRuntime, err
	}

	orchestrator.Stop()
	logger.Info("Chat stopped cleanly")
	return exitOK, nil
}

// archiveMapper renders archived messages in the badger inspector.
func archiveMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var msg repositories.ArchivedMessage
	if err := json.Unmarshal(val, &msg); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = strings.ToUpper(string(msg.Type))
	row.Timestamp = msg.At.Format(time.RFC3339)
	row.EntityID = msg.ID
	row.Namespace = string(msg.ChatKey)

	detail := msg.Text
	if detail == "" {
		detail = msg.ContentURL
	}
	row.Detail = fmt.Sprintf("%s -> %s: %s (%s)", msg.SenderID, msg.ReceiverID, detail, msg.Status)
	return row
}
