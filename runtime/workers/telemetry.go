package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"chat-mock/observability"

	"github.com/shirou/gopsutil/process"
)

// TelemetryWorker periodically logs process health (CPU, RSS, status) next
// to the pipeline counters. It is the only consumer of gopsutil; losing a
// tick is harmless.
type TelemetryWorker struct {
	log            *slog.Logger
	stats          *observability.Stats
	metricInterval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, stats *observability.Stats,
	metricInterval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{
		log:            log,
		stats:          stats,
		metricInterval: metricInterval,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snapshot := w.stats.Snapshot()
			w.log.Info("Telemetry",
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"messages_sent", snapshot.MessagesSent,
				"replies_injected", snapshot.RepliesInjected,
				"delivered", snapshot.Delivered,
				"seen", snapshot.Seen,
				"censored", snapshot.Censored,
				"ice_breaker_calls", snapshot.IceBreakerCalls,
				"ice_breaker_fallbacks", snapshot.IceBreakerFallbacks)
		}
	}
}

// selfStats retrieves memory, CPU, and OS status for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
