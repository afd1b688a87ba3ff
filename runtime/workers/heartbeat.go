package workers

import (
	"aptiq-relay/domain/event"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker periodically logs the health of the relay process together with
// the relay counters.
type HeartbeatWorker struct {
	log      *slog.Logger
	counter  *event.Counter
	interval time.Duration
}

const defaultHeartbeatInterval = time.Minute

// NewHeartbeatWorker falls back to one beat per minute when interval is not positive.
func NewHeartbeatWorker(log *slog.Logger, counter *event.Counter, interval time.Duration) *HeartbeatWorker {
	if interval <= 0 {
		log.Warn("Invalid heartbeat interval, using default", "interval", interval, "default", defaultHeartbeatInterval)
		interval = defaultHeartbeatInterval
	}
	return &HeartbeatWorker{log: log, counter: counter, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	counts := w.counter.Snapshot()
	attrs := []any{
		"conversations", counts[event.ConversationStartedType],
		"follow_ups", counts[event.FollowUpAnsweredType],
		"backend_calls", counts[event.BackendCallType],
		"relogins", counts[event.ReloginType],
		"platform_failures", counts[event.PlatformFailureType],
		"worker_restarts", counts[event.RestartedAfterPanicType],
	}

	rss, cpu, err := selfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "err", err)
	} else {
		attrs = append(attrs, "rss_bytes", rss, "cpu_percent", cpu)
	}
	w.log.Info("Heartbeat", attrs...)
}

// selfStats retrieves the resident memory and CPU usage of the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
