package event

import (
	"log/slog"
	"time"
)

// LatencyHandler traces every backend call and warns about the slow ones.
type LatencyHandler struct {
	log              *slog.Logger
	counter          *Counter
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, counter *Counter, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, counter: counter, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	payload, ok := e.Payload.(BackendCall)
	if !ok {
		return
	}
	h.counter.Increment(BackendCallType)

	h.log.Debug("telemetry: backend call",
		"request_id", payload.RequestID,
		"attempts", payload.Attempts,
		"outcome", payload.Outcome,
		"duration_ms", payload.Duration.Milliseconds(),
	)

	if payload.Duration > h.latencyThreshold {
		h.log.Warn("high backend latency detected",
			"request_id", payload.RequestID,
			"duration", payload.Duration,
			"threshold", h.latencyThreshold)
	}
}
