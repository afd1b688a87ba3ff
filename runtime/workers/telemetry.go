package workers

import (
	"aptiq-relay/domain/event"
	"context"
	"log/slog"
)

// TelemetryWorker hands every relay event to the registered handlers.
type TelemetryWorker struct {
	log           *slog.Logger
	telemetryChan <-chan event.Event
	handlers      []event.Handler
}

func NewTelemetryWorker(log *slog.Logger,
	telemetryChan <-chan event.Event,
	handlers ...event.Handler) *TelemetryWorker {
	return &TelemetryWorker{
		log:           log,
		telemetryChan: telemetryChan,
		handlers:      handlers,
	}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-w.telemetryChan:
			if !ok {
				w.log.Debug("Telemetry channel closed")
				return nil
			}
			w.handle(evt)
		}
	}
}

func (w *TelemetryWorker) handle(e event.Event) {
	for _, h := range w.handlers {
		h.Handle(e)
	}
}
