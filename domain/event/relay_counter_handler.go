package event

import (
	"aptiq-relay/errors"
	"log/slog"
)

// RelayCounterHandler counts the conversations, follow-ups, re-logins and platform
// failures seen by the relay. The heartbeat reports the totals.
type RelayCounterHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewRelayCounterHandler(log *slog.Logger, counter *Counter) *RelayCounterHandler {
	return &RelayCounterHandler{log: log, counter: counter}
}

func (h *RelayCounterHandler) Handle(event Event) {
	switch event.Type {
	case ConversationStartedType:
		if _, ok := event.Payload.(ConversationStarted); !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
	case FollowUpAnsweredType:
		if _, ok := event.Payload.(FollowUpAnswered); !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
	case ReloginType:
		if _, ok := event.Payload.(Relogin); !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
	case PlatformFailureType:
		payload, ok := event.Payload.(PlatformFailure)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.log.Debug("telemetry: platform failure",
			"request_id", payload.RequestID,
			"channel_id", payload.ChannelID,
			"err", payload.Err)
	default:
		return
	}
	h.counter.Increment(event.Type)
}
