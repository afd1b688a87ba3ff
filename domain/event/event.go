package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	ConversationStartedType Type = "CONVERSATION_STARTED"
	FollowUpAnsweredType    Type = "FOLLOW_UP_ANSWERED"
	BackendCallType         Type = "BACKEND_CALL"
	ReloginType             Type = "RELOGIN"
	PlatformFailureType     Type = "PLATFORM_FAILURE"
)

// Event is a telemetry fact emitted by the relay. Nothing is persisted from it.
type Event struct {
	ID        uuid.UUID
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{
		ID:        uuid.New(),
		Type:      t,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
}

type ConversationStarted struct {
	RequestID string
	ChannelID string
	ThreadID  string
	Prompt    string
}

type FollowUpAnswered struct {
	RequestID string
	ThreadID  string
	Prompt    string
}

type BackendOutcome string

const (
	OutcomeOK           BackendOutcome = "ok"
	OutcomeUnauthorized BackendOutcome = "unauthorized"
	OutcomeFailed       BackendOutcome = "failed"
)

type BackendCall struct {
	RequestID string
	Attempts  int
	Outcome   BackendOutcome
	Duration  time.Duration
}

type Relogin struct {
	RequestID string
}

type PlatformFailure struct {
	RequestID string
	ChannelID string
	Err       string
}
