//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"aptiq-relay/domain"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ISession holds the single bearer credential used against the backend.
type ISession interface {
	EnsureToken(ctx context.Context) (string, error)
	Invalidate()
}

type ILoginClient interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// IBackendClient talks to the AI backend.
// SendMessage returns errors.ErrUnauthorized when the token is denied.
type IBackendClient interface {
	ILoginClient
	SendMessage(ctx context.Context, token, content string) (string, error)
}

// IChatPlatform is the set of outbound actions the relay performs on the chat platform.
type IChatPlatform interface {
	Reply(ctx context.Context, channelID, messageID, content string) error
	StartThread(ctx context.Context, channelID, messageID, name string, autoArchive time.Duration) (string, error)
	SendText(ctx context.Context, channelID, content string) error
	SendCard(ctx context.Context, channelID string, card domain.ReplyCard) (string, error)
	Pin(ctx context.Context, channelID, messageID string) error
	Typing(ctx context.Context, channelID string) error
}

// IMessageHandler reacts to messages created on the chat platform.
// BotReady is called with the bot's own user id once the platform session is up.
type IMessageHandler interface {
	HandleMessage(ctx context.Context, msg domain.IncomingMessage)
	BotReady(userID string)
}
