package domain

import (
	"strings"
	"time"
)

const (
	// ThreadEmblem tags every thread opened by the relay. Follow-ups are only answered
	// in threads whose name starts with it.
	ThreadEmblem = "💠 AptiQ"
	// ThreadNamePrefix is the emblem followed by the separator used in new thread names.
	ThreadNamePrefix = ThreadEmblem + " — "
	// ThreadExcerptLength is the number of prompt characters kept in a thread name.
	ThreadExcerptLength = 40
	// ThreadAutoArchive is the inactivity delay after which the platform archives a thread.
	ThreadAutoArchive = 24 * time.Hour
)

// ConversationThread is a platform thread opened by the relay for one conversation.
type ConversationThread struct {
	ID              string
	Name            string
	ParentChannelID string
	StarterID       string // message the thread was started from
	RequestedBy     string // author tag of the user who asked the first question
	CreatedAt       time.Time
	FollowUps       int
}

// ThreadName builds the name of a new conversation thread from its first prompt:
// the emblem prefix, the first 40 characters of the prompt with newlines turned into
// spaces, then an ellipsis.
func ThreadName(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > ThreadExcerptLength {
		runes = runes[:ThreadExcerptLength]
	}
	excerpt := strings.ReplaceAll(string(runes), "\n", " ")
	return ThreadNamePrefix + excerpt + "…"
}

// IsRelayThread reports whether a thread carries the relay emblem.
// There is no stored thread ownership, the name is the only tag.
func IsRelayThread(name string) bool {
	return strings.HasPrefix(name, ThreadEmblem)
}
