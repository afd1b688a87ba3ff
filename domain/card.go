package domain

import "time"

const (
	CardColor            = 0x7F3CFF
	CardTitle            = "🔮 AptiQ – AI Assistant"
	CardFollowUpTitle    = "🔮 AptiQ – Follow-up"
	CardQuestionField    = "📝 Question"
	CardUserField        = "👤 User"
	CardFooter           = "NoCxAI · AptiQ"
	MaxCardDescription   = 4096
	MaxCardFieldValue    = 1024
	truncationMarker     = "…"
	truncationMarkerSize = 1
)

// ReplyCard is the styled message used for every backend answer.
type ReplyCard struct {
	Color       int
	Title       string
	Description string
	Fields      []CardField
	Footer      string
	Timestamp   time.Time
}

type CardField struct {
	Name  string
	Value string
}

// NewConversationCard is the first answer of a conversation, it names the requesting user.
func NewConversationCard(reply, prompt, userTag string, at time.Time) ReplyCard {
	return ReplyCard{
		Color:       CardColor,
		Title:       CardTitle,
		Description: truncate(reply, MaxCardDescription),
		Fields: []CardField{
			{Name: CardQuestionField, Value: truncate(prompt, MaxCardFieldValue)},
			{Name: CardUserField, Value: truncate(userTag, MaxCardFieldValue)},
		},
		Footer:    CardFooter,
		Timestamp: at,
	}
}

// NewFollowUpCard answers a question asked inside an existing conversation thread.
func NewFollowUpCard(reply, prompt string, at time.Time) ReplyCard {
	return ReplyCard{
		Color:       CardColor,
		Title:       CardFollowUpTitle,
		Description: truncate(reply, MaxCardDescription),
		Fields: []CardField{
			{Name: CardQuestionField, Value: truncate(prompt, MaxCardFieldValue)},
		},
		Footer:    CardFooter,
		Timestamp: at,
	}
}

// truncate cuts s to at most limit runes, the last one being the truncation marker.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-truncationMarkerSize]) + truncationMarker
}
