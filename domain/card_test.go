package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConversationCard(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	card := NewConversationCard("42.", "What is the answer?", "alice", at)

	req.Equal(CardColor, card.Color)
	req.Equal(CardTitle, card.Title)
	req.Equal("42.", card.Description)
	req.Equal([]CardField{
		{Name: CardQuestionField, Value: "What is the answer?"},
		{Name: CardUserField, Value: "alice"},
	}, card.Fields)
	req.Equal(CardFooter, card.Footer)
	req.Equal(at, card.Timestamp)
}

func TestNewFollowUpCard_HasNoUserField(t *testing.T) {
	req := require.New(t)

	card := NewFollowUpCard("Sure.", "And then?", time.Now())

	req.Equal(CardFollowUpTitle, card.Title)
	req.Len(card.Fields, 1)
	req.Equal(CardQuestionField, card.Fields[0].Name)
	req.Equal("And then?", card.Fields[0].Value)
}

func TestCard_TruncatesToEmbedLimits(t *testing.T) {
	req := require.New(t)
	reply := strings.Repeat("r", MaxCardDescription+10)
	prompt := strings.Repeat("p", MaxCardFieldValue+1)

	card := NewConversationCard(reply, prompt, "bob", time.Now())

	req.Len([]rune(card.Description), MaxCardDescription)
	req.True(strings.HasSuffix(card.Description, "…"))
	req.Len([]rune(card.Fields[0].Value), MaxCardFieldValue)
	req.True(strings.HasSuffix(card.Fields[0].Value, "…"))
}

func TestCard_KeepsTextAtExactLimit(t *testing.T) {
	reply := strings.Repeat("r", MaxCardDescription)
	card := NewFollowUpCard(reply, "q", time.Now())
	require.Equal(t, reply, card.Description)
}
