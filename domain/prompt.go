package domain

import (
	"strings"

	"github.com/samber/lo"
)

// MentionTokens returns both encodings of a user mention: <@id> and the legacy nickname form <@!id>.
func MentionTokens(userID string) []string {
	return []string{"<@" + userID + ">", "<@!" + userID + ">"}
}

// Mentions reports whether the message mentions the given user.
func (m IncomingMessage) Mentions(userID string) bool {
	return lo.Contains(m.MentionIDs, userID)
}

// ExtractPrompt removes every mention of the bot from the content and trims the rest.
// An empty result means the user mentioned the bot without asking anything.
func ExtractPrompt(content, botID string) string {
	for _, token := range MentionTokens(botID) {
		content = strings.ReplaceAll(content, token, "")
	}
	return strings.TrimSpace(content)
}

// FollowUpPrompt is the trimmed raw content of a message posted inside a relay thread.
func FollowUpPrompt(content string) string {
	return strings.TrimSpace(content)
}
