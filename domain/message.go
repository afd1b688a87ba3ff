// Package domain contains the core rules of the relay.
// This file defines the incoming chat message as seen by the relay.
// Messages are platform-neutral: the chat adapter converts its own events into them.
package domain

// IncomingMessage represents a message created on the chat platform.
type IncomingMessage struct {
	ID         string
	ChannelID  string
	GuildID    string
	AuthorID   string
	AuthorTag  string // display tag of the author, e.g. "alice" or "alice#1234"
	AuthorBot  bool
	Content    string
	MentionIDs []string // ids of the mentioned users
	InThread   bool
	ThreadName string // only set when InThread is true
}
