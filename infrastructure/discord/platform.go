package discord

import (
	"aptiq-relay/domain"
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// Platform performs the relay's outbound actions through the Discord REST API.
type Platform struct {
	session *discordgo.Session
}

func NewPlatform(session *discordgo.Session) *Platform {
	return &Platform{session: session}
}

func (p *Platform) Reply(ctx context.Context, channelID, messageID, content string) error {
	reference := &discordgo.MessageReference{MessageID: messageID, ChannelID: channelID}
	_, err := p.session.ChannelMessageSendReply(channelID, content, reference, discordgo.WithContext(ctx))
	return err
}

// StartThread opens a public thread on a message and returns the thread id.
func (p *Platform) StartThread(ctx context.Context, channelID, messageID, name string, autoArchive time.Duration) (string, error) {
	thread, err := p.session.MessageThreadStartComplex(channelID, messageID, &discordgo.ThreadStart{
		Name:                name,
		AutoArchiveDuration: int(autoArchive.Minutes()),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return thread.ID, nil
}

func (p *Platform) SendText(ctx context.Context, channelID, content string) error {
	_, err := p.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	return err
}

// SendCard posts the card as an embed and returns the id of the created message.
func (p *Platform) SendCard(ctx context.Context, channelID string, card domain.ReplyCard) (string, error) {
	msg, err := p.session.ChannelMessageSendEmbed(channelID, ToEmbed(card), discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (p *Platform) Pin(ctx context.Context, channelID, messageID string) error {
	return p.session.ChannelMessagePin(channelID, messageID, discordgo.WithContext(ctx))
}

func (p *Platform) Typing(ctx context.Context, channelID string) error {
	return p.session.ChannelTyping(channelID, discordgo.WithContext(ctx))
}

func ToEmbed(card domain.ReplyCard) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: card.Description,
		Color:       card.Color,
		Fields: lo.Map(card.Fields, func(f domain.CardField, _ int) *discordgo.MessageEmbedField {
			return &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value}
		}),
		Footer:    &discordgo.MessageEmbedFooter{Text: card.Footer},
		Timestamp: card.Timestamp.Format(time.RFC3339),
	}
}
