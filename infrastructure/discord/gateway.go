package discord

import (
	"aptiq-relay/contract"
	"aptiq-relay/domain"
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

const intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

// NewSession prepares a bot session with the intents the relay needs to read messages.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	session.Identify.Intents = intents
	return session, nil
}

// Gateway receives Discord events and hands message creations to the relay.
// discordgo runs every handler in its own goroutine.
type Gateway struct {
	log      *slog.Logger
	session  *discordgo.Session
	handler  contract.IMessageHandler
	clientID string
	remove   []func()
}

func NewGateway(log *slog.Logger, session *discordgo.Session, handler contract.IMessageHandler, clientID string) *Gateway {
	return &Gateway{log: log, session: session, handler: handler, clientID: clientID}
}

// Open registers the event handlers and connects to the gateway.
// ctx is handed to every message handled afterwards.
func (g *Gateway) Open(ctx context.Context) error {
	g.remove = append(g.remove,
		g.session.AddHandler(g.onReady),
		g.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
			g.onMessageCreate(ctx, m)
		}),
	)
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

// Run keeps the connection until ctx is canceled, then closes it.
// discordgo reconnects by itself when the websocket drops.
func (g *Gateway) Run(ctx context.Context) error {
	<-ctx.Done()
	g.log.Info("Closing Discord gateway...")
	for _, remove := range g.remove {
		remove()
	}
	g.remove = nil
	if err := g.session.Close(); err != nil {
		g.log.Warn("Discord gateway did not close cleanly", "err", err)
	}
	return nil
}

func (g *Gateway) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	if r.User == nil {
		return
	}
	if g.clientID != "" && r.User.ID != g.clientID {
		g.log.Warn("Bot user does not match the configured application id",
			"user_id", r.User.ID, "client_id", g.clientID)
	}
	g.handler.BotReady(r.User.ID)
	g.log.Info("Bot active", "tag", r.User.String(), "guilds", len(r.Guilds))
}

func (g *Gateway) onMessageCreate(ctx context.Context, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	channel, err := g.channel(ctx, m.ChannelID)
	if err != nil {
		g.log.Warn("Could not resolve channel, handling message as a channel message",
			"channel_id", m.ChannelID, "err", err)
	}
	g.handler.HandleMessage(ctx, ToIncomingMessage(m.Message, channel))
}

// channel looks the channel up in the state cache first, then through the REST API.
func (g *Gateway) channel(ctx context.Context, id string) (*discordgo.Channel, error) {
	if g.session.State != nil {
		if ch, err := g.session.State.Channel(id); err == nil {
			return ch, nil
		}
	}
	return g.session.Channel(id, discordgo.WithContext(ctx))
}

// ToIncomingMessage converts a Discord message. channel may be nil when it could not
// be resolved, the message then counts as a regular channel message.
func ToIncomingMessage(m *discordgo.Message, channel *discordgo.Channel) domain.IncomingMessage {
	msg := domain.IncomingMessage{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Content:   m.Content,
		MentionIDs: lo.Map(m.Mentions, func(u *discordgo.User, _ int) string {
			return u.ID
		}),
	}
	if m.Author != nil {
		msg.AuthorID = m.Author.ID
		msg.AuthorTag = m.Author.String()
		msg.AuthorBot = m.Author.Bot
	}
	if channel != nil && channel.IsThread() {
		msg.InThread = true
		msg.ThreadName = channel.Name
	}
	return msg
}
