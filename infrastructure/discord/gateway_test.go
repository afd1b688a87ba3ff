package discord

import (
	"aptiq-relay/domain"
	"aptiq-relay/mocks"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const guildID = "guild-1"

func newTestState(t *testing.T, channels ...*discordgo.Channel) *discordgo.Session {
	req := require.New(t)
	state := discordgo.NewState()
	req.NoError(state.GuildAdd(&discordgo.Guild{ID: guildID}))
	for _, ch := range channels {
		req.NoError(state.ChannelAdd(ch))
	}
	return &discordgo.Session{State: state}
}

func TestToIncomingMessage(t *testing.T) {
	author := &discordgo.User{ID: "user-1", Username: "alice", Discriminator: "0"}
	message := &discordgo.Message{
		ID:        "msg-1",
		ChannelID: "chan-1",
		GuildID:   guildID,
		Content:   "<@bot-1> hello?",
		Author:    author,
		Mentions:  []*discordgo.User{{ID: "bot-1"}, {ID: "user-2"}},
	}

	t.Run("should convert a channel message", func(t *testing.T) {
		req := require.New(t)
		channel := &discordgo.Channel{ID: "chan-1", Type: discordgo.ChannelTypeGuildText, Name: "general"}

		msg := ToIncomingMessage(message, channel)

		req.Equal(domain.IncomingMessage{
			ID:         "msg-1",
			ChannelID:  "chan-1",
			GuildID:    guildID,
			AuthorID:   "user-1",
			AuthorTag:  author.String(),
			Content:    "<@bot-1> hello?",
			MentionIDs: []string{"bot-1", "user-2"},
		}, msg)
		req.True(msg.Mentions("bot-1"))
	})

	t.Run("should flag thread messages with the thread name", func(t *testing.T) {
		req := require.New(t)
		channel := &discordgo.Channel{ID: "chan-1", Type: discordgo.ChannelTypeGuildPublicThread, Name: domain.ThreadName("hello?")}

		msg := ToIncomingMessage(message, channel)

		req.True(msg.InThread)
		req.Equal(domain.ThreadName("hello?"), msg.ThreadName)
	})

	t.Run("should treat an unresolved channel as a channel message", func(t *testing.T) {
		req := require.New(t)
		msg := ToIncomingMessage(&discordgo.Message{ID: "msg-2", Author: &discordgo.User{ID: "bot-2", Bot: true}}, nil)

		req.False(msg.InThread)
		req.True(msg.AuthorBot)
		req.Empty(msg.MentionIDs)
	})
}

func TestToEmbed(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	card := domain.NewConversationCard("Rayleigh scattering.", "why is the sky blue?", "alice", at)

	embed := ToEmbed(card)

	req.Equal(domain.CardTitle, embed.Title)
	req.Equal("Rayleigh scattering.", embed.Description)
	req.Equal(domain.CardColor, embed.Color)
	req.Equal("2024-05-01T12:30:00Z", embed.Timestamp)
	req.Equal(domain.CardFooter, embed.Footer.Text)
	req.Equal([]*discordgo.MessageEmbedField{
		{Name: domain.CardQuestionField, Value: "why is the sky blue?"},
		{Name: domain.CardUserField, Value: "alice"},
	}, embed.Fields)
}

func TestGateway_OnMessageCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("should hand thread messages to the relay", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		handler := mocks.NewMockIMessageHandler(ctrl)
		thread := &discordgo.Channel{
			ID:       "thread-1",
			GuildID:  guildID,
			ParentID: "chan-1",
			Type:     discordgo.ChannelTypeGuildPublicThread,
			Name:     domain.ThreadName("why is the sky blue?"),
		}
		gateway := NewGateway(slog.Default(), newTestState(t, thread), handler, "")

		var got domain.IncomingMessage
		handler.EXPECT().
			HandleMessage(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, msg domain.IncomingMessage) { got = msg }).
			Times(1)

		gateway.onMessageCreate(ctx, &discordgo.MessageCreate{Message: &discordgo.Message{
			ID:        "msg-3",
			ChannelID: "thread-1",
			Content:   "and at sunset?",
			Author:    &discordgo.User{ID: "user-1", Username: "alice"},
		}})

		req.True(got.InThread)
		req.Equal(thread.Name, got.ThreadName)
		req.Equal("and at sunset?", got.Content)
	})

	t.Run("should drop messages written by bots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := mocks.NewMockIMessageHandler(ctrl)
		gateway := NewGateway(slog.Default(), newTestState(t), handler, "")

		handler.EXPECT().HandleMessage(gomock.Any(), gomock.Any()).Times(0)

		gateway.onMessageCreate(ctx, &discordgo.MessageCreate{Message: &discordgo.Message{
			ID:     "msg-4",
			Author: &discordgo.User{ID: "bot-2", Bot: true},
		}})
	})
}

func TestGateway_OnReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockIMessageHandler(ctrl)
	gateway := NewGateway(slog.Default(), newTestState(t), handler, "other-app")

	// Then the bot id is handed over even when it differs from the configured one
	handler.EXPECT().BotReady("bot-1").Times(1)

	gateway.onReady(nil, &discordgo.Ready{User: &discordgo.User{ID: "bot-1", Username: "aptiq"}})
	gateway.onReady(nil, &discordgo.Ready{})
}
