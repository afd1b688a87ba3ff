package services

import (
	"aptiq-relay/contract"
	"aptiq-relay/domain"
	"aptiq-relay/domain/event"
	"aptiq-relay/errors"
	"aptiq-relay/repositories"
	"context"
	stderrors "errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// maxBackendAttempts bounds the re-login retry: one call, then one more after a 401.
const maxBackendAttempts = 2

type IRelayService interface {
	contract.IMessageHandler
	SendPrompt(ctx context.Context, prompt string) string
}

// RelayService forwards chat prompts to the backend and posts the answers back.
type RelayService struct {
	log       *slog.Logger
	session   contract.ISession
	backend   contract.IBackendClient
	platform  contract.IChatPlatform
	threads   repositories.IThreadRepository
	telemetry chan<- event.Event
	botID     atomic.Value
}

func NewRelayService(
	log *slog.Logger,
	session contract.ISession,
	backend contract.IBackendClient,
	platform contract.IChatPlatform,
	threads repositories.IThreadRepository,
	telemetry chan<- event.Event,
) *RelayService {
	return &RelayService{
		log:       log,
		session:   session,
		backend:   backend,
		platform:  platform,
		threads:   threads,
		telemetry: telemetry,
	}
}

// BotReady records the user id of the bot once the chat session is established.
// Messages are ignored until then since mentions cannot be recognised.
func (s *RelayService) BotReady(userID string) {
	s.botID.Store(userID)
}

func (s *RelayService) currentBotID() string {
	id, _ := s.botID.Load().(string)
	return id
}

// SendPrompt asks the backend for an answer. It never fails: any error is logged
// and turned into a fixed fallback text.
func (s *RelayService) SendPrompt(ctx context.Context, prompt string) string {
	requestID := uuid.NewString()
	return s.sendPrompt(ctx, s.log.With("request_id", requestID), requestID, prompt)
}

func (s *RelayService) sendPrompt(ctx context.Context, log *slog.Logger, requestID, prompt string) string {
	start := time.Now()
	for attempt := 1; ; attempt++ {
		token, err := s.session.EnsureToken(ctx)
		if err != nil {
			log.Warn("Calling backend without credential", "err", err)
		}

		reply, err := s.backend.SendMessage(ctx, token, prompt)
		if err == nil {
			s.emit(event.New(event.BackendCallType, event.BackendCall{
				RequestID: requestID,
				Attempts:  attempt,
				Outcome:   event.OutcomeOK,
				Duration:  time.Since(start),
			}))
			if reply == "" {
				return domain.NoReplyText
			}
			return reply
		}

		unauthorized := stderrors.Is(err, errors.ErrUnauthorized)
		if unauthorized && attempt < maxBackendAttempts {
			log.Info("Backend token expired, logging in again")
			s.session.Invalidate()
			s.emit(event.New(event.ReloginType, event.Relogin{RequestID: requestID}))
			continue
		}

		outcome := event.OutcomeFailed
		if unauthorized {
			outcome = event.OutcomeUnauthorized
		}
		s.emit(event.New(event.BackendCallType, event.BackendCall{
			RequestID: requestID,
			Attempts:  attempt,
			Outcome:   outcome,
			Duration:  time.Since(start),
		}))
		log.Error("Backend call failed", "attempts", attempt, "err", err)
		return domain.BackendFailureText
	}
}

// HandleMessage reacts to a message created on the chat platform.
// A mention outside a thread opens a new conversation thread; a message inside a
// relay thread is a follow-up. Everything else, and anything written by a bot, is ignored.
func (s *RelayService) HandleMessage(ctx context.Context, msg domain.IncomingMessage) {
	if msg.AuthorBot {
		return
	}
	botID := s.currentBotID()
	if botID == "" {
		s.log.Debug(errors.ErrBotNotReady.Error(), "message_id", msg.ID)
		return
	}

	switch {
	case !msg.InThread && msg.Mentions(botID):
		requestID := uuid.NewString()
		log := s.log.With("request_id", requestID, "channel_id", msg.ChannelID, "message_id", msg.ID)
		s.startConversation(ctx, log, requestID, msg, botID)
	case msg.InThread:
		if !domain.IsRelayThread(msg.ThreadName) {
			return
		}
		requestID := uuid.NewString()
		log := s.log.With("request_id", requestID, "thread_id", msg.ChannelID, "message_id", msg.ID)
		s.followUp(ctx, log, requestID, msg)
	}
}

func (s *RelayService) startConversation(ctx context.Context, log *slog.Logger, requestID string,
	msg domain.IncomingMessage, botID string) {
	prompt := domain.ExtractPrompt(msg.Content, botID)
	if prompt == "" {
		if err := s.platform.Reply(ctx, msg.ChannelID, msg.ID, domain.AskForQuestionText); err != nil {
			log.Error("Could not ask for a question", "err", err)
		}
		return
	}

	thread, err := s.openThread(ctx, log, requestID, msg, prompt)
	if err != nil {
		log.Error("Thread creation failed", "err", err)
		s.platformFailure(requestID, msg.ChannelID, err)
		if err := s.platform.Reply(ctx, msg.ChannelID, msg.ID, domain.ThreadFailureText); err != nil {
			log.Error("Could not send failure notice", "err", err)
		}
		return
	}

	if err := s.threads.Save(thread); err != nil {
		log.Warn("Could not record conversation thread", "thread_id", thread.ID, "err", err)
	}
	s.emit(event.New(event.ConversationStartedType, event.ConversationStarted{
		RequestID: requestID,
		ChannelID: msg.ChannelID,
		ThreadID:  thread.ID,
		Prompt:    prompt,
	}))
	log.Info("Conversation started", "thread_id", thread.ID)
}

func (s *RelayService) openThread(ctx context.Context, log *slog.Logger, requestID string,
	msg domain.IncomingMessage, prompt string) (domain.ConversationThread, error) {
	if err := s.platform.Typing(ctx, msg.ChannelID); err != nil {
		return domain.ConversationThread{}, err
	}

	answer := s.sendPrompt(ctx, log, requestID, prompt)

	name := domain.ThreadName(prompt)
	threadID, err := s.platform.StartThread(ctx, msg.ChannelID, msg.ID, name, domain.ThreadAutoArchive)
	if err != nil {
		return domain.ConversationThread{}, err
	}

	now := time.Now().UTC()
	card := domain.NewConversationCard(answer, prompt, msg.AuthorTag, now)
	cardID, err := s.platform.SendCard(ctx, threadID, card)
	if err != nil {
		return domain.ConversationThread{}, err
	}
	if err := s.platform.Pin(ctx, threadID, cardID); err != nil {
		return domain.ConversationThread{}, err
	}

	return domain.ConversationThread{
		ID:              threadID,
		Name:            name,
		ParentChannelID: msg.ChannelID,
		StarterID:       msg.ID,
		RequestedBy:     msg.AuthorTag,
		CreatedAt:       now,
	}, nil
}

func (s *RelayService) followUp(ctx context.Context, log *slog.Logger, requestID string, msg domain.IncomingMessage) {
	prompt := domain.FollowUpPrompt(msg.Content)
	if prompt == "" {
		return
	}

	if err := s.answerFollowUp(ctx, log, requestID, msg.ChannelID, prompt); err != nil {
		log.Error("Follow-up failed", "err", err)
		s.platformFailure(requestID, msg.ChannelID, err)
		if err := s.platform.SendText(ctx, msg.ChannelID, domain.FollowUpFailureText); err != nil {
			log.Error("Could not send failure notice", "err", err)
		}
		return
	}

	count, err := s.threads.IncrementFollowUps(msg.ChannelID)
	switch {
	case stderrors.Is(err, errors.ErrThreadNotFound):
		log.Debug("Follow-up in a thread missing from the ledger")
	case err != nil:
		log.Warn("Could not record follow-up", "err", err)
	default:
		log.Info("Follow-up answered", "follow_ups", count)
	}
	s.emit(event.New(event.FollowUpAnsweredType, event.FollowUpAnswered{
		RequestID: requestID,
		ThreadID:  msg.ChannelID,
		Prompt:    prompt,
	}))
}

func (s *RelayService) answerFollowUp(ctx context.Context, log *slog.Logger, requestID, threadID, prompt string) error {
	if err := s.platform.Typing(ctx, threadID); err != nil {
		return err
	}
	answer := s.sendPrompt(ctx, log, requestID, prompt)
	_, err := s.platform.SendCard(ctx, threadID, domain.NewFollowUpCard(answer, prompt, time.Now().UTC()))
	return err
}

func (s *RelayService) platformFailure(requestID, channelID string, err error) {
	s.emit(event.New(event.PlatformFailureType, event.PlatformFailure{
		RequestID: requestID,
		ChannelID: channelID,
		Err:       err.Error(),
	}))
}

// emit never blocks the relay: telemetry is dropped when the channel is full.
func (s *RelayService) emit(e event.Event) {
	if s.telemetry == nil {
		return
	}
	select {
	case s.telemetry <- e:
	default:
		s.log.Debug("Telemetry event dropped", "type", e.Type)
	}
}
