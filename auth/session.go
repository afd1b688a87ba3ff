package auth

import (
	"aptiq-relay/contract"
	"aptiq-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Session caches the single bearer credential of the bot.
// The mutex only protects the slot: logins are not serialized, so two callers seeing
// an empty slot at the same time both log in and the last one to finish wins.
type Session struct {
	log         *slog.Logger
	client      contract.ILoginClient
	credentials Credentials

	mu    sync.RWMutex
	token string
}

func NewSession(log *slog.Logger, client contract.ILoginClient, credentials Credentials) *Session {
	return &Session{log: log, client: client, credentials: credentials}
}

// EnsureToken returns the cached credential, logging in first when there is none.
// On failure the slot stays empty and the error is returned; callers may go on
// without a credential and let the backend deny the call.
func (s *Session) EnsureToken(ctx context.Context) (string, error) {
	if token := s.current(); token != "" {
		return token, nil
	}
	return s.Login(ctx)
}

// Login performs the login call and caches the returned token.
func (s *Session) Login(ctx context.Context) (string, error) {
	if err := ValidateCredentials(s.credentials); err != nil {
		s.log.Error("Backend login skipped, service account credentials are invalid", "err", err)
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}

	token, err := s.client.Login(ctx, s.credentials.Email, s.credentials.Password)
	if err != nil {
		s.log.Error("Backend login failed", "email", s.credentials.Email, "err", err)
		return "", err
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if expiresAt, ok := TokenExpiry(token); ok {
		s.log.Info("Logged in to backend", "email", s.credentials.Email, "expires_at", expiresAt)
	} else {
		s.log.Info("Logged in to backend", "email", s.credentials.Email)
	}
	return token, nil
}

// Invalidate drops the cached credential so the next call logs in again.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *Session) current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
