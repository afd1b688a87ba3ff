package backend

import (
	"aptiq-relay/errors"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(nil, server.URL+"/", 5*time.Second)
}

func TestClient_Login(t *testing.T) {
	t.Run("should post the credentials and return the token", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			req.Equal(http.MethodPost, r.Method)
			req.Equal("/login", r.URL.Path)
			req.Empty(r.Header.Get("Authorization"))

			var body map[string]string
			req.NoError(json.NewDecoder(r.Body).Decode(&body))
			req.Equal(map[string]string{"email": "bot@aptiq.example", "password": "s3cret"}, body)

			_, _ = w.Write([]byte(`{"token":"abc"}`))
		})

		token, err := client.Login(context.Background(), "bot@aptiq.example", "s3cret")
		req.NoError(err)
		req.Equal("abc", token)
	})

	t.Run("should fail when the backend rejects the credentials", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"bad credentials"}`))
		})

		token, err := client.Login(context.Background(), "bot@aptiq.example", "wrong")
		req.ErrorIs(err, errors.ErrLoginFailed)
		req.Empty(token)
	})

	t.Run("should fail when no token is returned", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := client.Login(context.Background(), "bot@aptiq.example", "s3cret")
		req.ErrorIs(err, errors.ErrMissingToken)
	})
}

func TestClient_SendMessage(t *testing.T) {
	t.Run("should send the prompt with the bearer token", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			req.Equal("/message", r.URL.Path)
			req.Equal("Bearer abc", r.Header.Get("Authorization"))
			req.Equal("application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			req.NoError(json.NewDecoder(r.Body).Decode(&body))
			req.Equal("hello?", body["content"])

			_, _ = w.Write([]byte(`{"reply":"hi!"}`))
		})

		reply, err := client.SendMessage(context.Background(), "abc", "hello?")
		req.NoError(err)
		req.Equal("hi!", reply)
	})

	t.Run("should report a denied token as unauthorized", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.SendMessage(context.Background(), "expired", "hello?")
		req.ErrorIs(err, errors.ErrUnauthorized)
	})

	t.Run("should report other statuses as backend errors", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		})

		_, err := client.SendMessage(context.Background(), "abc", "hello?")
		req.ErrorIs(err, errors.ErrBackendStatus)
		req.NotErrorIs(err, errors.ErrUnauthorized)
		req.Contains(err.Error(), "upstream down")
	})

	t.Run("should return an empty reply when the backend omits it", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})

		reply, err := client.SendMessage(context.Background(), "abc", "hello?")
		req.NoError(err)
		req.Empty(reply)
	})

	t.Run("should fail on a malformed body", func(t *testing.T) {
		req := require.New(t)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})

		_, err := client.SendMessage(context.Background(), "abc", "hello?")
		req.Error(err)
	})

	t.Run("should fail when the backend is unreachable", func(t *testing.T) {
		req := require.New(t)
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := NewClient(nil, url, time.Second).SendMessage(context.Background(), "abc", "hello?")
		req.Error(err)
	})
}

func TestExcerpt(t *testing.T) {
	t.Run("should keep short bodies untouched", func(t *testing.T) {
		req := require.New(t)
		req.Equal("upstream down", excerpt([]byte("  upstream down\n")))
	})

	t.Run("should cut long bodies on a character boundary", func(t *testing.T) {
		req := require.New(t)
		body := "a" + strings.Repeat("é", maxErrorBody)

		got := excerpt([]byte(body))

		req.True(utf8.ValidString(got))
		req.True(strings.HasSuffix(got, "..."))
		req.Equal(maxErrorBody, utf8.RuneCountInString(strings.TrimSuffix(got, "...")))
	})
}
