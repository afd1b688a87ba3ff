package internal

import (
	"aptiq-relay/domain"
	"aptiq-relay/mocks"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDebugServer_Threads(t *testing.T) {
	t.Run("should render the recorded threads", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockIThreadRepository(ctrl)
		threads.EXPECT().List().Return([]domain.ConversationThread{{
			ID:              "thread-1",
			Name:            domain.ThreadName("why is the sky blue?"),
			ParentChannelID: "chan-1",
			RequestedBy:     "alice",
			CreatedAt:       time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
			FollowUps:       3,
		}}, nil)
		stats := func() map[string]int { return map[string]int{"CONVERSATION_STARTED": 1} }
		srv := NewDebugServer(slog.Default(), 0, threads, stats)

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/threads", nil))

		req.Equal(http.StatusOK, rec.Code)
		body := rec.Body.String()
		req.Contains(body, "thread-1")
		req.Contains(body, "alice")
		req.Contains(body, "2024-05-01 12:30:00")
		req.Contains(body, "CONVERSATION_STARTED: <b>1</b>")
	})

	t.Run("should fail when the ledger cannot be read", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		threads := mocks.NewMockIThreadRepository(ctrl)
		threads.EXPECT().List().Return(nil, fmt.Errorf("closed"))
		srv := NewDebugServer(slog.Default(), 0, threads, nil)

		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/threads", nil))

		req.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func TestDebugServer_Stats(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	srv := NewDebugServer(slog.Default(), 0, mocks.NewMockIThreadRepository(ctrl),
		func() map[string]int { return map[string]int{"RELOGIN": 2} })

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	var stats map[string]int
	req.NoError(json.NewDecoder(rec.Body).Decode(&stats))
	req.Equal(map[string]int{"RELOGIN": 2}, stats)
}
