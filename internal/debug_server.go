package internal

import (
	"aptiq-relay/domain"
	"aptiq-relay/repositories"
	"context"
	"embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"
)

//go:embed threads.html
var templatesFS embed.FS

type ThreadRow struct {
	ID          string
	Name        string
	Channel     string
	RequestedBy string
	CreatedAt   string
	FollowUps   int
}

type StatsProvider func() map[string]int

type PageData struct {
	Items []ThreadRow
	Stats map[string]int
}

// DebugServer serves a read-only view of the conversation ledger and the relay
// counters. It runs as a supervised worker.
type DebugServer struct {
	log     *slog.Logger
	port    int
	threads repositories.IThreadRepository
	stats   StatsProvider
}

func NewDebugServer(log *slog.Logger, port int, threads repositories.IThreadRepository, stats StatsProvider) *DebugServer {
	return &DebugServer{log: log, port: port, threads: threads, stats: stats}
}

func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "threads.html"))

	mux.HandleFunc("/threads", func(w http.ResponseWriter, r *http.Request) {
		threads, err := s.threads.List()
		if err != nil {
			s.log.Error("Could not list threads", "err", err)
			http.Error(w, "ledger unavailable", http.StatusInternalServerError)
			return
		}
		data := PageData{Items: lo.Map(threads, toRow), Stats: s.snapshot()}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s.snapshot())
	})
	return mux
}

func (s *DebugServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Debug server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *DebugServer) snapshot() map[string]int {
	if s.stats == nil {
		return map[string]int{}
	}
	return s.stats()
}

func toRow(t domain.ConversationThread, _ int) ThreadRow {
	return ThreadRow{
		ID:          t.ID,
		Name:        t.Name,
		Channel:     t.ParentChannelID,
		RequestedBy: t.RequestedBy,
		CreatedAt:   t.CreatedAt.Format("2006-01-02 15:04:05"),
		FollowUps:   t.FollowUps,
	}
}
