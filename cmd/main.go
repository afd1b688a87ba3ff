package main

import (
	"aptiq-relay/auth"
	"aptiq-relay/domain/event"
	"aptiq-relay/infrastructure/backend"
	"aptiq-relay/infrastructure/discord"
	"aptiq-relay/internal"
	"aptiq-relay/repositories"
	"aptiq-relay/runtime/workers"
	"aptiq-relay/services"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the relay, connects to Discord and blocks until SIGINT/SIGTERM.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	backendURL := config.BackendURL
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Conversation ledger (BadgerDB), in memory when no path is configured
	db, err := badger.Open(badgerOptions(config.BadgerFilepath))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	threads := repositories.NewThreadRepository(db)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Backend session: a failed startup login is not fatal, the first prompt retries it
	backendClient := backend.NewClient(nil, backendURL, config.BackendTimeout)
	session := auth.NewSession(log, backendClient, auth.Credentials{
		Email:    config.BotEmail,
		Password: config.BotPassword,
	})
	if _, err := session.Login(ctx); err != nil {
		log.Warn("Startup login failed, continuing without credential", "err", err)
	}

	// 5. Relay & Discord
	discordSession, err := discord.NewSession(config.DiscordToken)
	if err != nil {
		return err
	}
	telemetryChan := make(chan event.Event, config.TelemetryBufferSize)
	relay := services.NewRelayService(
		log, session, backendClient,
		discord.NewPlatform(discordSession),
		threads,
		telemetryChan,
	)
	gateway := discord.NewGateway(log, discordSession, relay, config.DiscordClientID)
	if err := gateway.Open(ctx); err != nil {
		return err
	}

	// 6. Supervision
	counter := event.NewCounter()
	sup := workers.NewSupervisor(log, telemetryChan)
	sup.Add(
		gateway,
		workers.NewTelemetryWorker(log, telemetryChan,
			event.NewRelayCounterHandler(log, counter),
			event.NewLatencyHandler(log, counter, config.LatencyThreshold),
			event.NewLanguageHandler(log),
			event.NewWorkerRestartedAfterPanicHandler(log, counter),
		),
		workers.NewHeartbeatWorker(log, counter, config.HeartbeatInterval),
	)
	if config.DebugPort > 0 {
		sup.Add(internal.NewDebugServer(log, config.DebugPort, threads, func() map[string]int {
			return lo.MapKeys(counter.Snapshot(), func(_ int, t event.Type) string { return string(t) })
		}))
	}

	log.Info("Relay started", "backend", backendURL)
	// Run returns once every worker stopped, after ctx is canceled
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}

func badgerOptions(path string) badger.Options {
	if path == "" {
		return badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}
	return badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
}
