package internal

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	DiscordToken        string        `env:"DISCORD_TOKEN,required=true"`
	DiscordClientID     string        `env:"DISCORD_CLIENT_ID,required=true"`
	BackendURL          string        `env:"APTIQ_BACKEND_URL_BOT,required=true"`
	BotEmail            string        `env:"APTIQ_BOT_EMAIL,required=true"`
	BotPassword         string        `env:"APTIQ_BOT_PASSWORD,required=true"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	BackendTimeout      time.Duration `env:"BACKEND_TIMEOUT,default=60s"`
	LatencyThreshold    time.Duration `env:"LATENCY_THRESHOLD,default=20s"`
	HeartbeatInterval   time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
	TelemetryBufferSize int           `env:"TELEMETRY_BUFFER_SIZE,default=256"`
	BadgerFilepath      string        `env:"BADGER_FILEPATH"`
	DebugPort           int           `env:"DEBUG_PORT,default=0"`
}

// Validate rejects values the relay cannot run with.
func (c Config) Validate() error {
	if _, err := BackendBaseURL(c.BackendURL); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"BACKEND_TIMEOUT":    c.BackendTimeout,
		"LATENCY_THRESHOLD":  c.LatencyThreshold,
		"HEARTBEAT_INTERVAL": c.HeartbeatInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.TelemetryBufferSize < 0 {
		return fmt.Errorf("TELEMETRY_BUFFER_SIZE must not be negative, got %d", c.TelemetryBufferSize)
	}
	return nil
}

// BackendBaseURL checks APTIQ_BACKEND_URL_BOT is an absolute http(s) URL.
func BackendBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf(
			"APTIQ_BACKEND_URL_BOT must be an absolute http(s) URL, got %q",
			raw,
		)
	}
	return raw, nil
}
