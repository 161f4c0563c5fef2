package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global zerolog logger from environment variables:
//
//   - LOG_LEVEL  (default: info)
//   - LOG_FORMAT (json or console, default: console)
//   - LOG_OUTPUT (stdout or stderr, default: stdout)
func Setup() error {
	level, err := zerolog.ParseLevel(strings.ToLower(getenvDefault("LOG_LEVEL", "info")))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	var output io.Writer = os.Stdout
	if getenvDefault("LOG_OUTPUT", "stdout") == "stderr" {
		output = os.Stderr
	}

	if strings.ToLower(getenvDefault("LOG_FORMAT", "console")) != "json" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	return nil
}

// WithComponent returns a logger tagged with a component field.
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
