package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"embedsvc/config"
)

// New creates a structured logger. JSON output by default, console format
// for development; unknown levels fall back to info.
func New(cfg *config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg != nil && cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
			level = parsed
		}
	}

	serviceName := "embedding-service"
	if cfg != nil && cfg.ServiceName != "" {
		serviceName = cfg.ServiceName
	}

	var out = zerolog.New(os.Stdout)
	if cfg != nil && cfg.Format == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	return out.Level(level).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
