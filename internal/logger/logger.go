package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ross1116/pvpcalc/internal/config"
)

// New logs to stderr so command output on stdout stays clean.
func New() zerolog.Logger {
	return SetLevel(zerolog.DebugLevel)
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

// FromConfig builds the logger at cfg.LogLevel, falling back to info.
func FromConfig(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	logger := SetLevel(level)
	if err != nil {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
	}
	return logger
}

var Module = fx.Provide(FromConfig)
