package logger_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ross1116/pvpcalc/internal/config"
	"github.com/ross1116/pvpcalc/internal/logger"
)

func TestFromConfig(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"warn":     zerolog.WarnLevel,
		"disabled": zerolog.Disabled,
		"":         zerolog.InfoLevel,
		"chatty":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		l := logger.FromConfig(&config.Config{LogLevel: in})
		if got := l.GetLevel(); got != want {
			t.Errorf("LOG_LEVEL=%q: level %v, want %v", in, got, want)
		}
	}
}

func TestNew(t *testing.T) {
	if got := logger.New().GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("New() level = %v, want debug", got)
	}
}
