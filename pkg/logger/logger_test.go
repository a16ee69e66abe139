package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestGet_BeforeInit_IsUsable(t *testing.T) {
	Reset()

	// Must not panic: startup failures before configuration is loaded
	// still need a logger to die through.
	log := Get()
	log.Info().Msg("startup")

	if log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info default, got %s", log.GetLevel())
	}
}

func TestInit_AppliesOnlyOnce(t *testing.T) {
	Reset()

	first := Init(Options{Level: "error"})
	if first.GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("expected error level, got %s", first.GetLevel())
	}

	second := Init(Options{Level: "debug"})
	if second.GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("second Init must not reconfigure, got %s", second.GetLevel())
	}
	if Get().GetLevel() != zerolog.ErrorLevel {
		t.Fatalf("Get must return the configured logger")
	}
}
