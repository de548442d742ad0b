package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit_Level(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	if err := Init("production", "warn"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !Logger.Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled")
	}
}

func TestInit_DevelopmentDefaultsToDebug(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop() })

	if err := Init("development", ""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !Logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("development logger should emit debug")
	}
}

func TestInit_BadLevel(t *testing.T) {
	if err := Init("production", "loud"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
