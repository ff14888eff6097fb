package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_Level(t *testing.T) {
	Init("debug")
	if !Sugar().Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected debug level to be enabled")
	}

	Init("warn")
	if Sugar().Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("Expected info level to be disabled at warn")
	}
}

func TestInit_InvalidLevelDefaultsToInfo(t *testing.T) {
	Init("loud")
	core := Sugar().Desugar().Core()
	if !core.Enabled(zapcore.InfoLevel) || core.Enabled(zapcore.DebugLevel) {
		t.Error("Expected invalid level to fall back to info")
	}
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	defer Init("info")

	Infof("generated %d tests", 3)
	Errorf("request failed: %s", "timeout")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "generated 3 tests" {
		t.Errorf("Expected 'generated 3 tests', got %s", entries[0].Message)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("Expected error level, got %s", entries[1].Level)
	}
}
