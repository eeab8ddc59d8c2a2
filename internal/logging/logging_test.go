package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		verbose   bool
		wantDebug bool
	}{
		{false, false},
		{true, true},
	}

	for _, tt := range tests {
		logger := NewLogger(tt.verbose)
		got := logger.Desugar().Core().Enabled(zapcore.DebugLevel)
		if got != tt.wantDebug {
			t.Errorf("NewLogger(%v): debug enabled = %v, want %v", tt.verbose, got, tt.wantDebug)
		}
		if !logger.Desugar().Core().Enabled(zapcore.InfoLevel) {
			t.Errorf("NewLogger(%v): info should always be enabled", tt.verbose)
		}
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	logger.Infow("discarded", "key", "value")
	if logger.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("nop logger should not enable any level")
	}
}
