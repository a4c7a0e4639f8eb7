package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-overlaygen/internal/logging"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level string
		dev   bool
		want  zapcore.Level
	}{
		{level: "", want: zapcore.InfoLevel},
		{level: "DEBUG", dev: true, want: zapcore.DebugLevel},
		{level: " warn ", want: zapcore.WarnLevel},
	}
	for _, tc := range cases {
		logger, err := logging.New(tc.level, tc.dev)
		if err != nil {
			t.Fatalf("New(%q): %v", tc.level, err)
		}
		if !logger.Core().Enabled(tc.want) || (tc.want > zapcore.DebugLevel && logger.Core().Enabled(tc.want-1)) {
			t.Errorf("New(%q) does not log exactly from %s", tc.level, tc.want)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := logging.New("loud", false); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
