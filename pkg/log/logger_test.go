package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		if got := ToLogLevel(tt.in); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToLogLevelPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown log level")
		}
	}()
	ToLogLevel("verbose")
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	err := errors.NewNotFittedError("Ridge", "Predict")
	logger.ErrorContext(context.Background(), "prediction failed", ErrAttr(err))

	out := buf.String()
	if !strings.Contains(out, StacktraceAttrKey) {
		t.Errorf("Expected log output to contain %q attribute, got: %s", StacktraceAttrKey, out)
	}
	if !strings.Contains(out, "prediction failed") {
		t.Errorf("Expected log output to contain message, got: %s", out)
	}
}
