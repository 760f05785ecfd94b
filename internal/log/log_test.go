package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/uriparse/internal/log"
)

func TestNewConsole_FormatsSpans(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewConsole(&buf, slog.LevelDebug)
	logger.Debug("span", "host", []byte("example.com"), "raw", []byte{0xff})

	out := buf.String()
	if !strings.Contains(out, "example.com") {
		t.Errorf("log output %q does not contain the host span as text", out)
	}
	if !strings.Contains(out, `\xff`) {
		t.Errorf("log output %q does not contain the quoted invalid span", out)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Error("Noop.Enabled(ERROR) = true, want false")
	}
}
