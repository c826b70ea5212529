package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	SetLevel(Warning)
	defer SetLevel(Notice)

	logger := New("logtest")
	logger.Info("hidden message")
	logger.Warning("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("Expected info message to be filtered at warning level, got %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("Expected warning message in output, got %q", out)
	}
	if !strings.Contains(out, "[logtest]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
}

func TestIsEnabled(t *testing.T) {
	SetLevel(Info)
	defer SetLevel(Notice)

	if !IsEnabled(Info, "any") {
		t.Error("Expected info to be enabled at info level")
	}
	if IsEnabled(Debug, "any") {
		t.Error("Expected debug to be disabled at info level")
	}
}
