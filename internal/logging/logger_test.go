package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelDebug)
	return slog.New(newConsoleHandler(buf, levelVar))
}

func TestConsoleHandlerIncludesComponentAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := WithComponent(newTestLogger(&buf), "dispatcher")
	logger.Info("sound played", Args(String("player", "paplay"), Bool("success", true))...)

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO dispatcher: sound played") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "player=paplay") || !strings.Contains(line, "success=true") {
		t.Fatalf("missing attrs in line: %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)
	logger.Info("spoken", Args(String("message", "Build complete"))...)

	if !strings.Contains(buf.String(), `message="Build complete"`) {
		t.Fatalf("expected quoted message, got %q", buf.String())
	}
}

func TestConsoleHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	handler := newConsoleHandler(&buf, levelVar)
	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should be disabled at info level")
	}
	if !handler.Enabled(context.Background(), slog.LevelWarn) {
		t.Fatal("warn should be enabled at info level")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestCleanupOldLogsPrunesAgedFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "chime-2025-01-01.log")
	fresh := filepath.Join(dir, "chime.log")
	for _, path := range []string{old, fresh} {
		if err := os.WriteFile(path, []byte("log"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	aged := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(old, aged, aged); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(fresh, aged, aged); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	CleanupOldLogs(NewNop(), dir, "chime*.log", 7, fresh)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected %s pruned, stat err=%v", old, err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("excluded file should remain: %v", err)
	}
}
