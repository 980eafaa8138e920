package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"incubator/internal/platform/logging"
)

func TestNewParsesLevel(t *testing.T) {
	t.Parallel()
	log, err := logging.New("debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if !log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug to be enabled")
	}
	if _, err := logging.New("loud"); err == nil {
		t.Fatalf("expected invalid level error")
	}
	if logging.OrNop(nil) == nil {
		t.Fatalf("OrNop must never return nil")
	}
}

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "tui.log")
	log, err := logging.New("warn", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Warn("request failed")
	log.Info("dropped below level")
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), `"msg":"request failed"`) {
		t.Fatalf("expected warn line in file, got %q", raw)
	}
	if strings.Contains(string(raw), "dropped below level") {
		t.Fatalf("info must be filtered at warn level")
	}
}
