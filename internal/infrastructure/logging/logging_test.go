package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	var buf bytes.Buffer
	if err := Setup(&buf, "warn"); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	log.Info("hidden")
	log.WithField("id", "7").Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "id=7") {
		t.Errorf("warn entry missing: %q", out)
	}

	if err := Setup(&buf, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := Setup(&buf, ""); err != nil || log.GetLevel() != log.InfoLevel {
		t.Errorf("empty level should mean info, got %v (%v)", log.GetLevel(), err)
	}
}

func TestToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "state", "atelie.log")
	closer, err := ToFile(path, "info")
	if err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}
	log.Info("Liked item")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Liked item") {
		t.Errorf("log file missing entry: %q", data)
	}
}
