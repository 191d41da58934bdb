package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := store.Settings
	if s.PageSize != 6 {
		t.Errorf("Expected default PageSize 6, got %d", s.PageSize)
	}
	if s.LoadDelay() != 500*time.Millisecond {
		t.Errorf("Expected default LoadDelay 500ms, got %v", s.LoadDelay())
	}
	if s.NearEndThreshold != 2 {
		t.Errorf("Expected default NearEndThreshold 2, got %d", s.NearEndThreshold)
	}
	if s.KeyMap.Like != "f" {
		t.Errorf("Expected default KeyMap.Like 'f', got %q", s.KeyMap.Like)
	}
	if s.KeyMap.ToggleKind != "tab" {
		t.Errorf("Expected default KeyMap.ToggleKind 'tab', got %q", s.KeyMap.ToggleKind)
	}
	if s.Theme.Muted != "244" {
		t.Errorf("Expected default Theme.Muted '244', got %q", s.Theme.Muted)
	}
	if s.StrictPlatforms {
		t.Error("Expected StrictPlatforms to default to false")
	}
	if s.UsesDatabase() {
		t.Error("Expected no database by default")
	}
	if filepath.Base(s.LogFile) != "atelie.log" {
		t.Errorf("Expected default log file, got %q", s.LogFile)
	}
	if s.LogLevel != "info" {
		t.Errorf("Expected default LogLevel 'info', got %q", s.LogLevel)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file not created")
	}
}

func TestLoad_ReadsNestedKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `page_size: 4
load_delay_ms: 0
database: " /tmp/atelie.db "
log_level: DEBUG
keymap:
  like: L
theme:
  accent: "99"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := store.Settings
	if s.PageSize != 4 {
		t.Errorf("PageSize = %d, want 4", s.PageSize)
	}
	if s.LoadDelay() != 0 {
		t.Errorf("LoadDelay = %v, want 0", s.LoadDelay())
	}
	if s.Database != "/tmp/atelie.db" {
		t.Errorf("Database = %q, want trimmed path", s.Database)
	}
	if s.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", s.LogLevel)
	}
	if s.KeyMap.Like != "L" {
		t.Errorf("KeyMap.Like = %q, want L", s.KeyMap.Like)
	}
	if s.KeyMap.Quit != "q" {
		t.Errorf("KeyMap.Quit = %q, want default q", s.KeyMap.Quit)
	}
	if s.Theme.Accent != "99" {
		t.Errorf("Theme.Accent = %q, want 99", s.Theme.Accent)
	}
}

func TestLoad_NonPositivePageSizeFallsBack(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("page_size: 0\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	store, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Settings.PageSize != 6 {
		t.Errorf("PageSize = %d, want 6", store.Settings.PageSize)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	_ = os.WriteFile(configPath, []byte("invalid_yaml: ["), 0600)

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for corrupt config read, got nil")
	}
}

func TestStore_SetDatabasePersists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	store, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if store.Path() != configPath {
		t.Errorf("Path = %q, want %q", store.Path(), configPath)
	}

	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	if err := store.SetDatabase(dbPath); err != nil {
		t.Fatalf("SetDatabase failed: %v", err)
	}

	reloaded, err := Load(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Settings.Database != dbPath {
		t.Errorf("Persistence failed, got %q", reloaded.Settings.Database)
	}
}
