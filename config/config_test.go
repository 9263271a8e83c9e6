package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erlware-deprecated/ecrypt"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Digits != ecrypt.DefaultDigits {
		t.Errorf("got %v digits, want %v", cfg.Digits, ecrypt.DefaultDigits)
	}
	if cfg.Store != "ecrypt.db" {
		t.Errorf("got store %q, want %q", cfg.Store, "ecrypt.db")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("got log level %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecrypt.yaml")
	body := "digits: 32\nstore: /tmp/keys.db\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Digits != 32 {
		t.Errorf("got %v digits, want 32", cfg.Digits)
	}
	if cfg.Store != "/tmp/keys.db" {
		t.Errorf("got store %q, want %q", cfg.Store, "/tmp/keys.db")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("got log level %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("want an error for a missing config file")
	}
}
