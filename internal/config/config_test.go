package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	raw := `
server: rust.example.org
port: 28082
player_id: 76561198000000001
player_token: -194854213
use_proxy: true
token_wait: true
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "rustplus.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server != "rust.example.org" || cfg.Port != 28082 {
		t.Errorf("address = %s:%d", cfg.Server, cfg.Port)
	}
	if cfg.PlayerID != 76561198000000001 || cfg.PlayerToken != -194854213 {
		t.Errorf("identity = %d/%d", cfg.PlayerID, cfg.PlayerToken)
	}
	if !cfg.UseProxy || !cfg.TokenWait {
		t.Error("flags not parsed")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("want parse error")
	}
}

func TestGetDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := GetDefaultConfig()
	if cfg.Server != "localhost" || cfg.Port != 28012 {
		t.Errorf("default address = %s:%d", cfg.Server, cfg.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default level = %q", cfg.Logging.Level)
	}
}
