package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name: "valid config",
			content: `
logger:
  level: debug
  output_paths:
    - stdout
discord:
  token: "test-token"
  listen_channel: "123456"
freefire:
  region: "bd"
  user_uid: "svc-user"
  api_key: "svc-key"
limiter:
  backend: memory
  max_users: 512
health:
  addr: ":8080"
`,
			wantErr: false,
		},
		{
			name:    "empty config",
			content: "",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}

			cfg, err := Load(configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && cfg == nil {
				t.Error("Load() returned nil config without error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should error when no file exists")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("discord:\n  token: t\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithDefaults(configPath)
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}

	if cfg.Logger.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Logger.Level)
	}
	if cfg.FreeFire.BaseURL == "" {
		t.Error("expected a default freefire base URL")
	}
	if cfg.FreeFire.Region != "bd" {
		t.Errorf("expected default region bd, got %q", cfg.FreeFire.Region)
	}
	if cfg.Limiter.Backend != "memory" {
		t.Errorf("expected default limiter backend memory, got %q", cfg.Limiter.Backend)
	}
	if cfg.Limiter.Window != 10*time.Second {
		t.Errorf("expected default window 10s, got %v", cfg.Limiter.Window)
	}
	if cfg.Limiter.MaxUsers != 1024 {
		t.Errorf("expected default max users 1024, got %d", cfg.Limiter.MaxUsers)
	}
}

func TestLoadMergesFiles(t *testing.T) {
	tmpDir := t.TempDir()
	base := filepath.Join(tmpDir, "config.yaml")
	secrets := filepath.Join(tmpDir, "secrets.yaml")

	if err := os.WriteFile(base, []byte("freefire:\n  region: bd\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(secrets, []byte("freefire:\n  api_key: from-secrets\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(base, secrets)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FreeFire.Region != "bd" {
		t.Errorf("base file value lost: %q", cfg.FreeFire.Region)
	}
	if cfg.FreeFire.APIKey != "from-secrets" {
		t.Errorf("secrets file value lost: %q", cfg.FreeFire.APIKey)
	}
}
