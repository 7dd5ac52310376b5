package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/storage"
)

func setupStore(t *testing.T) *storage.FileStore {
	t.Helper()
	return storage.NewFileStore(t.TempDir(), logger.New(logger.LevelOff, nil))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvGroqAPIKey, "")
	t.Setenv(EnvAzureSpeechKey, "")
	t.Setenv(EnvAzureSpeechRegion, "")
	t.Setenv(EnvAnthropicAPIKey, "")
	t.Setenv(EnvLicenseServerURL, "")

	cfg, err := Load(setupStore(t), logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Language != DefaultLanguage {
		t.Fatalf("expected language %s, got %s", DefaultLanguage, cfg.Language)
	}
	if !cfg.AutoRead {
		t.Fatalf("expected auto_read default true")
	}
	if cfg.TTSVoice != "pl-PL-ZofiaNeural" {
		t.Fatalf("expected default voice for %s, got %s", DefaultLanguage, cfg.TTSVoice)
	}
	if cfg.ClaudeCommand != DefaultClaudeCommand {
		t.Fatalf("expected command %q, got %q", DefaultClaudeCommand, cfg.ClaudeCommand)
	}
	if cfg.LicenseServerURL != DefaultLicenseServerURL {
		t.Fatalf("expected default license url, got %q", cfg.LicenseServerURL)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvGroqAPIKey, "")

	store := setupStore(t)
	raw := `{"groq_api_key": "gsk_file", "language": "de-DE", "auto_read": false}`
	if err := os.WriteFile(filepath.Join(store.Dir(), FileName), []byte(raw), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg, err := Load(store, logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.GroqAPIKey != "gsk_file" {
		t.Fatalf("expected key from file, got %q", cfg.GroqAPIKey)
	}
	if cfg.Language != "de-DE" {
		t.Fatalf("expected de-DE, got %s", cfg.Language)
	}
	if cfg.AutoRead {
		t.Fatalf("expected auto_read false from file")
	}
	// Keys absent from the file keep their defaults.
	if cfg.TTSRate != DefaultTTSRate {
		t.Fatalf("expected default rate, got %q", cfg.TTSRate)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	store := setupStore(t)
	raw := `{"groq_api_key": "gsk_file", "license_server_url": "https://file.example/api"}`
	if err := os.WriteFile(filepath.Join(store.Dir(), FileName), []byte(raw), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	t.Setenv(EnvGroqAPIKey, "gsk_env")
	t.Setenv(EnvLicenseServerURL, "https://env.example/api")

	cfg, err := Load(store, logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.GroqAPIKey != "gsk_env" {
		t.Fatalf("expected env to win, got %q", cfg.GroqAPIKey)
	}
	if cfg.LicenseServerURL != "https://env.example/api" {
		t.Fatalf("expected env license url, got %q", cfg.LicenseServerURL)
	}
}

func TestLoadUnsupportedLanguageFallsBack(t *testing.T) {
	store := setupStore(t)
	raw := `{"language": "xx-XX"}`
	if err := os.WriteFile(filepath.Join(store.Dir(), FileName), []byte(raw), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg, err := Load(store, logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Language != DefaultLanguage {
		t.Fatalf("expected fallback to %s, got %s", DefaultLanguage, cfg.Language)
	}
}

func TestSetLanguageFollowsVoice(t *testing.T) {
	cfg, err := Load(setupStore(t), logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := cfg.SetLanguage("de-DE"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if cfg.TTSVoice != "de-DE-KatjaNeural" {
		t.Fatalf("expected voice to follow language, got %s", cfg.TTSVoice)
	}

	// A custom voice survives language switches.
	cfg.TTSVoice = "de-DE-ConradNeural"
	if err := cfg.SetLanguage("fr-FR"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if cfg.TTSVoice != "de-DE-ConradNeural" {
		t.Fatalf("expected custom voice to stick, got %s", cfg.TTSVoice)
	}

	if err := cfg.SetLanguage("xx-XX"); err == nil {
		t.Fatalf("expected error for unsupported language")
	}
}

func TestSetRoundTrip(t *testing.T) {
	store := setupStore(t)
	cfg, err := Load(store, logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := cfg.Set("claude_command", "/opt/claude/bin/claude"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cfg.Set("auto_read", "false"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cfg.Set("bogus", "x"); err == nil {
		t.Fatalf("expected error for unknown key")
	}

	reloaded, err := Load(store, logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.ClaudeCommand != "/opt/claude/bin/claude" {
		t.Fatalf("expected persisted command, got %q", reloaded.ClaudeCommand)
	}
	if reloaded.AutoRead {
		t.Fatalf("expected persisted auto_read false")
	}
}
