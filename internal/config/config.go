// Package config loads and persists the application settings.
//
// Settings live in config.json inside the configuration directory
// (~/.claude-voice-assistant by default). Missing keys fall back to
// defaults and a handful of environment variables override the file,
// so API keys never have to be written to disk.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/storage"
)

const (
	AppName    = "Claude Voice Assistant"
	AppVersion = "1.0.0"

	// DirName is the per-user configuration directory under $HOME.
	DirName = ".claude-voice-assistant"

	FileName    = "config.json"
	LogFileName = "claudevoice.log"

	DefaultClaudeCommand    = "claude"
	DefaultLanguage         = "pl-PL"
	DefaultTTSRate          = "+0%"
	DefaultTTSVolume        = "+0%"
	DefaultLicenseServerURL = "https://license.srv1251441.hstgr.cloud/api"
)

// Environment variables that override config.json.
const (
	EnvConfigDir         = "CLAUDE_VOICE_CONFIG_DIR"
	EnvGroqAPIKey        = "GROQ_API_KEY"
	EnvAnthropicAPIKey   = "ANTHROPIC_API_KEY"
	EnvAzureSpeechKey    = "AZURE_SPEECH_KEY"
	EnvAzureSpeechRegion = "AZURE_SPEECH_REGION"
	EnvLicenseServerURL  = "CLAUDE_VOICE_LICENSE_URL"
)

// Settings are the user-editable options persisted in config.json.
type Settings struct {
	GroqAPIKey        string `json:"groq_api_key"`
	AnthropicAPIKey   string `json:"anthropic_api_key,omitempty"`
	AzureSpeechKey    string `json:"azure_speech_key,omitempty"`
	AzureSpeechRegion string `json:"azure_speech_region,omitempty"`
	ClaudeCommand     string `json:"claude_command"`
	Language          string `json:"language"`
	AutoRead          bool   `json:"auto_read"`
	TTSVoice          string `json:"tts_voice"`
	TTSRate           string `json:"tts_rate"`
	TTSVolume         string `json:"tts_volume"`
	LicenseServerURL  string `json:"license_server_url"`
}

// Default returns the settings used when no config file exists yet.
func Default() Settings {
	return Settings{
		ClaudeCommand:    DefaultClaudeCommand,
		Language:         DefaultLanguage,
		AutoRead:         true,
		TTSVoice:         VoiceFor(DefaultLanguage),
		TTSRate:          DefaultTTSRate,
		TTSVolume:        DefaultTTSVolume,
		LicenseServerURL: DefaultLicenseServerURL,
	}
}

// Dir resolves the configuration directory: the CLAUDE_VOICE_CONFIG_DIR
// override when set, otherwise ~/.claude-voice-assistant.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Config is the loaded settings bound to their backing store.
type Config struct {
	Settings
	store *storage.FileStore
	log   *logger.Logger
}

// Load reads config.json from the store. Keys present in the file
// override the defaults, environment variables override the file, and
// a missing file yields pure defaults.
func Load(store *storage.FileStore, log *logger.Logger) (*Config, error) {
	settings := Default()
	if err := store.Load(FileName, &settings); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	applyEnv(&settings)
	normalize(&settings, log)

	return &Config{Settings: settings, store: store, log: log}, nil
}

func applyEnv(s *Settings) {
	if v := os.Getenv(EnvGroqAPIKey); v != "" {
		s.GroqAPIKey = v
	}
	if v := os.Getenv(EnvAnthropicAPIKey); v != "" {
		s.AnthropicAPIKey = v
	}
	if v := os.Getenv(EnvAzureSpeechKey); v != "" {
		s.AzureSpeechKey = v
	}
	if v := os.Getenv(EnvAzureSpeechRegion); v != "" {
		s.AzureSpeechRegion = v
	}
	if v := os.Getenv(EnvLicenseServerURL); v != "" {
		s.LicenseServerURL = v
	}
}

func normalize(s *Settings, log *logger.Logger) {
	if !IsSupported(s.Language) {
		log.Warn("unsupported language %q, falling back to %s", s.Language, DefaultLanguage)
		s.Language = DefaultLanguage
	}
	if s.ClaudeCommand == "" {
		s.ClaudeCommand = DefaultClaudeCommand
	}
	if s.TTSVoice == "" {
		s.TTSVoice = VoiceFor(s.Language)
	}
	if s.TTSRate == "" {
		s.TTSRate = DefaultTTSRate
	}
	if s.TTSVolume == "" {
		s.TTSVolume = DefaultTTSVolume
	}
	if s.LicenseServerURL == "" {
		s.LicenseServerURL = DefaultLicenseServerURL
	}
}

// Save writes the current settings back to config.json.
func (c *Config) Save() error {
	return c.store.Save(FileName, c.Settings)
}

// SetLanguage switches the interface and dictation language and saves.
// The TTS voice follows the language default unless the user picked a
// custom voice earlier.
func (c *Config) SetLanguage(code string) error {
	if !IsSupported(code) {
		return fmt.Errorf("unsupported language %q", code)
	}

	prevDefault := VoiceFor(c.Language)
	c.Language = code
	if c.TTSVoice == "" || c.TTSVoice == prevDefault {
		c.TTSVoice = VoiceFor(code)
	}
	return c.Save()
}

// Set updates a single settings key by its JSON name and saves.
// Used by the `config set` command.
func (c *Config) Set(key, value string) error {
	switch key {
	case "groq_api_key":
		c.GroqAPIKey = value
	case "anthropic_api_key":
		c.AnthropicAPIKey = value
	case "azure_speech_key":
		c.AzureSpeechKey = value
	case "azure_speech_region":
		c.AzureSpeechRegion = value
	case "claude_command":
		c.ClaudeCommand = value
	case "language":
		return c.SetLanguage(value)
	case "auto_read":
		c.AutoRead = value == "true" || value == "1"
	case "tts_voice":
		c.TTSVoice = value
	case "tts_rate":
		c.TTSRate = value
	case "tts_volume":
		c.TTSVolume = value
	case "license_server_url":
		c.LicenseServerURL = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return c.Save()
}
