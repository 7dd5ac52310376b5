// Package app wires the subsystems together and runs the session loop
// that joins UI events, assistant output, and speech state.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/WojtekL7/claude-voice-assistant/internal/bridge"
	"github.com/WojtekL7/claude-voice-assistant/internal/config"
	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/i18n"
	"github.com/WojtekL7/claude-voice-assistant/internal/license"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/quickactions"
	"github.com/WojtekL7/claude-voice-assistant/internal/speech"
	"github.com/WojtekL7/claude-voice-assistant/internal/transcript"
	"github.com/WojtekL7/claude-voice-assistant/internal/ui"
)

const cacheDirName = "tts-cache"

// Conversation lines kept for read-last. Old lines are dropped in
// blocks so a long-running session does not grow without bound.
const maxReplyLines = 2000

// conversationView is the slice of the terminal UI the session loop
// writes to.
type conversationView interface {
	AppendUser(text string)
	AppendAssistant(text string)
	AppendSystem(text string)
	AppendError(text string)
	SetInput(text string)
	Clear()
}

// Option configures the app.
type Option func(*App)

// WithAssistant replaces the assistant CLI adapter.
func WithAssistant(a domain.Assistant) Option {
	return func(app *App) { app.assistant = a }
}

// WithRecorder replaces the microphone recorder.
func WithRecorder(r domain.Recorder) Option {
	return func(app *App) { app.recorder = r }
}

// WithTranscriber replaces the speech-to-text client.
func WithTranscriber(t domain.Transcriber) Option {
	return func(app *App) {
		app.transcriber = t
		app.sttOn = true
	}
}

// WithSpeaker replaces the text-to-speech pipeline.
func WithSpeaker(s domain.Speaker) Option {
	return func(app *App) {
		app.speaker = s
		app.speechOn = true
	}
}

// WithDiskCache controls whether synthesized audio is persisted to
// disk. Reads from an existing disk cache stay enabled either way.
func WithDiskCache(enabled bool) Option {
	return func(app *App) { app.diskCache = enabled }
}

// App owns the running assistant session: it builds the peripheral
// subsystems around the loaded config and pumps events between them
// until the user quits.
type App struct {
	cfg      *config.Config
	tr       *i18n.Translator
	log      *logger.Logger
	licenses *license.Manager
	actions  *quickactions.Store

	assistant   domain.Assistant
	recorder    domain.Recorder
	transcriber domain.Transcriber
	collector   *transcript.Collector

	ui   *ui.UI
	view conversationView

	// Synthesis credentials kept for rebuilding the speaker when the
	// language (and with it the voice) changes mid-run.
	azureKey    string
	azureRegion string
	player      *speech.Player
	cacheDir    string
	diskCache   bool

	notices []string

	mu        sync.Mutex
	speaker   domain.Speaker
	record    domain.RecordState
	recCancel context.CancelFunc
	busy      bool
	replies   []string
	speechOn  bool
	sttOn     bool
}

// New assembles the app around the loaded configuration. Missing API
// keys degrade the respective feature to a no-op with a notice instead
// of failing startup.
func New(cfg *config.Config, tr *i18n.Translator, lic *license.Manager, actions *quickactions.Store, log *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:       cfg,
		tr:        tr,
		log:       log,
		licenses:  lic,
		actions:   actions,
		diskCache: true,
	}
	for _, opt := range opts {
		opt(a)
	}

	if dir, err := config.Dir(); err == nil {
		a.cacheDir = filepath.Join(dir, cacheDirName)
	} else {
		log.Warn("config dir unavailable, audio cache is memory-only: %v", err)
		a.diskCache = false
	}

	if a.assistant == nil {
		var bopts []bridge.Option
		if cfg.AnthropicAPIKey != "" {
			bopts = append(bopts, bridge.WithEnv(config.EnvAnthropicAPIKey+"="+cfg.AnthropicAPIKey))
		}
		a.assistant = bridge.New(cfg.ClaudeCommand, log, bopts...)
	}
	if a.recorder == nil {
		a.recorder = speech.NewRecorder(log)
	}
	if a.transcriber == nil {
		a.buildTranscriber()
	}
	if a.speaker == nil {
		a.buildSpeaker()
	}

	a.collector = transcript.NewCollector(a.autoRead, log)

	a.ui = ui.New(tr, log,
		ui.WithStatus(a.snapshot),
		ui.WithQuickActions(a.quickActionItems),
		ui.WithLanguages(languageItems()),
	)
	a.view = a.ui
	return a
}

func (a *App) buildTranscriber() {
	tr, err := speech.NewGroqTranscriber(a.cfg.GroqAPIKey, a.log)
	if err != nil {
		a.transcriber = speech.NewNoOpTranscriber()
		a.notices = append(a.notices, a.tr.T("stt_disabled"))
		a.log.Info("dictation disabled: set %s to enable", config.EnvGroqAPIKey)
		return
	}
	a.transcriber = tr
	a.sttOn = true
}

func (a *App) buildSpeaker() {
	a.speaker = speech.NewNoOpSpeaker(a.log)

	if a.cfg.AzureSpeechKey == "" || a.cfg.AzureSpeechRegion == "" {
		a.notices = append(a.notices, a.tr.T("tts_disabled"))
		a.log.Info("read-aloud disabled: set %s and %s to enable",
			config.EnvAzureSpeechKey, config.EnvAzureSpeechRegion)
		return
	}

	player, err := speech.NewPlayer(a.log)
	if err != nil {
		a.notices = append(a.notices, a.tr.T("tts_disabled"))
		a.log.Error("audio player init failed, read-aloud disabled: %v", err)
		return
	}

	a.azureKey = a.cfg.AzureSpeechKey
	a.azureRegion = a.cfg.AzureSpeechRegion
	a.player = player
	a.speaker = a.newSpeakerLocked()
	a.speechOn = true
	a.log.Info("read-aloud enabled (voice=%s, region=%s)", a.cfg.TTSVoice, a.azureRegion)
}

// newSpeakerLocked builds a speaker for the current voice settings.
// The caller holds a.mu (or is still single-threaded in New).
func (a *App) newSpeakerLocked() domain.Speaker {
	tts := speech.NewAzureClient(a.azureKey, a.azureRegion, a.log,
		speech.WithVoice(a.cfg.TTSVoice),
		speech.WithProsody(a.cfg.TTSRate, a.cfg.TTSVolume),
	)
	cache := speech.NewAudioCache(a.cfg.TTSVoice, a.cfg.TTSRate, a.cfg.TTSVolume,
		a.cacheDir, a.diskCache, a.log)
	return speech.NewSpeaker(tts, a.player, cache, a.log)
}

// Run blocks until the user quits. The license gate and the assistant
// probe run first so a blocked or broken install fails before the
// terminal is taken over.
func (a *App) Run(ctx context.Context) error {
	if a.licenses.Validate(ctx) == license.StatusNoLicense {
		// Fresh install: the trial starts silently, offline if need be.
		if err := a.licenses.StartTrial(ctx, ""); err != nil {
			return fmt.Errorf("starting trial: %w", err)
		}
	}
	if !a.licenses.CanUse(ctx) {
		return domain.ErrLicenseRequired
	}

	if _, err := a.assistant.Probe(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	refresher := license.NewRefresher(a.licenses, a.log,
		license.WithOnChange(a.onLicenseChange))
	go refresher.Run(ctx)

	go a.consumeAssistant(ctx)

	go func() {
		a.ui.WaitReady()
		a.announce()
		a.consumeUI(ctx)
		a.ui.Quit()
	}()

	err := a.ui.Run()
	cancel()
	a.shutdown()
	return err
}

// announce prints the one-shot startup notices into the transcript.
func (a *App) announce() {
	for _, n := range a.notices {
		a.view.AppendSystem(n)
	}
}

func (a *App) shutdown() {
	a.stopRecording()
	a.collector.Stop()

	a.mu.Lock()
	sp := a.speaker
	a.mu.Unlock()
	sp.Stop()

	if err := a.assistant.Close(); err != nil {
		a.log.Warn("closing assistant: %v", err)
	}
	a.log.Info("session ended")
}

// stopRecording aborts any capture in progress and discards it.
func (a *App) stopRecording() {
	a.mu.Lock()
	cancel := a.recCancel
	a.recCancel = nil
	a.record = domain.RecordIdle
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// ── Status bar ───────────────────────────────────────────────────

// snapshot is polled by the UI a few times a second.
func (a *App) snapshot() ui.StatusSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	cur, total := a.speaker.Progress()
	return ui.StatusSnapshot{
		License:     a.licenseSummary(),
		Record:      a.record,
		Level:       a.recorder.Level(),
		Speech:      a.speaker.State(),
		SpeechCur:   cur,
		SpeechTotal: total,
		AutoRead:    a.cfg.AutoRead,
		Busy:        a.busy,
	}
}

func (a *App) licenseSummary() string {
	switch a.licenses.Status() {
	case license.StatusTrial:
		return fmt.Sprintf("%s: %d", a.tr.T("trial_days_left"), a.licenses.DaysLeft())
	case license.StatusValid:
		return a.tr.T("license_valid")
	case license.StatusOffline:
		return a.tr.T("offline")
	case license.StatusTrialExpired, license.StatusExpired, license.StatusInvalid:
		return a.tr.T("license_expired")
	}
	return ""
}

func (a *App) onLicenseChange(s license.Status) {
	a.log.Info("license status now %s", s)
	if summary := a.licenseSummary(); summary != "" {
		a.view.AppendSystem(summary)
	}
}

// ── Menu providers ───────────────────────────────────────────────

func (a *App) quickActionItems() []ui.MenuItem {
	actions := a.actions.List()
	items := make([]ui.MenuItem, len(actions))
	for i, act := range actions {
		items[i] = ui.MenuItem{Label: act.Label, Value: act.Command}
	}
	return items
}

func languageItems() []ui.MenuItem {
	langs := config.Supported()
	items := make([]ui.MenuItem, len(langs))
	for i, l := range langs {
		items[i] = ui.MenuItem{Label: l.Native, Value: l.Code}
	}
	return items
}
