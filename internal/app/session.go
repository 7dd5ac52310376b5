package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/WojtekL7/claude-voice-assistant/internal/config"
	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/speech"
	"github.com/WojtekL7/claude-voice-assistant/internal/transcript"
)

// consumeAssistant drains the bridge event stream for the lifetime of
// the session.
func (a *App) consumeAssistant(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-a.assistant.Events():
			a.handleAssistantEvent(ev)
		}
	}
}

func (a *App) handleAssistantEvent(ev domain.AssistantEvent) {
	switch ev.Kind {
	case domain.AssistantLine:
		a.mu.Lock()
		a.replies = append(a.replies, ev.Line)
		if len(a.replies) > maxReplyLines {
			a.replies = a.replies[maxReplyLines/2:]
		}
		a.mu.Unlock()

		a.view.AppendAssistant(transcript.Clean(ev.Line))
		a.collector.Append(ev.Line)

	case domain.AssistantDone:
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()

	case domain.AssistantError:
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()
		a.view.AppendError(a.tr.Tf("assistant_error", ev.Err))
	}
}

// consumeUI carries out user requests until the user quits or the
// context ends.
func (a *App) consumeUI(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.ui.QuitChan():
			return
		case ev := <-a.ui.Events():
			if quit := a.handleUIEvent(ctx, ev); quit {
				return
			}
		}
	}
}

func (a *App) handleUIEvent(ctx context.Context, ev domain.UIEvent) bool {
	switch ev.Kind {
	case domain.UISend:
		a.send(ctx, ev.Payload)
	case domain.UIDictateToggle:
		a.toggleDictation(ctx)
	case domain.UIReadLast:
		a.readLast()
	case domain.UIPauseResume:
		a.pauseResume()
	case domain.UIStopAll:
		a.stopAll()
	case domain.UIAutoReadToggle:
		a.toggleAutoRead()
	case domain.UILanguage:
		a.setLanguage(ev.Payload)
	case domain.UINewSession:
		a.newSession()
	case domain.UIQuit:
		return true
	}
	return false
}

// ── Send ─────────────────────────────────────────────────────────

func (a *App) send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	// A new question supersedes whatever is still being read out.
	a.collector.Stop()
	a.mu.Lock()
	sp := a.speaker
	a.mu.Unlock()
	sp.Stop()

	a.view.AppendUser(text)

	err := a.assistant.Send(ctx, text)
	switch {
	case errors.Is(err, domain.ErrBusy):
		// Keep the typed text so it is not lost.
		a.view.AppendSystem(a.tr.T("assistant_busy"))
		a.view.SetInput(text)
		return
	case err != nil:
		a.view.AppendError(a.tr.Tf("assistant_error", err))
		return
	}

	a.mu.Lock()
	a.busy = true
	a.replies = append(a.replies, transcript.UserPrefix+text)
	a.mu.Unlock()
}

// ── Dictation ────────────────────────────────────────────────────

func (a *App) toggleDictation(ctx context.Context) {
	a.mu.Lock()
	if !a.sttOn {
		a.mu.Unlock()
		a.view.AppendSystem(a.tr.T("stt_disabled"))
		return
	}
	state := a.record
	a.mu.Unlock()

	switch state {
	case domain.RecordIdle:
		a.startDictation(ctx)
	case domain.RecordCapturing:
		a.finishDictation(ctx)
	case domain.RecordProcessing:
		// Previous take is still being transcribed.
	}
}

func (a *App) startDictation(ctx context.Context) {
	rctx, cancel := context.WithCancel(ctx)
	if err := a.recorder.Start(rctx); err != nil {
		cancel()
		a.view.AppendError(a.tr.Tf("stt_error", err))
		return
	}

	a.mu.Lock()
	a.record = domain.RecordCapturing
	a.recCancel = cancel
	a.mu.Unlock()
}

func (a *App) finishDictation(ctx context.Context) {
	a.mu.Lock()
	a.record = domain.RecordProcessing
	cancel := a.recCancel
	a.recCancel = nil
	a.mu.Unlock()

	samples, err := a.recorder.Stop()
	if cancel != nil {
		cancel()
	}
	if err != nil {
		a.setRecordState(domain.RecordIdle)
		a.view.AppendError(a.tr.Tf("stt_error", err))
		return
	}

	// Upload and transcription can take a while; keep the UI loop free.
	go a.transcribe(ctx, samples)
}

func (a *App) transcribe(ctx context.Context, samples []int16) {
	defer a.setRecordState(domain.RecordIdle)

	wav := speech.EncodeWAV(samples, speech.CaptureSampleRate, speech.CaptureChannels)
	text, err := a.transcriber.Transcribe(ctx, wav, config.STTCode(a.cfg.Language))
	if err != nil {
		a.view.AppendError(a.tr.Tf("stt_error", err))
		return
	}
	if text == "" {
		a.log.Info("dictation produced no text")
		return
	}

	a.view.AppendSystem(a.tr.Tf("recognized", text))

	// Dictated text is never sent on its own; the user confirms with
	// Enter. A match against a quick action offers its command instead.
	if action, ok := a.actions.Match(text); ok {
		a.view.SetInput(action.Command)
		return
	}
	a.view.SetInput(text)
}

func (a *App) setRecordState(s domain.RecordState) {
	a.mu.Lock()
	a.record = s
	a.mu.Unlock()
}

// ── Playback controls ────────────────────────────────────────────

func (a *App) readLast() {
	a.mu.Lock()
	on := a.speechOn
	sp := a.speaker
	lines := append([]string(nil), a.replies...)
	a.mu.Unlock()

	if !on {
		a.view.AppendSystem(a.tr.T("tts_disabled"))
		return
	}

	text := transcript.LastReply(lines)
	if text == "" {
		a.view.AppendSystem(a.tr.T("no_text_to_read"))
		return
	}
	sp.Speak(text)
}

func (a *App) pauseResume() {
	a.mu.Lock()
	sp := a.speaker
	a.mu.Unlock()

	if sp.State() == domain.SpeechPaused {
		sp.Resume()
	} else {
		sp.Pause()
	}
}

func (a *App) stopAll() {
	a.assistant.Interrupt()
	a.collector.Stop()

	a.mu.Lock()
	sp := a.speaker
	a.mu.Unlock()
	sp.Stop()

	a.stopRecording()
}

// autoRead is the collector's emit callback; it runs on the collector
// timer goroutine once the assistant has been quiet long enough.
func (a *App) autoRead(text string) {
	a.mu.Lock()
	enabled := a.cfg.AutoRead && a.speechOn
	sp := a.speaker
	a.mu.Unlock()

	if !enabled {
		return
	}
	a.log.Debug("auto-read: %d chars", len(text))
	sp.Speak(text)
}

func (a *App) toggleAutoRead() {
	a.mu.Lock()
	a.cfg.AutoRead = !a.cfg.AutoRead
	err := a.cfg.Save()
	a.mu.Unlock()

	if err != nil {
		a.log.Warn("saving auto-read setting: %v", err)
	}
}

// ── Session housekeeping ─────────────────────────────────────────

func (a *App) newSession() {
	a.assistant.Interrupt()
	a.collector.Stop()

	a.mu.Lock()
	sp := a.speaker
	a.replies = nil
	a.mu.Unlock()
	sp.Stop()

	a.view.Clear()
	a.view.AppendSystem(a.tr.T("new_session"))
}

func (a *App) setLanguage(code string) {
	lang, ok := config.Get(code)
	if !ok {
		a.log.Warn("ignoring unsupported language %q", code)
		return
	}

	a.mu.Lock()
	err := a.cfg.SetLanguage(code)
	a.mu.Unlock()
	if err != nil {
		a.log.Warn("saving language: %v", err)
	}

	a.tr.SetLanguage(code)

	// The voice follows the language, so the synthesis stack is
	// rebuilt around the new settings.
	a.mu.Lock()
	if a.speechOn {
		a.speaker.Stop()
		a.speaker = a.newSpeakerLocked()
	}
	a.mu.Unlock()

	a.view.AppendSystem(fmt.Sprintf("%s: %s", a.tr.T("language"), lang.Native))
	a.log.Info("language switched to %s (voice=%s)", code, a.cfg.TTSVoice)
}
