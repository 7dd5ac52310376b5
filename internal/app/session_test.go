package app

import (
	"context"
	"errors"
	"testing"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
)

// ── Send ─────────────────────────────────────────────────────────

func TestSendEchoesAndForwards(t *testing.T) {
	a, view, assistant, _ := newTestApp(t)

	a.send(context.Background(), "  fix the bug  ")

	if got := view.last(&view.user); got != "fix the bug" {
		t.Errorf("echoed %q", got)
	}
	if assistant.sentCount() != 1 {
		t.Fatalf("sent %d exchanges", assistant.sentCount())
	}
	a.mu.Lock()
	busy := a.busy
	a.mu.Unlock()
	if !busy {
		t.Error("not marked busy after send")
	}
}

func TestSendIgnoresEmptyInput(t *testing.T) {
	a, view, assistant, _ := newTestApp(t)

	a.send(context.Background(), "   ")

	if assistant.sentCount() != 0 {
		t.Error("empty input reached the assistant")
	}
	if view.count(&view.user) != 0 {
		t.Error("empty input echoed")
	}
}

func TestSendWhileBusyKeepsInput(t *testing.T) {
	a, view, assistant, _ := newTestApp(t)
	assistant.sendErr = domain.ErrBusy

	a.send(context.Background(), "second question")

	if view.count(&view.system) == 0 {
		t.Error("no busy notice shown")
	}
	if got := view.last(&view.inputs); got != "second question" {
		t.Errorf("input restored to %q", got)
	}
}

func TestSendReportsFailure(t *testing.T) {
	a, view, _, _ := newTestApp(t)
	fa := a.assistant.(*fakeAssistant)
	fa.sendErr = errors.New("spawn failed")

	a.send(context.Background(), "hello")

	if view.count(&view.errs) == 0 {
		t.Error("send failure not surfaced")
	}
	a.mu.Lock()
	busy := a.busy
	a.mu.Unlock()
	if busy {
		t.Error("marked busy after failed send")
	}
}

// ── Assistant events ─────────────────────────────────────────────

func TestAssistantLineAppendsCleaned(t *testing.T) {
	a, view, _, _ := newTestApp(t)

	a.handleAssistantEvent(domain.AssistantEvent{
		Kind: domain.AssistantLine,
		Line: "\x1b[32mdone\x1b[0m",
	})

	if got := view.last(&view.assistant); got != "done" {
		t.Errorf("appended %q", got)
	}
	a.mu.Lock()
	n := len(a.replies)
	a.mu.Unlock()
	if n != 1 {
		t.Errorf("kept %d reply lines", n)
	}
}

func TestAssistantDoneClearsBusy(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	a.mu.Lock()
	a.busy = true
	a.mu.Unlock()

	a.handleAssistantEvent(domain.AssistantEvent{Kind: domain.AssistantDone})

	a.mu.Lock()
	busy := a.busy
	a.mu.Unlock()
	if busy {
		t.Error("still busy after exchange end")
	}
}

func TestAssistantErrorShownAsError(t *testing.T) {
	a, view, _, _ := newTestApp(t)

	a.handleAssistantEvent(domain.AssistantEvent{
		Kind: domain.AssistantError,
		Err:  errors.New("exit status 1"),
	})

	if view.count(&view.errs) == 0 {
		t.Error("exchange error not surfaced")
	}
}

func TestReplyBufferIsBounded(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	for i := 0; i < maxReplyLines+10; i++ {
		a.handleAssistantEvent(domain.AssistantEvent{Kind: domain.AssistantLine, Line: "x"})
	}

	a.mu.Lock()
	n := len(a.replies)
	a.mu.Unlock()
	if n > maxReplyLines {
		t.Errorf("buffer grew to %d lines", n)
	}
}

// ── Dictation ────────────────────────────────────────────────────

func TestDictationFillsInput(t *testing.T) {
	a, view, _, _ := newTestApp(t)
	a.transcriber.(*fakeTranscriber).text = "what does this function do"

	ctx := context.Background()
	a.toggleDictation(ctx) // start
	if a.recordState() != domain.RecordCapturing {
		t.Fatalf("got state %v after start", a.recordState())
	}

	a.toggleDictation(ctx) // stop
	waitFor(t, "transcription", func() bool {
		return a.recordState() == domain.RecordIdle
	})

	if got := view.last(&view.inputs); got != "what does this function do" {
		t.Errorf("input set to %q", got)
	}
}

func TestDictationNeverAutoSends(t *testing.T) {
	a, _, assistant, _ := newTestApp(t)
	a.transcriber.(*fakeTranscriber).text = "delete everything"

	ctx := context.Background()
	a.toggleDictation(ctx)
	a.toggleDictation(ctx)
	waitFor(t, "transcription", func() bool {
		return a.recordState() == domain.RecordIdle
	})

	if assistant.sentCount() != 0 {
		t.Error("dictated text was sent without confirmation")
	}
}

func TestDictationMatchesQuickAction(t *testing.T) {
	a, view, _, _ := newTestApp(t)
	// Dictated punctuation and casing must not defeat the match.
	a.transcriber.(*fakeTranscriber).text = "napraw BŁĄD."

	ctx := context.Background()
	a.toggleDictation(ctx)
	a.toggleDictation(ctx)
	waitFor(t, "transcription", func() bool {
		return a.recordState() == domain.RecordIdle
	})

	want, err := a.actions.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if got := view.last(&view.inputs); got != want.Command {
		t.Errorf("input set to %q, want the %q command", got, want.Label)
	}
}

func TestDictationEmptyResultIsSilent(t *testing.T) {
	a, view, _, _ := newTestApp(t)

	ctx := context.Background()
	a.toggleDictation(ctx)
	a.toggleDictation(ctx)
	waitFor(t, "transcription", func() bool {
		return a.recordState() == domain.RecordIdle
	})

	if view.count(&view.inputs) != 0 {
		t.Error("empty transcription touched the input")
	}
	if view.count(&view.errs) != 0 {
		t.Error("empty transcription reported as an error")
	}
}

func TestDictationDisabledNotice(t *testing.T) {
	a, view, _, _ := newTestApp(t)
	a.sttOn = false

	a.toggleDictation(context.Background())

	if view.count(&view.system) == 0 {
		t.Error("no notice when dictation is unavailable")
	}
	if a.recordState() != domain.RecordIdle {
		t.Errorf("got state %v", a.recordState())
	}
}

// ── Playback ─────────────────────────────────────────────────────

func TestReadLastSpeaksLastReply(t *testing.T) {
	a, _, _, speaker := newTestApp(t)

	a.mu.Lock()
	a.replies = []string{"first answer", "> next question", "final", "answer"}
	a.mu.Unlock()

	a.readLast()

	if got := speaker.lastSpoken(); got != "final\nanswer" {
		t.Errorf("spoke %q", got)
	}
}

func TestReadLastWithNothingToRead(t *testing.T) {
	a, view, _, speaker := newTestApp(t)

	a.readLast()

	if speaker.lastSpoken() != "" {
		t.Error("spoke with an empty transcript")
	}
	if view.count(&view.system) == 0 {
		t.Error("no notice for an empty transcript")
	}
}

func TestPauseResumeFollowsSpeakerState(t *testing.T) {
	a, _, _, speaker := newTestApp(t)

	speaker.state = domain.SpeechPlaying
	a.pauseResume()
	if speaker.pauses != 1 {
		t.Errorf("pause count %d", speaker.pauses)
	}

	speaker.state = domain.SpeechPaused
	a.pauseResume()
	if speaker.resumes != 1 {
		t.Errorf("resume count %d", speaker.resumes)
	}
}

func TestAutoReadSpeaksAfterQuiet(t *testing.T) {
	a, _, _, speaker := newTestApp(t)

	a.handleAssistantEvent(domain.AssistantEvent{Kind: domain.AssistantLine, Line: "the answer is 42"})

	waitFor(t, "auto-read", func() bool {
		return speaker.lastSpoken() != ""
	})
}

func TestAutoReadRespectsToggle(t *testing.T) {
	a, _, _, speaker := newTestApp(t)
	a.cfg.AutoRead = false

	a.autoRead("should stay silent")

	if speaker.lastSpoken() != "" {
		t.Error("spoke with auto-read off")
	}
}

// ── Session control ──────────────────────────────────────────────

func TestStopAllStopsEverything(t *testing.T) {
	a, _, assistant, speaker := newTestApp(t)

	a.stopAll()

	if assistant.interruptCount() != 1 {
		t.Errorf("interrupted %d times", assistant.interruptCount())
	}
	if speaker.stopCount() == 0 {
		t.Error("speaker not stopped")
	}
}

func TestNewSessionClearsTranscript(t *testing.T) {
	a, view, assistant, _ := newTestApp(t)

	a.mu.Lock()
	a.replies = []string{"old reply"}
	a.mu.Unlock()

	a.newSession()

	a.mu.Lock()
	n := len(a.replies)
	a.mu.Unlock()
	if n != 0 {
		t.Errorf("kept %d reply lines", n)
	}
	if view.cleared != 1 {
		t.Errorf("cleared %d times", view.cleared)
	}
	if assistant.interruptCount() != 1 {
		t.Error("running exchange not interrupted")
	}
}

func TestSetLanguageUpdatesTranslatorAndVoice(t *testing.T) {
	a, _, _, _ := newTestApp(t)

	a.setLanguage("de-DE")

	if a.tr.Language() != "de-DE" {
		t.Errorf("translator language %q", a.tr.Language())
	}
	if a.cfg.Language != "de-DE" {
		t.Errorf("config language %q", a.cfg.Language)
	}
	if a.cfg.TTSVoice != "de-DE-KatjaNeural" {
		t.Errorf("voice %q did not follow the language", a.cfg.TTSVoice)
	}
}

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	a, _, _, _ := newTestApp(t)
	before := a.cfg.Language

	a.setLanguage("xx-XX")

	if a.cfg.Language != before {
		t.Errorf("language changed to %q", a.cfg.Language)
	}
}
