package speech

import (
	"context"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// NoOpSpeaker is used when TTS credentials are missing. Replies show
// up on screen only.
type NoOpSpeaker struct {
	log *logger.Logger
}

var _ domain.Speaker = (*NoOpSpeaker)(nil)

func NewNoOpSpeaker(log *logger.Logger) *NoOpSpeaker {
	return &NoOpSpeaker{log: log}
}

func (n *NoOpSpeaker) Speak(text string) {
	n.log.Debug("speech disabled, not reading %d chars", len(text))
}

func (n *NoOpSpeaker) Pause()  {}
func (n *NoOpSpeaker) Resume() {}
func (n *NoOpSpeaker) Stop()   {}

func (n *NoOpSpeaker) State() domain.SpeechState { return domain.SpeechIdle }

func (n *NoOpSpeaker) Progress() (current, total int) { return 0, 0 }

// NoOpTranscriber is used when no STT key is configured. Dictation
// attempts surface a configuration error instead of failing silently.
type NoOpTranscriber struct{}

var _ domain.Transcriber = (*NoOpTranscriber)(nil)

func NewNoOpTranscriber() *NoOpTranscriber { return &NoOpTranscriber{} }

func (n *NoOpTranscriber) Transcribe(ctx context.Context, wav []byte, language string) (string, error) {
	return "", domain.ErrNoAPIKey
}
