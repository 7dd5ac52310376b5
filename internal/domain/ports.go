package domain

import "context"

// Transcriber converts captured audio into text. Implementations can be
// cloud-backed or local; the no-op implementation is used when speech
// recognition is not configured.
type Transcriber interface {
	Transcribe(ctx context.Context, wav []byte, language string) (string, error)
}

// Speaker reads text aloud. Implementations queue utterances and expose
// playback state so the UI can render progress. The no-op implementation
// is used when synthesis is not configured.
type Speaker interface {
	Speak(text string)
	Pause()
	Resume()
	Stop()
	State() SpeechState
	Progress() (current, total int)
}

// Recorder captures microphone audio. Start begins accumulating samples
// and Stop returns everything captured since Start.
type Recorder interface {
	Start(ctx context.Context) error
	Stop() ([]int16, error)
	Level() float64
	Recording() bool
}

// Assistant runs text exchanges against the assistant CLI and streams
// output back as events. One exchange at a time.
type Assistant interface {
	Probe(ctx context.Context) (string, error)
	Send(ctx context.Context, text string) error
	Events() <-chan AssistantEvent
	Interrupt()
	Close() error
}
