package domain

// SpeechState describes what the speaker is currently doing.
type SpeechState int

const (
	SpeechIdle SpeechState = iota
	SpeechGenerating
	SpeechPlaying
	SpeechPaused
)

func (s SpeechState) String() string {
	switch s {
	case SpeechIdle:
		return "idle"
	case SpeechGenerating:
		return "generating"
	case SpeechPlaying:
		return "playing"
	case SpeechPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// RecordState describes the dictation lifecycle.
type RecordState int

const (
	RecordIdle RecordState = iota
	RecordCapturing
	RecordProcessing
)

func (s RecordState) String() string {
	switch s {
	case RecordIdle:
		return "idle"
	case RecordCapturing:
		return "recording"
	case RecordProcessing:
		return "processing"
	default:
		return "unknown"
	}
}

// AssistantEventKind discriminates streamed assistant updates.
type AssistantEventKind int

const (
	// AssistantLine carries one line of assistant output.
	AssistantLine AssistantEventKind = iota
	// AssistantDone marks the end of an exchange.
	AssistantDone
	// AssistantError reports a failed exchange.
	AssistantError
)

// AssistantEvent is one streamed update from a running exchange.
type AssistantEvent struct {
	Kind       AssistantEventKind
	ExchangeID string
	Line       string
	Err        error
}

// UIEventKind discriminates user requests coming out of the terminal
// interface.
type UIEventKind int

const (
	// UISend submits the typed input (Payload = text).
	UISend UIEventKind = iota
	// UIDictateToggle starts or stops dictation.
	UIDictateToggle
	// UIReadLast speaks the last assistant reply.
	UIReadLast
	// UIPauseResume toggles playback pause.
	UIPauseResume
	// UIStopAll stops playback, recording, and the running exchange.
	UIStopAll
	// UIAutoReadToggle flips automatic reading of replies.
	UIAutoReadToggle
	// UILanguage switches the interface language (Payload = BCP 47 tag).
	UILanguage
	// UINewSession clears the conversation.
	UINewSession
	// UIQuit leaves the application.
	UIQuit
)

// UIEvent is one user request for the session loop to carry out.
type UIEvent struct {
	Kind    UIEventKind
	Payload string
}
