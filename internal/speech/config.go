// Package speech provides audio capture, transcription and
// text-to-speech for the assistant.
package speech

// Capture parameters for dictation uploads. Whisper models downsample
// anything above 16 kHz anyway, so capturing higher rates just wastes
// upload bandwidth.
const (
	CaptureSampleRate = 16000
	CaptureChannels   = 1
)

// Playback parameters matching the synthesis output format.
const (
	PlaybackSampleRate = 24000
	PlaybackChannels   = 1
	BitDepth           = 16
)

// DefaultAudioFormat is the RIFF PCM format requested from the
// synthesis endpoint and expected by the player.
const DefaultAudioFormat = "riff-24khz-16bit-mono-pcm"

// Groq's OpenAI-compatible endpoint and the transcription model.
const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	sttModel    = "whisper-large-v3"
)
