package speech

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// Compile-time interface check.
var _ domain.Transcriber = (*GroqTranscriber)(nil)

// GroqOption configures the transcriber.
type GroqOption func(*GroqTranscriber)

// WithSTTModel overrides the transcription model.
func WithSTTModel(model string) GroqOption {
	return func(g *GroqTranscriber) { g.model = model }
}

// WithSTTBaseURL overrides the API endpoint.
func WithSTTBaseURL(url string) GroqOption {
	return func(g *GroqTranscriber) { g.baseURL = url }
}

// GroqTranscriber sends captured audio to Groq's Whisper endpoint
// through the OpenAI-compatible API.
type GroqTranscriber struct {
	client  *openai.Client
	model   string
	baseURL string
	log     *logger.Logger
}

// NewGroqTranscriber creates a cloud transcriber. Fails fast when the
// API key is missing so the caller can fall back to the no-op.
func NewGroqTranscriber(apiKey string, log *logger.Logger, opts ...GroqOption) (*GroqTranscriber, error) {
	if apiKey == "" {
		return nil, domain.ErrNoAPIKey
	}

	g := &GroqTranscriber{
		model:   sttModel,
		baseURL: groqBaseURL,
		log:     log,
	}
	for _, opt := range opts {
		opt(g)
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = g.baseURL
	g.client = openai.NewClientWithConfig(cfg)
	return g, nil
}

// Transcribe uploads a WAV clip and returns the cleaned transcription.
// Empty audio or an all-junk transcription yields "" without error.
func (g *GroqTranscriber) Transcribe(ctx context.Context, wav []byte, language string) (string, error) {
	if len(wav) == 0 {
		return "", nil
	}

	req := openai.AudioRequest{
		Model:    g.model,
		FilePath: "dictation.wav",
		Reader:   bytes.NewReader(wav),
		Format:   openai.AudioResponseFormatText,
		Language: language,
	}

	resp, err := g.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}

	text := CleanTranscription(resp.Text)
	g.log.Debug("transcribed %d bytes -> %q", len(wav), truncate(text, 60))
	return text, nil
}

// envAnnotation matches whisper environmental annotations like
// "(keyboard clicking)", "[laughter]", "(mówi po polsku)", etc.
var envAnnotation = regexp.MustCompile(`[\(\[][\p{L}][\p{L}\s]*[\)\]]`)

// Junk markers whisper emits for non-speech audio.
var junkMarkers = []string{
	"[BLANK_AUDIO]",
	"[BLANK AUDIO]",
	"(silence)",
	"[silence]",
	"(no speech)",
	"[no speech]",
	"[Music]",
	"(music)",
	"(typing)",
	"(clicking)",
	"(breathing)",
	"(background noise)",
	"(inaudible)",
	"(unintelligible)",
}

// Full-line hallucinations whisper produces on silence. The Polish
// entries show up constantly with pl-tuned audio.
var hallucinations = []string{
	"...",
	"you",
	"Thank you.",
	"Thanks for watching!",
	"Thank you for watching.",
	"Bye.",
	"The end.",
	"Dziękuję.",
	"Dziękuję za uwagę.",
	"Dziękuję za oglądanie.",
	"Dziękuje za oglądanie",
	"Napisy stworzone przez społeczność Amara.org",
	"Zapraszam na kolejny odcinek.",
	"Sous-titres réalisés para la communauté d'Amara.org",
}

// CleanTranscription strips whitespace, normalizes newlines, and
// removes whisper artifacts. Artifacts are stripped from anywhere in
// the text; a transcription that is nothing but artifacts becomes "".
func CleanTranscription(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.TrimSpace(s)

	for _, j := range junkMarkers {
		s = strings.ReplaceAll(s, j, "")
		s = strings.ReplaceAll(s, strings.ToLower(j), "")
		s = strings.ReplaceAll(s, strings.ToUpper(j), "")
	}

	// Catch-all for remaining (parenthesized) or [bracketed]
	// environmental annotations.
	s = envAnnotation.ReplaceAllString(s, "")

	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.TrimSpace(s)

	lower := strings.ToLower(s)
	for _, h := range hallucinations {
		if strings.ToLower(h) == lower {
			return ""
		}
	}

	return s
}
