package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// AzureOption configures the Azure TTS client.
type AzureOption func(*AzureClient)

// WithVoice sets the TTS voice.
func WithVoice(voice string) AzureOption {
	return func(c *AzureClient) {
		c.voice = voice
	}
}

// WithProsody sets the speaking rate and volume, e.g. "+10%", "-5%".
func WithProsody(rate, volume string) AzureOption {
	return func(c *AzureClient) {
		c.rate = rate
		c.volume = volume
	}
}

// WithAudioFormat sets the audio output format.
func WithAudioFormat(format string) AzureOption {
	return func(c *AzureClient) {
		c.format = format
	}
}

// WithHTTPTimeout sets the HTTP client timeout for TTS requests.
func WithHTTPTimeout(d time.Duration) AzureOption {
	return func(c *AzureClient) {
		c.httpClient.Timeout = d
	}
}

// WithEndpoint overrides the synthesis URL built from the region.
func WithEndpoint(url string) AzureOption {
	return func(c *AzureClient) {
		c.endpoint = url
	}
}

// AzureClient handles text-to-speech synthesis via Azure Cognitive
// Services.
type AzureClient struct {
	subscriptionKey string
	region          string
	voice           string
	rate            string
	volume          string
	format          string
	endpoint        string
	httpClient      *http.Client
	log             *logger.Logger
}

// NewAzureClient creates an Azure TTS client with the given credentials.
func NewAzureClient(key, region string, log *logger.Logger, opts ...AzureOption) *AzureClient {
	c := &AzureClient{
		subscriptionKey: key,
		region:          region,
		voice:           "pl-PL-ZofiaNeural",
		rate:            "+0%",
		volume:          "+0%",
		format:          DefaultAudioFormat,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.endpoint == "" {
		c.endpoint = fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", c.region)
	}
	return c
}

// Voice returns the configured voice name.
func (c *AzureClient) Voice() string { return c.voice }

// Synthesize converts text to speech audio data (WAV bytes).
func (c *AzureClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ssml := c.buildSSML(text)
	c.log.Debug("azure tts: synthesizing %d chars with voice %s", len(text), c.voice)

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Ocp-Apim-Subscription-Key", c.subscriptionKey)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", c.format)
	req.Header.Set("User-Agent", "ClaudeVoiceAssistant/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("azure tts error %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading audio data: %w", err)
	}

	c.log.Debug("azure tts: got %d bytes of audio", len(audioData))
	return audioData, nil
}

// buildSSML creates SSML markup for the synthesis request.
func (c *AzureClient) buildSSML(text string) string {
	lang := voiceLocale(c.voice)
	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='%s'><voice name='%s'><prosody rate='%s' volume='%s'>%s</prosody></voice></speak>`,
		lang, c.voice, c.rate, c.volume, escapeXML(text),
	)
}

// voiceLocale extracts the locale from a neural voice name, e.g.
// "pl-PL-ZofiaNeural" -> "pl-PL".
func voiceLocale(voice string) string {
	parts := strings.SplitN(voice, "-", 3)
	if len(parts) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return "en-US"
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
