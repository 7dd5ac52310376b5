package speech

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// synthesizer is the TTS dependency. AzureClient satisfies it; tests
// substitute fakes.
type synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// audioPlayer abstracts playback so the speaker can be tested without
// an audio device.
type audioPlayer interface {
	Play(ctx context.Context, wav []byte) error
	Pause()
	Resume()
	Stop()
}

// SpeakerOption configures the Speaker.
type SpeakerOption func(*Speaker)

// WithChunkSize sets the approximate max character count per TTS
// request. Longer text is split at sentence boundaries and synthesized
// in parallel so playback doesn't stall between sentences.
func WithChunkSize(n int) SpeakerOption {
	return func(s *Speaker) { s.chunkSize = n }
}

// WithParallelism bounds how many sentences are synthesized at once.
func WithParallelism(n int) SpeakerOption {
	return func(s *Speaker) { s.parallel = n }
}

// Compile-time interface check.
var _ domain.Speaker = (*Speaker)(nil)

// Speaker reads text aloud through a single pipeline: split into
// sentence batches -> synthesize (parallel, cached) -> play
// (sequential, in order). A new Speak replaces whatever is currently
// being read.
type Speaker struct {
	tts    synthesizer
	player audioPlayer
	cache  *AudioCache
	log    *logger.Logger

	chunkSize int
	parallel  int

	mu      sync.Mutex
	state   domain.SpeechState
	current int
	total   int
	gen     int // bumped by Speak/Stop so stale runs can't touch state
	cancel  context.CancelFunc
}

// NewSpeaker creates a speaker. cache may be nil to disable caching.
func NewSpeaker(tts synthesizer, player audioPlayer, cache *AudioCache, log *logger.Logger, opts ...SpeakerOption) *Speaker {
	s := &Speaker{
		tts:       tts,
		player:    player,
		cache:     cache,
		log:       log,
		chunkSize: 200, // roughly two sentences
		parallel:  3,
		state:     domain.SpeechIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Speak starts reading text aloud, replacing any current utterance.
// Non-blocking.
func (s *Speaker) Speak(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	chunks := s.split(text)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.state = domain.SpeechGenerating
	s.current = 0
	s.total = len(chunks)
	s.mu.Unlock()

	s.player.Stop()
	s.log.Debug("speaker: reading %d chars in %d sentences", len(text), len(chunks))
	go s.run(ctx, gen, chunks)
}

// run synthesizes all batches concurrently into ordered slots, then
// plays them in order.
func (s *Speaker) run(ctx context.Context, gen int, chunks []string) {
	slots := make([][]byte, len(chunks))
	sem := make(chan struct{}, s.parallel)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(idx int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if ctx.Err() != nil {
				return
			}
			audio, err := s.synthesize(ctx, text)
			if err != nil {
				if ctx.Err() == nil {
					s.log.Error("speaker: sentence %d synthesis failed: %v", idx+1, err)
				}
				return
			}
			slots[idx] = audio
		}(i, chunk)
	}
	wg.Wait()

	if ctx.Err() != nil {
		s.finish(gen)
		return
	}
	s.setState(gen, domain.SpeechPlaying)

	for i, audio := range slots {
		if ctx.Err() != nil {
			break
		}
		if audio == nil {
			s.log.Debug("speaker: skipping sentence %d (synthesis failed)", i+1)
			continue
		}
		s.setProgress(gen, i+1)
		if err := s.player.Play(ctx, audio); err != nil && ctx.Err() == nil {
			s.log.Error("speaker: sentence %d playback failed: %v", i+1, err)
		}
	}
	s.finish(gen)
}

// Pause suspends playback mid-sentence. No effect while synthesizing.
func (s *Speaker) Pause() {
	s.mu.Lock()
	if s.state != domain.SpeechPlaying {
		s.mu.Unlock()
		return
	}
	s.state = domain.SpeechPaused
	s.mu.Unlock()
	s.player.Pause()
	s.log.Debug("speaker: paused")
}

// Resume continues paused playback.
func (s *Speaker) Resume() {
	s.mu.Lock()
	if s.state != domain.SpeechPaused {
		s.mu.Unlock()
		return
	}
	s.state = domain.SpeechPlaying
	s.mu.Unlock()
	s.player.Resume()
	s.log.Debug("speaker: resumed")
}

// Stop drains the queue and aborts playback.
func (s *Speaker) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.state = domain.SpeechIdle
	s.current = 0
	s.total = 0
	s.mu.Unlock()
	s.player.Stop()
}

// State returns what the speaker is currently doing.
func (s *Speaker) State() domain.SpeechState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress returns the sentence being played and the total count for
// the current utterance.
func (s *Speaker) Progress() (current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.total
}

func (s *Speaker) setState(gen int, state domain.SpeechState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.state = state
	}
}

func (s *Speaker) setProgress(gen int, current int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.current = current
	}
}

func (s *Speaker) finish(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	s.state = domain.SpeechIdle
	s.current = 0
	s.total = 0
	s.cancel = nil
}

// synthesize checks the cache first, otherwise calls the TTS backend
// and stores the result.
func (s *Speaker) synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.cache != nil {
		if audio, ok := s.cache.Get(text); ok {
			return audio, nil
		}
	}
	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Put(text, audio)
	}
	return audio, nil
}

// split breaks text into sentence-boundary batches of approximately
// chunkSize characters. Short text comes back as a single batch.
func (s *Speaker) split(text string) []string {
	if s.chunkSize <= 0 || len(text) <= s.chunkSize {
		return []string{text}
	}

	sentences := splitSentences(text)

	var chunks []string
	var current strings.Builder

	for _, sent := range sentences {
		if current.Len() > 0 && current.Len()+len(sent) > s.chunkSize {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sent)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	var out []string
	for _, c := range chunks {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// splitSentences splits text at sentence boundaries (. ! ?) keeping
// the punctuation attached to the preceding sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if isSentenceEnd(runes[i]) {
			// Consume trailing whitespace and include it.
			for i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				i++
				current.WriteRune(runes[i])
			}
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
