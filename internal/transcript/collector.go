package transcript

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

const (
	defaultQuietPeriod = time.Second

	// Very short fragments ("OK.", a lone punctuation line) are not
	// worth interrupting the user for.
	defaultThreshold = 20
)

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithQuietPeriod sets how long the output must stay quiet before the
// buffer is emitted.
func WithQuietPeriod(d time.Duration) CollectorOption {
	return func(c *Collector) { c.quiet = d }
}

// WithThreshold sets the minimum cleaned length (in runes) for an
// automatic emission.
func WithThreshold(n int) CollectorOption {
	return func(c *Collector) { c.threshold = n }
}

// Collector buffers streamed assistant lines and fires the emit
// callback once the stream has been quiet for the configured period.
// The callback runs on a timer goroutine.
type Collector struct {
	mu    sync.Mutex
	buf   []string
	timer *time.Timer

	quiet     time.Duration
	threshold int
	emit      func(string)
	log       *logger.Logger
}

// NewCollector builds a collector that calls emit with the cleaned,
// joined buffer.
func NewCollector(emit func(string), log *logger.Logger, opts ...CollectorOption) *Collector {
	c := &Collector{
		quiet:     defaultQuietPeriod,
		threshold: defaultThreshold,
		emit:      emit,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append adds one line and restarts the quiet timer.
func (c *Collector) Append(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf = append(c.buf, line)
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.quiet, c.fire)
}

func (c *Collector) fire() {
	text := c.take()
	if text == "" {
		return
	}
	if utf8.RuneCountInString(text) <= c.threshold {
		c.log.Debug("auto-read skipping short fragment (%d chars)", utf8.RuneCountInString(text))
		return
	}
	c.emit(text)
}

// Flush emits whatever is buffered, ignoring the length threshold.
func (c *Collector) Flush() {
	if text := c.take(); text != "" {
		c.emit(text)
	}
}

// Stop discards the buffer and cancels any pending emission.
func (c *Collector) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.buf = nil
}

func (c *Collector) take() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	text := Clean(strings.Join(c.buf, "\n"))
	c.buf = nil
	return text
}
