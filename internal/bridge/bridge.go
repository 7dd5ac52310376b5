// Package bridge runs the assistant CLI as a subprocess and streams
// its replies line by line.
package bridge

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

const (
	probeTimeout = 10 * time.Second
	killGrace    = 2 * time.Second

	// Replies can carry very long single lines; code blocks flow
	// through unwrapped.
	maxLineBytes = 1 << 20
)

// Option configures the CLI adapter.
type Option func(*CLI)

// WithArgs adds extra arguments placed before the prompt flag.
func WithArgs(args ...string) Option {
	return func(c *CLI) {
		c.args = append(c.args, args...)
	}
}

// WithEnv overlays KEY=VALUE pairs onto the subprocess environment.
func WithEnv(pairs ...string) Option {
	return func(c *CLI) {
		c.env = append(c.env, pairs...)
	}
}

// CLI drives the assistant command line tool. One exchange runs at a
// time; its stdout lines arrive on Events. The consumer must drain
// Events while an exchange is running.
type CLI struct {
	command string
	args    []string
	env     []string
	log     *logger.Logger

	events chan domain.AssistantEvent

	mu      sync.Mutex
	current *exchange
	closed  bool
}

type exchange struct {
	id          string
	cmd         *exec.Cmd
	done        chan struct{}
	interrupted atomic.Bool
}

var _ domain.Assistant = (*CLI)(nil)

// New creates an adapter around the given command (normally "claude").
func New(command string, log *logger.Logger, opts ...Option) *CLI {
	c := &CLI{
		command: command,
		log:     log,
		events:  make(chan domain.AssistantEvent, 64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probe checks that the command exists and returns its version line.
func (c *CLI) Probe(ctx context.Context) (string, error) {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(pctx, c.command, "--version").Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", domain.ErrAssistantNotFound
		}
		return "", fmt.Errorf("probing %s: %w", c.command, err)
	}

	version := strings.TrimSpace(string(out))
	c.log.Info("assistant available: %s %s", c.command, version)
	return version, nil
}

// Send starts one exchange and returns as soon as the subprocess is
// running. Output arrives on Events as it is produced.
func (c *CLI) Send(ctx context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("bridge is closed")
	}
	if c.current != nil {
		return domain.ErrBusy
	}

	args := append(append([]string{}, c.args...), "--print", text)
	cmd := exec.CommandContext(ctx, c.command, args...)
	cmd.Env = append(os.Environ(), c.env...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return domain.ErrAssistantNotFound
		}
		return fmt.Errorf("starting %s: %w", c.command, err)
	}

	ex := &exchange{
		id:   newExchangeID(),
		cmd:  cmd,
		done: make(chan struct{}),
	}
	c.current = ex
	c.log.Info("exchange %s started (%d chars)", ex.id, len(text))

	go c.pump(ex, stdout, &stderr)
	return nil
}

// pump streams stdout lines as events, then reports how the exchange
// ended. It is the only sender on the events channel.
func (c *CLI) pump(ex *exchange, stdout io.Reader, stderr *bytes.Buffer) {
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		c.events <- domain.AssistantEvent{
			Kind:       domain.AssistantLine,
			ExchangeID: ex.id,
			Line:       scanner.Text(),
		}
	}

	err := ex.cmd.Wait()

	switch {
	case ex.interrupted.Load():
		c.log.Info("exchange %s interrupted", ex.id)
		c.events <- domain.AssistantEvent{Kind: domain.AssistantDone, ExchangeID: ex.id}
	case err != nil:
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		c.log.Error("exchange %s failed: %s", ex.id, msg)
		c.events <- domain.AssistantEvent{
			Kind:       domain.AssistantError,
			ExchangeID: ex.id,
			Err:        fmt.Errorf("%s: %s", c.command, msg),
		}
	default:
		c.log.Debug("exchange %s done", ex.id)
		c.events <- domain.AssistantEvent{Kind: domain.AssistantDone, ExchangeID: ex.id}
	}

	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
	close(ex.done)
}

// Events returns the stream of exchange updates. The channel stays
// open for the adapter's lifetime.
func (c *CLI) Events() <-chan domain.AssistantEvent {
	return c.events
}

// Interrupt terminates the running exchange. Idle Interrupt is a
// no-op.
func (c *CLI) Interrupt() {
	c.mu.Lock()
	ex := c.current
	c.mu.Unlock()
	if ex == nil {
		return
	}
	c.interrupt(ex)
}

func (c *CLI) interrupt(ex *exchange) {
	if !ex.interrupted.CompareAndSwap(false, true) {
		return
	}
	c.log.Info("interrupting exchange %s", ex.id)

	if err := ex.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return
	}
	go func() {
		select {
		case <-ex.done:
		case <-time.After(killGrace):
			_ = ex.cmd.Process.Kill()
		}
	}()
}

// Close interrupts any running exchange and waits for it to wind
// down.
func (c *CLI) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	ex := c.current
	c.mu.Unlock()

	if ex != nil {
		c.interrupt(ex)
		select {
		case <-ex.done:
		case <-time.After(killGrace + time.Second):
		}
	}
	return nil
}
