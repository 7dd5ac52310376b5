// Package ui renders the interactive terminal session using Bubble Tea.
//
// The [UI] type wraps the program: the session loop reads user requests
// from [UI.Events] and pushes conversation lines and status back in.
// All append methods are safe from any goroutine, before and after the
// program starts.
package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/i18n"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// StatusSnapshot is what the session loop exposes for the status bar.
// The model polls it a few times per second.
type StatusSnapshot struct {
	License     string // pre-localized license summary
	Record      domain.RecordState
	Level       float64 // 0..1 microphone meter while recording
	Speech      domain.SpeechState
	SpeechCur   int
	SpeechTotal int
	AutoRead    bool
	Busy        bool // an exchange is in flight
}

// Option configures the UI.
type Option func(*UI)

// WithStatus sets the status-bar provider.
func WithStatus(fn func() StatusSnapshot) Option {
	return func(u *UI) { u.statusFn = fn }
}

// WithQuickActions sets the quick-action menu provider.
func WithQuickActions(fn func() []MenuItem) Option {
	return func(u *UI) { u.actionsFn = fn }
}

// WithLanguages sets the language menu entries.
func WithLanguages(items []MenuItem) Option {
	return func(u *UI) { u.languages = items }
}

// UI manages the terminal through Bubble Tea.
//
// Call [New] then [UI.Run] (blocking). Other goroutines may safely use
// the append methods and read from [UI.Events] at any time after
// [UI.WaitReady] returns.
type UI struct {
	tr  *i18n.Translator
	log *logger.Logger

	program *tea.Program
	events  chan domain.UIEvent
	readyCh chan struct{}
	quitCh  chan struct{}
	done    atomic.Bool

	statusFn  func() StatusSnapshot
	actionsFn func() []MenuItem
	languages []MenuItem
}

// New creates the display. Call Run() to start.
func New(tr *i18n.Translator, log *logger.Logger, opts ...Option) *UI {
	u := &UI{
		tr:        tr,
		log:       log,
		events:    make(chan domain.UIEvent, 32),
		readyCh:   make(chan struct{}),
		quitCh:    make(chan struct{}),
		statusFn:  func() StatusSnapshot { return StatusSnapshot{} },
		actionsFn: func() []MenuItem { return nil },
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Events returns user requests for the session loop to carry out.
func (u *UI) Events() <-chan domain.UIEvent { return u.events }

// WaitReady blocks until the Bubble Tea event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (u *UI) QuitChan() <-chan struct{} { return u.quitCh }

// ── Conversation append API ──────────────────────────────────────

// AppendUser echoes a sent command into the conversation.
func (u *UI) AppendUser(text string) { u.send(appendMsg{lineUser, text}) }

// AppendAssistant adds one line of assistant output.
func (u *UI) AppendAssistant(text string) { u.send(appendMsg{lineAssistant, text}) }

// AppendSystem adds a dimmed system note.
func (u *UI) AppendSystem(text string) { u.send(appendMsg{lineSystem, text}) }

// AppendError adds an error line.
func (u *UI) AppendError(text string) { u.send(appendMsg{lineError, text}) }

// SetInput replaces the input-field text, e.g. with a dictation result.
// The text is NOT sent; the user confirms with Enter.
func (u *UI) SetInput(text string) { u.send(setInputMsg{text}) }

// Clear empties the conversation view.
func (u *UI) Clear() { u.send(clearMsg{}) }

// Println prints a system line into the conversation, or to stdout
// when the program isn't running.
func (u *UI) Println(a ...any) {
	u.send(appendMsg{lineSystem, fmt.Sprint(a...)})
}

// Printf prints a formatted system line into the conversation, or to
// stdout when the program isn't running.
func (u *UI) Printf(format string, a ...any) {
	u.send(appendMsg{lineSystem, fmt.Sprintf(format, a...)})
}

func (u *UI) send(msg tea.Msg) {
	if u.program != nil && !u.done.Load() {
		u.program.Send(msg)
		return
	}
	// Fallback so early startup messages aren't lost.
	if am, ok := msg.(appendMsg); ok {
		fmt.Println(am.text)
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	ti := textinput.New()
	// Plain-text prompt so the textinput width math stays correct:
	// styled prompts add invisible ANSI bytes that break the internal
	// offset/scroll calculations for long input.
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = userStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Placeholder = u.tr.T("placeholder")
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = 60 // updated on first WindowSizeMsg

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(speakingStyle),
	)

	m := newModel(u.tr, u.log, u.events, u.readyCh, u.statusFn, u.actionsFn, u.languages, ti, sp)

	u.program = tea.NewProgram(m, tea.WithAltScreen())
	_, err := u.program.Run()
	u.done.Store(true)
	close(u.quitCh)
	return err
}
