package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/i18n"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// Rows below the viewport: blank spacer, input, status bar, help line.
const chromeRows = 4

type lineKind int

const (
	lineUser lineKind = iota
	lineAssistant
	lineSystem
	lineError
)

type entry struct {
	kind lineKind
	text string
}

// Messages from the session loop.
type appendMsg struct {
	kind lineKind
	text string
}

type setInputMsg struct{ text string }

type clearMsg struct{}

type statusTickMsg time.Time

type menuKind int

const (
	menuNone menuKind = iota
	menuActions
	menuLanguages
)

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	tr  *i18n.Translator
	log *logger.Logger

	events    chan<- domain.UIEvent
	readyCh   chan struct{}
	statusFn  func() StatusSnapshot
	actionsFn func() []MenuItem
	languages []MenuItem

	vp      viewport.Model
	input   textinput.Model
	spin    spinner.Model
	banner  string
	history []entry
	status  StatusSnapshot

	modal     *menu
	modalKind menuKind

	width  int
	height int
	ready  bool // first WindowSizeMsg received
}

func newModel(
	tr *i18n.Translator,
	log *logger.Logger,
	events chan<- domain.UIEvent,
	readyCh chan struct{},
	statusFn func() StatusSnapshot,
	actionsFn func() []MenuItem,
	languages []MenuItem,
	input textinput.Model,
	spin spinner.Model,
) model {
	return model{
		tr:        tr,
		log:       log,
		events:    events,
		readyCh:   readyCh,
		statusFn:  statusFn,
		actionsFn: actionsFn,
		languages: languages,
		input:     input,
		spin:      spin,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		statusTick(),
		signalReady(m.readyCh),
	)
}

func signalReady(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		close(ch)
		return nil
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		const promptLen = 2
		if msg.Width > promptLen {
			m.input.Width = msg.Width - promptLen - 1
		}
		vpHeight := msg.Height - chromeRows
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, vpHeight)
			m.banner = RenderBanner(msg.Width)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = vpHeight
		}
		m.refreshContent()
		return m, nil

	case statusTickMsg:
		m.status = m.statusFn()
		m.input.Placeholder = m.tr.T("placeholder")
		return m, statusTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case appendMsg:
		m.history = append(m.history, entry{msg.kind, msg.text})
		m.refreshContent()
		m.vp.GotoBottom()
		return m, nil

	case setInputMsg:
		m.input.SetValue(msg.text)
		m.input.CursorEnd()
		return m, nil

	case clearMsg:
		m.history = nil
		m.banner = ""
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		return m.handleMenuKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.emit(domain.UIEvent{Kind: domain.UIQuit})
		return m, tea.Quit

	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.input.Reset()
		m.emit(domain.UIEvent{Kind: domain.UISend, Payload: text})
		return m, nil

	case tea.KeyF2, tea.KeyCtrlD:
		m.emit(domain.UIEvent{Kind: domain.UIDictateToggle})
		return m, nil

	case tea.KeyF3:
		m.emit(domain.UIEvent{Kind: domain.UIReadLast})
		return m, nil

	case tea.KeyF4:
		m.emit(domain.UIEvent{Kind: domain.UIPauseResume})
		return m, nil

	case tea.KeyF5:
		m.emit(domain.UIEvent{Kind: domain.UIStopAll})
		return m, nil

	case tea.KeyF6:
		if items := m.actionsFn(); len(items) > 0 {
			m.modal = newMenu(m.tr.T("quick_actions"), items)
			m.modalKind = menuActions
		}
		return m, nil

	case tea.KeyF7:
		if len(m.languages) > 0 {
			m.modal = newMenu(m.tr.T("language"), m.languages)
			m.modalKind = menuLanguages
		}
		return m, nil

	case tea.KeyF8:
		m.emit(domain.UIEvent{Kind: domain.UIAutoReadToggle})
		return m, nil

	case tea.KeyCtrlN:
		m.emit(domain.UIEvent{Kind: domain.UINewSession})
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.emit(domain.UIEvent{Kind: domain.UIQuit})
		return m, tea.Quit

	case tea.KeyEsc:
		m.modal = nil
		m.modalKind = menuNone
		return m, nil

	case tea.KeyUp:
		m.modal.up()
		return m, nil

	case tea.KeyDown:
		m.modal.down()
		return m, nil

	case tea.KeyEnter:
		item, ok := m.modal.selected()
		kind := m.modalKind
		m.modal = nil
		m.modalKind = menuNone
		if !ok {
			return m, nil
		}
		switch kind {
		case menuActions:
			m.input.SetValue(item.Value)
			m.input.CursorEnd()
		case menuLanguages:
			m.emit(domain.UIEvent{Kind: domain.UILanguage, Payload: item.Value})
		}
		return m, nil
	}
	return m, nil
}

// emit hands a user request to the session loop without ever blocking
// the render loop.
func (m model) emit(ev domain.UIEvent) {
	select {
	case m.events <- ev:
	default:
		m.log.Warn("ui: dropping event %d, session loop not keeping up", ev.Kind)
	}
}

func (m *model) refreshContent() {
	if !m.ready {
		return
	}
	var b strings.Builder
	if m.banner != "" {
		b.WriteString(m.banner)
	}
	for i, e := range m.history {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderEntry(e))
	}
	m.vp.SetContent(b.String())
}

func (m *model) renderEntry(e entry) string {
	w := m.vp.Width
	switch e.kind {
	case lineUser:
		return promptStyle.Render("> ") + userStyle.Render(e.text)
	case lineSystem:
		return systemStyle.Width(w).Render(e.text)
	case lineError:
		return errorStyle.Width(w).Render(e.text)
	default:
		return assistantStyle.Width(w).Render(e.text)
	}
}

// ── Rendering ────────────────────────────────────────────────────

func (m model) View() string {
	if !m.ready {
		return ""
	}
	if m.modal != nil {
		return m.modal.view(m.width, m.height, "↑/↓ · Enter · Esc")
	}

	var b strings.Builder
	b.WriteString(m.vp.View())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(m.renderStatusBar())
	b.WriteByte('\n')
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m model) renderStatusBar() string {
	var parts []string

	if m.status.License != "" {
		parts = append(parts, m.status.License)
	}

	switch m.status.Record {
	case domain.RecordCapturing:
		parts = append(parts, recordingStyle.Render("● "+m.tr.T("recording")+" "+meter(m.status.Level)))
	case domain.RecordProcessing:
		parts = append(parts, recordingStyle.Render(m.tr.T("processing")))
	}

	switch m.status.Speech {
	case domain.SpeechGenerating:
		parts = append(parts, speakingStyle.Render(m.tr.T("reading")))
	case domain.SpeechPlaying:
		parts = append(parts, speakingStyle.Render(fmt.Sprintf("%s %d/%d",
			m.tr.T("reading"), m.status.SpeechCur, m.status.SpeechTotal)))
	case domain.SpeechPaused:
		parts = append(parts, speakingStyle.Render(m.tr.T("paused")))
	}

	if m.status.Busy {
		parts = append(parts, m.spin.View())
	}

	if m.status.AutoRead {
		parts = append(parts, autoOnStyle.Render("✓ "+m.tr.T("auto_read")))
	} else {
		parts = append(parts, autoOffStyle.Render("✗ "+m.tr.T("auto_read")))
	}

	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "
	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}

func (m model) renderHelp() string {
	t := m.tr
	return helpStyle.Render(fmt.Sprintf(
		" F2 %s · F3 %s · F4 %s · F5 %s · F6 %s · F7 %s · F8 Auto · ^N %s · ^C %s",
		t.T("dictate"), t.T("read"), t.T("pause"), t.T("stop"),
		t.T("quick_actions"), t.T("language"), t.T("new_session"), t.T("quit")))
}

// meter renders a five-cell microphone level indicator.
func meter(level float64) string {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	filled := int(level*5 + 0.5)
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 5-filled)
}
