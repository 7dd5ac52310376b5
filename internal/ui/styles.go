package ui

import "github.com/charmbracelet/lipgloss"

// ── Styles ───────────────────────────────────────────────────────

var (
	barBg = lipgloss.NewStyle().
		Background(lipgloss.Color("#27272a")).
		Foreground(lipgloss.Color("#a1a1aa"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Assistant replies — soft sky blue.
	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// User lines echoed into the conversation.
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// System notes — dimmed zinc.
	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	// Errors — soft coral.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	// Status-bar accents.
	recordingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	speakingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	autoOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	autoOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	// Modal menus.
	menuTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	menuCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	menuBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(1, 2)
)
