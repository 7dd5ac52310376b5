package ui

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// RenderBanner returns the banner art horizontally centred for the
// given width (the current terminal width when width <= 0). The art is
// displayed at its native size; to change it just replace banner.txt.
func RenderBanner(width int) string {
	if width <= 0 {
		width = termWidth()
	}

	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")
	if len(lines) == 0 {
		return ""
	}

	// Widest line in display cells, not bytes: the art uses
	// box-drawing runes.
	maxW := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > maxW {
			maxW = w
		}
	}

	var b strings.Builder
	for _, l := range lines {
		pad := 0
		if width > maxW {
			pad = (width - maxW) / 2
		}
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
