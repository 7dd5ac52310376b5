// Package transcript cleans assistant output for display and speech
// and batches streamed lines for auto-read.
package transcript

import (
	"regexp"
	"strings"
)

// Terminal control sequences that survive into captured output: CSI
// (colors, cursor moves) and OSC (window titles).
var (
	ansiCSI = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	ansiOSC = regexp.MustCompile(`\x1b\][^\x07]*\x07`)
)

// UserPrefix marks lines the user typed in the conversation buffer.
const UserPrefix = "> "

// Clean strips terminal control sequences and surrounding whitespace.
func Clean(s string) string {
	s = ansiCSI.ReplaceAllString(s, "")
	s = ansiOSC.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// LastReply extracts the assistant's response to the most recent user
// line. Before any user line it returns the whole cleaned buffer.
// Bracketed system notes are dropped.
func LastReply(lines []string) string {
	start := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], UserPrefix) {
			start = i + 1
			break
		}
	}

	var out []string
	for _, line := range lines[start:] {
		line = Clean(line)
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
