package quickactions

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Match finds the action whose label matches the spoken text, so a
// dictated "Zrób commit" triggers the shortcut instead of sending the
// raw phrase. Matching is case- and accent-insensitive and ignores
// punctuation; the label may also appear as a phrase inside a longer
// utterance. Returns false when nothing matches.
func (s *Store) Match(spoken string) (Action, bool) {
	want := normalize(spoken)
	if want == "" {
		return Action{}, false
	}

	actions := s.List()

	for _, a := range actions {
		if normalize(a.Label) == want {
			s.log.Debug("quick action matched exactly: %s", a.Label)
			return a, true
		}
	}

	for _, a := range actions {
		label := normalize(a.Label)
		if label == "" {
			continue
		}
		if strings.Contains(" "+want+" ", " "+label+" ") {
			s.log.Debug("quick action matched in phrase: %s", a.Label)
			return a, true
		}
	}

	return Action{}, false
}

// normalize lowercases, strips combining accents, drops punctuation,
// and collapses whitespace so dictated text lines up with menu labels.
func normalize(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark from the decomposition, skip
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
