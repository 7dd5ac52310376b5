// Package i18n resolves interface strings for the active locale.
package i18n

import (
	"fmt"
	"sync"
)

// FallbackLanguage is used for keys a locale does not translate.
const FallbackLanguage = "en-US"

// Translator resolves catalog keys for one locale. Safe for concurrent
// use; the UI goroutine reads while the session loop may switch locale.
type Translator struct {
	mu   sync.RWMutex
	lang string
}

// New returns a translator for the given BCP 47 tag. Unknown tags are
// fine; every lookup then resolves through the fallback chain.
func New(lang string) *Translator {
	return &Translator{lang: lang}
}

// SetLanguage switches the locale at runtime.
func (t *Translator) SetLanguage(lang string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lang = lang
}

// Language returns the active locale tag.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// T resolves a catalog key: the active locale first, then English,
// then the key itself.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()

	if m, ok := catalog[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := catalog[FallbackLanguage][key]; ok {
		return s
	}
	return key
}

// Tf resolves a key and formats it with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Has reports whether the active locale translates the key itself,
// without falling back.
func (t *Translator) Has(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := catalog[t.lang]
	if !ok {
		return false
	}
	_, ok = m[key]
	return ok
}
