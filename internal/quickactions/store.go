// Package quickactions manages the user's quick-action shortcuts.
package quickactions

import (
	"errors"
	"fmt"
	"sync"

	"github.com/WojtekL7/claude-voice-assistant/internal/domain"
	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
	"github.com/WojtekL7/claude-voice-assistant/internal/storage"
)

const fileName = "quick_actions.json"

// Action is one quick-action shortcut: a short menu label and the
// command text it inserts into the input line.
type Action struct {
	Label   string `json:"label"`
	Command string `json:"command"`
}

// Defaults returns the quick actions seeded on first run.
func Defaults() []Action {
	return []Action{
		{Label: "Napraw błąd", Command: "Napraw błąd w tym kodzie"},
		{Label: "Wyjaśnij kod", Command: "Wyjaśnij co robi ten kod"},
		{Label: "Zrób commit", Command: "Zrób commit z opisem zmian"},
		{Label: "Napisz testy", Command: "Napisz testy jednostkowe dla tego kodu"},
		{Label: "Zoptymalizuj", Command: "Zoptymalizuj ten kod"},
		{Label: "Dodaj komentarze", Command: "Dodaj komentarze do tego kodu"},
	}
}

// Store holds the quick actions and persists every change. Safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	actions []Action
	files   *storage.FileStore
	log     *logger.Logger
}

// NewStore loads quick_actions.json, seeding the default set when the
// file does not exist yet.
func NewStore(files *storage.FileStore, log *logger.Logger) (*Store, error) {
	s := &Store{files: files, log: log}

	err := files.Load(fileName, &s.actions)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.actions = Defaults()
		if err := files.Save(fileName, s.actions); err != nil {
			return nil, fmt.Errorf("seeding quick actions: %w", err)
		}
		log.Debug("seeded %d quick actions", len(s.actions))
	case err != nil:
		return nil, err
	}

	return s, nil
}

// List returns the actions in menu order.
func (s *Store) List() []Action {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Get returns the action at the given index.
func (s *Store) Get(i int) (Action, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.actions) {
		return Action{}, domain.ErrNotFound
	}
	return s.actions[i], nil
}

// Add appends a new action and saves.
func (s *Store) Add(label, command string) error {
	if label == "" || command == "" {
		return fmt.Errorf("quick action needs both a label and a command")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = append(s.actions, Action{Label: label, Command: command})
	s.log.Info("quick action added: %s", label)
	return s.files.Save(fileName, s.actions)
}

// Remove deletes the action at the given index and saves.
func (s *Store) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.actions) {
		return domain.ErrNotFound
	}
	removed := s.actions[i]
	s.actions = append(s.actions[:i], s.actions[i+1:]...)
	s.log.Info("quick action removed: %s", removed.Label)
	return s.files.Save(fileName, s.actions)
}

// Len returns the number of actions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.actions)
}
