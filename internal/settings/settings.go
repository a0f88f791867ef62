// Package settings holds the runtime switches shared by every logger handle.
package settings

import (
	"sync"

	"github.com/slok/flare/internal/model"
)

// Provider exposes the current settings snapshot.
type Provider interface {
	Current() model.Settings
}

// Store is a concurrency safe settings holder. Every logger handle derived
// from the same root shares one store, so a patch applied through any of
// them is visible to all.
type Store struct {
	mu      sync.RWMutex
	current model.Settings
}

// NewStore returns a store primed with the given settings.
func NewStore(initial model.Settings) *Store {
	return &Store{current: initial}
}

// Current returns the current settings snapshot.
func (s *Store) Current() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Update applies the non-nil fields of the patch and returns the resulting
// snapshot.
func (s *Store) Update(p model.SettingsPatch) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.current.Apply(p)
	return s.current
}

var _ Provider = &Store{}
