// Package theme holds the dark-mode toggle state shared by the desktop and
// mobile controls.
package theme

import "fmt"

const (
	DesktopKey = "darkMode"
	MobileKey  = "darkModeMobile"

	Enabled  = "enabled"
	Disabled = "disabled"

	// LightModeLabel replaces the control text while dark mode is on.
	LightModeLabel = "☀ Light Mode"
)

// Storage persists values across reloads.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// State is one dark-mode switch. Both controls read and write it, and it is
// persisted under both keys so older pages reading either key agree.
type State struct {
	store   Storage
	enabled bool
}

// Load restores the persisted state; either key set to "enabled" turns dark
// mode on.
func Load(store Storage) *State {
	s := &State{store: store}
	for _, k := range []string{DesktopKey, MobileKey} {
		if v, ok := store.Get(k); ok && v == Enabled {
			s.enabled = true
			break
		}
	}
	return s
}

func (s *State) Enabled() bool { return s.enabled }

// Toggle flips dark mode and persists the new value.
func (s *State) Toggle() error {
	return s.Set(!s.enabled)
}

func (s *State) Set(on bool) error {
	v := Disabled
	if on {
		v = Enabled
	}
	for _, k := range []string{DesktopKey, MobileKey} {
		if err := s.store.Set(k, v); err != nil {
			return fmt.Errorf("persisting %s: %w", k, err)
		}
	}
	s.enabled = on
	return nil
}

// Label is the text for a toggle control whose normal content is original.
func (s *State) Label(original string) string {
	if s.enabled {
		return LightModeLabel
	}
	return original
}
