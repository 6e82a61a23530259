package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfall/internal/input"
)

// Control is a session-level action derived from input, as opposed to
// movement keys which feed the simulation.
type Control int

const (
	ControlNone Control = iota
	ControlStart
	ControlBack
	ControlScreenshot
	ControlQuit
)

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapMovement translates a key message to a movement key.
// The same pair doubles as the pause gesture keys.
func (km *KeyMapper) MapMovement(msg tea.KeyMsg) (input.Key, bool) {
	switch msg.String() {
	case "left", "a", "h":
		return input.KeyLeft, true
	case "right", "d", "l":
		return input.KeyRight, true
	}
	return 0, false
}

// MapControl translates a key message to a session control action.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "enter", " ", "r":
		return ControlStart
	case "esc":
		return ControlBack
	case "ctrl+s":
		return ControlScreenshot
	}
	return ControlNone
}

// defaultHoldTTL is how long a movement key counts as held after its last
// key-down event. Terminal auto-repeat refreshes it well within this window.
const defaultHoldTTL = 150 * time.Millisecond

// holdTracker emulates key-release events. Terminals only report key-down;
// a key is considered released when no repeat arrives within the TTL.
type holdTracker struct {
	ttl      time.Duration
	lastSeen map[input.Key]time.Time
}

func newHoldTracker(ttl time.Duration) *holdTracker {
	return &holdTracker{
		ttl:      ttl,
		lastSeen: make(map[input.Key]time.Time),
	}
}

// touch records a key-down event for the key.
func (h *holdTracker) touch(k input.Key, now time.Time) {
	h.lastSeen[k] = now
}

// expired returns the keys whose TTL has lapsed and forgets them.
func (h *holdTracker) expired(now time.Time) []input.Key {
	var keys []input.Key
	for k, seen := range h.lastSeen {
		if now.Sub(seen) > h.ttl {
			keys = append(keys, k)
			delete(h.lastSeen, k)
		}
	}
	return keys
}
