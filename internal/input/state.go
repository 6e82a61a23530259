package input

// State tracks which keys are currently held down.
// The platform layer mutates it from key events; the simulation reads it
// every tick for movement and on key-down edges for the pause combo.
type State struct {
	held map[Key]bool
}

// NewState creates an empty key state.
func NewState() *State {
	return &State{
		held: make(map[Key]bool),
	}
}

// Press marks a key as held.
// Returns true if this was a down edge (the key was not already held),
// false for a repeat while held. Only edges count for combo detection.
func (s *State) Press(k Key) bool {
	if s.held[k] {
		return false
	}
	s.held[k] = true
	return true
}

// Release marks a key as no longer held.
// Returns true if the key was held.
func (s *State) Release(k Key) bool {
	if !s.held[k] {
		return false
	}
	delete(s.held, k)
	return true
}

// Held returns true if the key is currently held down.
func (s *State) Held(k Key) bool {
	return s.held[k]
}
