// Package input provides the semantic key model shared by the simulation
// core and the platform layer. The platform owns a State (which keys are
// currently held) and feeds key-down edges to the game; the game only ever
// reads it.
package input

// Key identifies a semantic game key, abstracted from physical key presses.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}
