// Package game implements the skyfall simulation core: a fixed-order tick
// pipeline that moves the paddle from the held-key set, advances and spawns
// falling objects on a wall-clock interval, detects collisions, scores
// survival time, and runs the double-press pause gesture.
//
// The package performs no I/O and knows nothing about terminals. The
// platform layer drives it with tick and key-edge events and reads
// Snapshots back. All state here is owned exclusively by the Game; the one
// outside input is the platform-owned held-key set, which the Game only
// reads.
package game

import (
	"time"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/input"
)

// State identifies the game phase. Exactly one is current at a time and it
// decides which subsystems a tick advances.
type State int

const (
	StateReady State = iota
	StateActive
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Game is the simulation core.
//
// All methods must be called from a single goroutine (the Bubble Tea update
// loop in this repo). The main tick and the combo decay tick are scheduled
// independently and may interleave in any order between frames; every
// mutation happens atomically inside one call.
type Game struct {
	cfg  config.Config
	keys *input.State
	seed int64

	state   State
	player  player
	objects *objectField
	combo   *pauseCombo
	score   int
	tick    uint64
}

// New creates a game in StateReady.
// keys is the platform-owned held-key set the simulation reads for
// movement; seed fixes the spawn column RNG for the next Start.
func New(cfg config.Config, keys *input.State, seed int64) *Game {
	g := &Game{
		cfg:     cfg,
		keys:    keys,
		seed:    seed,
		objects: newObjectField(cfg),
		combo:   newPauseCombo(cfg.ComboTimeout()),
	}
	g.resetWorld(time.Time{})
	return g
}

// SetSeed fixes the RNG seed applied by the next Start.
func (g *Game) SetSeed(seed int64) {
	g.seed = seed
}

// Start begins a new run. Valid from StateReady and StateGameOver; any
// other state is a no-op. The world is fully reset either way: paddle
// centered, objects cleared, score zeroed, gesture idle, RNG reseeded.
// now anchors the spawn schedule.
func (g *Game) Start(now time.Time) {
	if g.state != StateReady && g.state != StateGameOver {
		return
	}
	g.resetWorld(now)
	g.state = StateActive
}

// Resume leaves StatePaused without resetting anything.
// A no-op in every other state.
func (g *Game) Resume() {
	if g.state != StatePaused {
		return
	}
	g.state = StateActive
}

// Stop tears the session down to StateReady, clearing the world.
// The platform pairs this with cancelling both tick loops.
func (g *Game) Stop() {
	g.resetWorld(time.Time{})
	g.state = StateReady
}

// resetWorld returns every subsystem to its start-of-run state.
func (g *Game) resetWorld(now time.Time) {
	g.player = player{
		x:      (g.cfg.Field.Width - g.cfg.Player.Width) / 2,
		y:      g.cfg.PlayerY(),
		width:  g.cfg.Player.Width,
		height: g.cfg.Player.Height,
	}
	g.objects.reset(g.seed, now)
	g.combo.reset()
	g.score = 0
	g.tick = 0
}

// Tick advances the simulation by one frame. now is the wall clock read
// once for this tick; spawn timing uses it, so object cadence is
// frame-rate independent.
//
// Outside StateActive the call returns with nothing touched. The scheduler
// keeps ticking through Ready/Paused/GameOver regardless, which is what
// keeps resume and restart responsive.
func (g *Game) Tick(now time.Time) {
	if g.state != StateActive {
		return
	}

	g.tick++
	g.updatePlayer()
	g.objects.advance(now)
	hit := g.hitsPlayer()
	g.score++ // The collision tick still counts as survived
	if hit {
		g.state = StateGameOver
	}
}

// hitsPlayer scans the object set against the paddle band.
func (g *Game) hitsPlayer() bool {
	pr := g.player.rect()
	for _, o := range g.objects.objects {
		if core.NewRectF(o.X, o.Y, o.Size, o.Size).Intersects(pr) {
			return true
		}
	}
	return false
}

// KeyDown feeds a key-became-down edge to the pause gesture. The platform
// must have recorded the key in the held set already and must suppress
// terminal auto-repeats. Movement never goes through here; it reads the
// held set during the tick.
func (g *Game) KeyDown(k input.Key, now time.Time) {
	if k != input.KeyLeft && k != input.KeyRight {
		return
	}
	if g.state != StateActive && g.state != StatePaused {
		return
	}
	// A qualifying press is the edge where both combo keys become held.
	if !g.keys.Held(input.KeyLeft) || !g.keys.Held(input.KeyRight) {
		return
	}
	if g.combo.press(now) {
		g.togglePause()
	}
}

// togglePause flips Active<->Paused when the gesture completes.
func (g *Game) togglePause() {
	switch g.state {
	case StateActive:
		g.state = StatePaused
	case StatePaused:
		g.state = StateActive
	}
}

// TickCombo advances the gesture decay animation. The platform schedules it
// as a second periodic callback only while the gesture is armed; a false
// return tells the caller to let the decay loop die.
func (g *Game) TickCombo(now time.Time) bool {
	return g.combo.decay(now)
}

// ComboArmed reports whether the pause gesture is waiting for its second
// press.
func (g *Game) ComboArmed() bool {
	return g.combo.armed
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the current survival score.
func (g *Game) Score() int {
	return g.score
}
