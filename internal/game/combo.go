package game

import "time"

// ComboProgressMax is the progress value the instant the gesture arms.
// It decays linearly to zero across the timeout window.
const ComboProgressMax = 50.0

// pauseCombo implements the double-press pause gesture: two presses of both
// movement keys together, landing within the timeout window, toggle pause.
//
// Progress is recomputed from the wall clock on every decay tick rather
// than decremented, so the animation survives uneven tick spacing.
type pauseCombo struct {
	timeout    time.Duration
	armed      bool
	lastPress  time.Time
	comboStart time.Time
	progress   float64
}

func newPauseCombo(timeout time.Duration) *pauseCombo {
	return &pauseCombo{timeout: timeout}
}

// press registers a qualifying press. Returns true when the press completes
// the gesture. A press landing after the window has closed re-arms the
// gesture as a fresh first press instead of completing it.
func (c *pauseCombo) press(now time.Time) bool {
	if c.armed && now.Sub(c.lastPress) < c.timeout {
		c.reset()
		return true
	}
	c.armed = true
	c.lastPress = now
	c.comboStart = now
	c.progress = ComboProgressMax
	return false
}

// decay recomputes progress from elapsed wall-clock and disarms the gesture
// once it hits zero. Returns true while still armed.
func (c *pauseCombo) decay(now time.Time) bool {
	if !c.armed {
		return false
	}
	elapsed := now.Sub(c.comboStart)
	c.progress = ComboProgressMax * (1 - float64(elapsed)/float64(c.timeout))
	if c.progress <= 0 {
		c.reset()
		return false
	}
	return true
}

// reset returns the gesture to idle with zero progress.
func (c *pauseCombo) reset() {
	c.armed = false
	c.lastPress = time.Time{}
	c.comboStart = time.Time{}
	c.progress = 0
}
