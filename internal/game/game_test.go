package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/input"
)

var testStart = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

const testFrame = time.Second / 60

func newTestGame() (*Game, *input.State) {
	keys := input.NewState()
	return New(config.DefaultConfig(), keys, 12345), keys
}

// pressBoth simulates the platform pressing both movement keys: edges go to
// the held set first, then to KeyDown, exactly like the update loop does.
func pressBoth(g *Game, keys *input.State, now time.Time) {
	for _, k := range []input.Key{input.KeyLeft, input.KeyRight} {
		if keys.Press(k) {
			g.KeyDown(k, now)
		}
	}
}

func releaseBoth(keys *input.State) {
	keys.Release(input.KeyLeft)
	keys.Release(input.KeyRight)
}

// pauseViaCombo drives the full double-press gesture and returns the time
// of the completing press.
func pauseViaCombo(t *testing.T, g *Game, keys *input.State, now time.Time) time.Time {
	t.Helper()
	pressBoth(g, keys, now)
	releaseBoth(keys)
	now = now.Add(100 * time.Millisecond)
	pressBoth(g, keys, now)
	releaseBoth(keys)
	if g.State() != StatePaused {
		t.Fatalf("state after double press = %v, want Paused", g.State())
	}
	return now
}

// forceCollision drops an object directly above the paddle so the next tick
// lands it inside the paddle band.
func forceCollision(t *testing.T, g *Game, now time.Time) time.Time {
	t.Helper()
	g.objects.objects = append(g.objects.objects, FallingObject{
		ID:   999,
		X:    g.player.x,
		Y:    g.player.y - g.cfg.Objects.Speed,
		Size: g.cfg.Objects.Size,
	})
	now = now.Add(testFrame)
	g.Tick(now)
	if g.State() != StateGameOver {
		t.Fatalf("state after forced collision = %v, want GameOver", g.State())
	}
	return now
}

func TestNewGameIsReady(t *testing.T) {
	g, _ := newTestGame()
	if g.State() != StateReady {
		t.Errorf("State() = %v, want Ready", g.State())
	}
	snap := g.Snapshot()
	if snap.Score != 0 || snap.Tick != 0 || len(snap.Objects) != 0 {
		t.Errorf("fresh snapshot not empty: %+v", snap)
	}
	if snap.Player.X != 370 {
		t.Errorf("Player.X = %v, want centered at 370", snap.Player.X)
	}
	if snap.Player.Y != 760 {
		t.Errorf("Player.Y = %v, want 760", snap.Player.Y)
	}
}

func TestStartTransitions(t *testing.T) {
	t.Run("from ready", func(t *testing.T) {
		g, _ := newTestGame()
		g.Start(testStart)
		if g.State() != StateActive {
			t.Errorf("State() = %v, want Active", g.State())
		}
	})

	t.Run("from game over", func(t *testing.T) {
		g, _ := newTestGame()
		g.Start(testStart)
		now := forceCollision(t, g, testStart)
		g.Start(now)
		if g.State() != StateActive {
			t.Errorf("State() = %v, want Active", g.State())
		}
		if g.Score() != 0 {
			t.Errorf("Score() after restart = %d, want 0", g.Score())
		}
	})

	t.Run("ignored while active", func(t *testing.T) {
		g, _ := newTestGame()
		g.Start(testStart)
		now := testStart
		for range 5 {
			now = now.Add(testFrame)
			g.Tick(now)
		}
		g.Start(now)
		if g.Score() != 5 {
			t.Errorf("Score() = %d, want 5 (Start must not reset a live run)", g.Score())
		}
	})

	t.Run("ignored while paused", func(t *testing.T) {
		g, keys := newTestGame()
		g.Start(testStart)
		now := pauseViaCombo(t, g, keys, testStart)
		g.Start(now)
		if g.State() != StatePaused {
			t.Errorf("State() = %v, want Paused", g.State())
		}
	})
}

func TestStartResetsWorld(t *testing.T) {
	g, keys := newTestGame()
	g.Start(testStart)

	keys.Press(input.KeyRight)
	now := testStart
	for range 20 {
		now = now.Add(testFrame)
		g.Tick(now)
	}
	releaseBoth(keys)
	now = forceCollision(t, g, now)

	g.Start(now)
	snap := g.Snapshot()
	if snap.Player.X != 370 {
		t.Errorf("Player.X = %v, want recentered at 370", snap.Player.X)
	}
	if snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("score/tick = %d/%d, want 0/0", snap.Score, snap.Tick)
	}
	if len(snap.Objects) != 0 {
		t.Errorf("objects after restart = %d, want 0", len(snap.Objects))
	}
	if snap.ComboProgress != 0 {
		t.Errorf("ComboProgress = %v, want 0", snap.ComboProgress)
	}
}

// A restarted game must replay identically to a brand new one: the restart
// rewinds the RNG stream, not just the visible state.
func TestRestartMatchesFreshGame(t *testing.T) {
	restarted, _ := newTestGame()
	restarted.Start(testStart)
	now := forceCollision(t, restarted, testStart)

	base := now.Add(time.Second)
	restarted.Start(base)

	fresh, _ := newTestGame()
	fresh.Start(base)

	tick := base
	for range 120 {
		tick = tick.Add(testFrame)
		restarted.Tick(tick)
		fresh.Tick(tick)
		rs, fs := restarted.Snapshot(), fresh.Snapshot()
		if rs.Hash() != fs.Hash() {
			t.Fatalf("restarted and fresh games diverged at tick %d", rs.Tick)
		}
	}
}

func TestTickInactiveStates(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		g, _ := newTestGame()
		before := g.Snapshot()
		g.Tick(testStart)
		after := g.Snapshot()
		if before.Hash() != after.Hash() {
			t.Error("Tick in Ready mutated state")
		}
	})

	t.Run("paused", func(t *testing.T) {
		g, keys := newTestGame()
		g.Start(testStart)
		now := pauseViaCombo(t, g, keys, testStart)
		before := g.Snapshot()
		for range 30 {
			now = now.Add(testFrame)
			g.Tick(now)
		}
		after := g.Snapshot()
		if before.Hash() != after.Hash() {
			t.Error("Tick in Paused mutated state")
		}
		if after.Score != before.Score {
			t.Errorf("score advanced while paused: %d -> %d", before.Score, after.Score)
		}
	})

	t.Run("game over", func(t *testing.T) {
		g, _ := newTestGame()
		g.Start(testStart)
		now := forceCollision(t, g, testStart)
		before := g.Snapshot()
		for range 30 {
			now = now.Add(testFrame)
			g.Tick(now)
		}
		if before.Hash() != g.Snapshot().Hash() {
			t.Error("Tick in GameOver mutated state")
		}
	})
}

func TestScorePerActiveTick(t *testing.T) {
	g, _ := newTestGame()
	g.Start(testStart)
	now := testStart
	for range 10 {
		now = now.Add(testFrame)
		g.Tick(now)
	}
	if g.Score() != 10 {
		t.Errorf("Score() = %d, want 10", g.Score())
	}
	snap := g.Snapshot()
	if snap.Tick != 10 {
		t.Errorf("Tick = %d, want 10", snap.Tick)
	}
}

// The tick that detects the collision still counts as survived: the score
// includes it.
func TestScoreCountsFinalTick(t *testing.T) {
	g, _ := newTestGame()
	g.Start(testStart)
	now := testStart
	for range 7 {
		now = now.Add(testFrame)
		g.Tick(now)
	}
	before := g.Score()
	forceCollision(t, g, now)
	if g.Score() != before+1 {
		t.Errorf("Score() = %d, want %d (collision tick counts)", g.Score(), before+1)
	}
}

func TestCollisionStrictEdges(t *testing.T) {
	// The paddle occupies [580,640]x[760,780] in every case; object
	// positions are where the square lands after the tick moves it.
	tests := []struct {
		name string
		objX float64
		objY float64
		hit  bool
	}{
		{"overlapping corner", 590, 755, true},
		{"centered above, one pixel in", 600, 759.5, true},
		{"touching top edge", 590, 735, false},
		{"touching right edge", 640, 760, false},
		{"touching left edge", 555, 760, false},
		{"clear miss", 100, 400, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame()
			g.Start(testStart)
			g.player.x = 580
			g.objects.objects = append(g.objects.objects, FallingObject{
				ID:   1,
				X:    tt.objX,
				Y:    tt.objY - g.cfg.Objects.Speed,
				Size: 25,
			})
			g.Tick(testStart.Add(testFrame))
			gotHit := g.State() == StateGameOver
			if gotHit != tt.hit {
				t.Errorf("object at (%v,%v): hit = %v, want %v", tt.objX, tt.objY, gotHit, tt.hit)
			}
		})
	}
}

func TestResumeOnlyFromPaused(t *testing.T) {
	t.Run("from paused", func(t *testing.T) {
		g, keys := newTestGame()
		g.Start(testStart)
		pauseViaCombo(t, g, keys, testStart)
		score := g.Score()
		g.Resume()
		if g.State() != StateActive {
			t.Errorf("State() = %v, want Active", g.State())
		}
		if g.Score() != score {
			t.Errorf("Resume changed score: %d -> %d", score, g.Score())
		}
	})

	t.Run("ignored elsewhere", func(t *testing.T) {
		for _, state := range []State{StateReady, StateActive, StateGameOver} {
			g, _ := newTestGame()
			switch state {
			case StateActive:
				g.Start(testStart)
			case StateGameOver:
				g.Start(testStart)
				forceCollision(t, g, testStart)
			}
			g.Resume()
			if g.State() != state {
				t.Errorf("Resume from %v moved to %v", state, g.State())
			}
		}
	})
}

func TestStopReturnsToReady(t *testing.T) {
	g, _ := newTestGame()
	g.Start(testStart)
	now := testStart
	for range 40 {
		now = now.Add(testFrame)
		g.Tick(now)
	}
	g.Stop()
	if g.State() != StateReady {
		t.Errorf("State() = %v, want Ready", g.State())
	}
	snap := g.Snapshot()
	if snap.Score != 0 || len(snap.Objects) != 0 {
		t.Errorf("Stop left world populated: score=%d objects=%d", snap.Score, len(snap.Objects))
	}
}

func TestDeterminismSameSeed(t *testing.T) {
	run := func(seed int64) uint64 {
		keys := input.NewState()
		g := New(config.DefaultConfig(), keys, seed)
		g.Start(testStart)
		now := testStart
		for i := 1; i <= 300; i++ {
			// Scripted input: drift right, then hold left.
			switch i {
			case 20:
				if keys.Press(input.KeyRight) {
					g.KeyDown(input.KeyRight, now)
				}
			case 90:
				keys.Release(input.KeyRight)
				if keys.Press(input.KeyLeft) {
					g.KeyDown(input.KeyLeft, now)
				}
			}
			now = now.Add(testFrame)
			g.Tick(now)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if run(42) != run(42) {
		t.Error("same seed and inputs produced diverging runs")
	}
	if run(1) == run(2) {
		t.Error("different seeds produced identical runs")
	}
}

func TestSetSeedAppliesOnNextStart(t *testing.T) {
	a, _ := newTestGame()
	a.SetSeed(7)
	a.Start(testStart)

	b := New(config.DefaultConfig(), input.NewState(), 7)
	b.Start(testStart)

	now := testStart
	for range 90 {
		now = now.Add(testFrame)
		a.Tick(now)
		b.Tick(now)
	}
	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Error("SetSeed before Start did not take effect")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateReady, "Ready"},
		{StateActive, "Active"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
