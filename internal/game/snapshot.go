package game

import "math"

// Snapshot is the read-only view handed to the render layer each frame.
// Plain data only; the core never shares live state.
type Snapshot struct {
	Tick          uint64
	State         State
	Player        PlayerView
	Objects       []ObjectView
	Score         int
	ComboProgress float64
}

// PlayerView is the paddle as the renderer sees it. Y is derived from the
// field config and fixed for the whole session.
type PlayerView struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// ObjectView is one falling object as the renderer sees it.
type ObjectView struct {
	ID   int64
	X    float64
	Y    float64
	Size float64
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	objects := make([]ObjectView, len(g.objects.objects))
	for i, o := range g.objects.objects {
		objects[i] = ObjectView{ID: o.ID, X: o.X, Y: o.Y, Size: o.Size}
	}
	return Snapshot{
		Tick:  g.tick,
		State: g.state,
		Player: PlayerView{
			X:      g.player.x,
			Y:      g.player.y,
			Width:  g.player.width,
			Height: g.player.height,
		},
		Objects:       objects,
		Score:         g.score,
		ComboProgress: g.combo.progress,
	}
}

// Hash folds the snapshot into a single value. Two runs with the same seed
// and the same input timeline produce identical hashes tick for tick.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.State) //#nosec G115 -- four small enum values
	h = h*31 + uint64(s.Score) //#nosec G115 -- score is never negative
	h = h*31 + math.Float64bits(s.Player.X)
	h = h*31 + math.Float64bits(s.ComboProgress)
	h = h*31 + uint64(len(s.Objects))
	for _, o := range s.Objects {
		h = h*31 + uint64(o.ID) //#nosec G115 -- spawn time in ms, positive
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.Y)
		h = h*31 + math.Float64bits(o.Size)
	}
	return h
}
