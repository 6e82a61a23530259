package game

import (
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/input"
)

// player is the paddle: a fixed-size rectangle on the bottom band of the
// field, moving only horizontally.
type player struct {
	x      float64
	y      float64
	width  float64
	height float64
}

// rect returns the paddle's collision rectangle.
func (p player) rect() core.RectF {
	return core.NewRectF(p.x, p.y, p.width, p.height)
}

// nextPlayerX computes the paddle x after one tick of held-key movement.
// Both directions held cancel out. The result keeps the whole paddle
// inside [0, maxX+width].
func nextPlayerX(x float64, left, right bool, speed, maxX float64) float64 {
	if left {
		x -= speed
	}
	if right {
		x += speed
	}
	return core.ClampF(x, 0, maxX)
}

// updatePlayer applies one tick of movement from the held-key set.
func (g *Game) updatePlayer() {
	g.player.x = nextPlayerX(
		g.player.x,
		g.keys.Held(input.KeyLeft),
		g.keys.Held(input.KeyRight),
		g.cfg.Player.Speed,
		g.cfg.Field.Width-g.player.width,
	)
}
