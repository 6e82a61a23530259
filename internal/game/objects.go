package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/skyfall/internal/config"
)

// FallingObject is one square dropping through the field. X and Size are
// fixed at spawn; Y only ever grows. ID is the spawn wall-clock in Unix
// milliseconds, unique in practice because spawns are rate-limited far
// below one per millisecond.
type FallingObject struct {
	ID   int64
	X    float64
	Y    float64
	Size float64
}

// objectField owns the live object set, the spawn schedule, and the RNG
// that picks spawn columns.
type objectField struct {
	objects   []FallingObject
	lastSpawn time.Time
	rng       *rand.Rand

	fieldW   float64
	fieldH   float64
	size     float64
	speed    float64
	interval time.Duration
}

func newObjectField(cfg config.Config) *objectField {
	return &objectField{
		fieldW:   cfg.Field.Width,
		fieldH:   cfg.Field.Height,
		size:     cfg.Objects.Size,
		speed:    cfg.Objects.Speed,
		interval: cfg.SpawnInterval(),
	}
}

// reset clears the object set, restarts the spawn schedule at now, and
// rewinds the RNG stream to the seed.
func (of *objectField) reset(seed int64, now time.Time) {
	of.objects = of.objects[:0]
	of.rng = rand.New(rand.NewSource(seed))
	of.lastSpawn = now
}

// advance runs one tick of the object field: move everything down, drop
// objects that crossed the bottom boundary, then spawn at most one new
// object when the wall-clock interval has elapsed. Removal happens in the
// same tick as the crossing, so a y >= fieldH position is never observable.
func (of *objectField) advance(now time.Time) {
	for i := range of.objects {
		of.objects[i].Y += of.speed
	}

	valid := of.objects[:0]
	for _, o := range of.objects {
		if o.Y < of.fieldH {
			valid = append(valid, o)
		}
	}
	of.objects = valid

	if now.Sub(of.lastSpawn) > of.interval {
		of.spawn(now)
	}
}

// spawn creates one object just above the visible field at a random column
// chosen so the square fits horizontally.
func (of *objectField) spawn(now time.Time) {
	of.objects = append(of.objects, FallingObject{
		ID:   now.UnixMilli(),
		X:    of.rng.Float64() * (of.fieldW - of.size),
		Y:    -of.size,
		Size: of.size,
	})
	of.lastSpawn = now
}
