package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// world is the shared environment entities read while updating:
// the playfield extent, the tunables and the seeded RNG.
type world struct {
	rng *rand.Rand
	cfg *config.AsteroidsConfig
	w   float64
	h   float64

	// shotInterval lets difficulty shorten saucer shot intervals.
	shotInterval func(base int) int
}

func newWorld(cfg *config.AsteroidsConfig, seed int64) *world {
	return &world{
		rng:          rand.New(rand.NewSource(seed)), //#nosec G404 -- game RNG, not crypto
		cfg:          cfg,
		w:            cfg.Playfield.Width,
		h:            cfg.Playfield.Height,
		shotInterval: func(base int) int { return base },
	}
}

// randRange returns an int in the half-open range [r.Min, r.Max).
func (w *world) randRange(r config.Range) int {
	return w.randInt(r.Min, r.Max)
}

// randInt returns an int in [lo, hi). A degenerate range yields lo.
func (w *world) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Intn(hi-lo)
}

// randAngle returns a whole-degree heading in [0, 360).
func (w *world) randAngle() float64 {
	return float64(w.rng.Intn(360))
}

// Edge names a side of the playfield.
type Edge int

const (
	EdgeNorth Edge = iota
	EdgeSouth
	EdgeEast
	EdgeWest
)

// nearEdges picks a random side and returns a spawn point just outside it
// together with a heading that points roughly into the playfield.
func (w *world) nearEdges() (core.Vec2, float64) {
	return w.spawnAt(Edge(w.rng.Intn(4)))
}

func (w *world) spawnAt(edge Edge) (core.Vec2, float64) {
	off := w.cfg.Asteroids.SpawnOffset
	wi, hi := int(w.w), int(w.h)

	switch edge {
	case EdgeSouth:
		angle := w.randInt(-70, 70)
		x := w.randInt(wi/4, wi*3/4)
		return core.Vec2{X: float64(x), Y: w.h + off}, float64(angle)
	case EdgeNorth:
		angle := w.randInt(135, 225)
		x := w.randInt(wi/4, wi*3/4)
		return core.Vec2{X: float64(x), Y: -off}, float64(angle)
	case EdgeEast:
		angle := w.randInt(45, 135)
		y := w.randInt(hi/4, hi*3/4)
		return core.Vec2{X: w.w + off, Y: float64(y)}, float64(angle)
	default:
		angle := w.randInt(-135, -45)
		y := w.randInt(hi/4, hi*3/4)
		return core.Vec2{X: -off, Y: float64(y)}, float64(angle)
	}
}

// inField reports whether p lies in [0,W]x[0,H].
func (w *world) inField(p core.Vec2) bool {
	return p.X >= 0 && p.X <= w.w && p.Y >= 0 && p.Y <= w.h
}

// inMargin reports whether p lies within the playfield grown by m on every side.
func (w *world) inMargin(p core.Vec2, m float64) bool {
	return p.X >= -m && p.X <= w.w+m && p.Y >= -m && p.Y <= w.h+m
}
