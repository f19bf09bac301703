package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Size is an asteroid size class.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeBig
)

// String returns the config key for the size.
func (s Size) String() string {
	switch s {
	case SizeBig:
		return config.SizeBig
	case SizeMedium:
		return config.SizeMedium
	default:
		return config.SizeSmall
	}
}

// Smaller returns the size children split into, and false for small.
func (s Size) Smaller() (Size, bool) {
	switch s {
	case SizeBig:
		return SizeMedium, true
	case SizeMedium:
		return SizeSmall, true
	default:
		return SizeSmall, false
	}
}

// Asteroid drifts in a straight line and respawns at an edge when it
// strays too far. Only combat destroys it.
type Asteroid struct {
	Pos      core.Vec2
	Angle    float64
	Speed    float64
	Size     Size
	W, H     float64
	InFlight bool
	Debris   *Debris
}

func newAsteroid(w *world, pos core.Vec2, speed float64, size Size) *Asteroid {
	dims := w.cfg.Asteroids.Sizes[size.String()]
	return &Asteroid{
		Pos:      pos,
		Angle:    w.randAngle(),
		Speed:    speed,
		Size:     size,
		W:        dims.Width,
		H:        dims.Height,
		InFlight: true,
	}
}

// Center implements core.Collider.
func (a *Asteroid) Center() core.Vec2 { return a.Pos }

// Bounds implements core.Collider.
func (a *Asteroid) Bounds() core.Box { return core.BoxAt(a.Pos, a.W, a.H) }

// Update moves the asteroid and its debris.
func (a *Asteroid) Update(w *world) {
	if a.InFlight {
		a.Pos = a.Pos.Add(core.Heading(a.Angle).Scale(a.Speed))
	}
	if !w.inMargin(a.Pos, w.cfg.Asteroids.Margin) {
		a.Pos, a.Angle = w.nearEdges()
	}
	if a.Debris != nil {
		a.Debris.Update(w)
	}
}

// Explode starts the destruction debris at the asteroid's position.
func (a *Asteroid) Explode(w *world) {
	a.Debris = newDebris(w, a.Pos, a.W)
}

// Gone reports whether the asteroid is destroyed and has nothing left to animate.
func (a *Asteroid) Gone() bool {
	return !a.InFlight && (a.Debris == nil || !a.Debris.InFlight)
}
