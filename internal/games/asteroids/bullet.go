package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Bullet is a pooled projectile. Bullets are never allocated during play;
// firing reuses the first one not in flight.
type Bullet struct {
	Pos      core.Vec2
	Angle    float64
	Speed    float64
	InFlight bool
}

// Fire launches the bullet from pos.
func (b *Bullet) Fire(pos core.Vec2, angle, speed float64) {
	b.Pos = pos
	b.Angle = angle
	b.Speed = speed
	b.InFlight = true
}

// Update advances an in-flight bullet and retires it once it leaves the field.
func (b *Bullet) Update(w *world) {
	if !b.InFlight {
		return
	}
	b.Pos = b.Pos.Add(core.Heading(b.Angle).Scale(b.Speed))
	if !w.inField(b.Pos) {
		b.InFlight = false
	}
}

// fireFromPool launches the first idle bullet. It reports false when the
// whole pool is already in flight.
func fireFromPool(pool []Bullet, pos core.Vec2, angle, speed float64) bool {
	for i := range pool {
		if !pool[i].InFlight {
			pool[i].Fire(pos, angle, speed)
			return true
		}
	}
	return false
}
