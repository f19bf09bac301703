package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Ship is the player's ship. Velocity is in playfield units per tick.
type Ship struct {
	Pos             core.Vec2
	Vel             core.Vec2
	Angle           float64
	W, H            float64
	Thrusting       bool
	TeleportCounter int
}

func newShip(w *world) Ship {
	s := Ship{
		W:               w.cfg.Ship.Width,
		H:               w.cfg.Ship.Height,
		TeleportCounter: w.randRange(w.cfg.Ship.TeleportBudget),
	}
	s.Respawn(w)
	return s
}

// Respawn puts the ship at the centre of the field, at rest, pointing up.
func (s *Ship) Respawn(w *world) {
	s.Pos = core.Vec2{X: float64(int(w.w) / 2), Y: float64(int(w.h) / 2)}
	s.Vel = core.Vec2{}
	s.Angle = 0
}

// Center implements core.Collider.
func (s *Ship) Center() core.Vec2 { return s.Pos }

// Bounds implements core.Collider.
func (s *Ship) Bounds() core.Box { return core.BoxAt(s.Pos, s.W, s.H) }

// Thrust accelerates along the heading unless that would reach the speed cap.
func (s *Ship) Thrust(accel, maxSpeed float64) {
	next := s.Vel.Add(core.Heading(s.Angle).Scale(accel))
	if next.Length() < maxSpeed {
		s.Vel = next
	}
	s.Thrusting = true
}

// ThrustOff clears the flame.
func (s *Ship) ThrustOff() {
	s.Thrusting = false
}

// Update integrates velocity and wraps once the ship has fully left an edge.
func (s *Ship) Update(w *world) {
	s.Pos = s.Pos.Add(s.Vel)
	s.Pos = core.WrapBox(s.Bounds(), w.w, w.h).Center()
}

// dampRotation slows a rotation speed toward zero and clamps it.
func dampRotation(speed, damping, limit float64) float64 {
	switch {
	case speed > 0:
		if speed <= damping {
			speed = 0
		} else {
			speed -= damping
		}
	case speed < 0:
		if speed > -damping {
			speed = 0
		} else {
			speed += damping
		}
	}
	return core.ClampF(speed, -limit, limit)
}
