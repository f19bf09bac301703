package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Saucer is the hostile UFO. Its behaviour runs on four countdown timers
// that are resampled from fixed ranges when they expire.
type Saucer struct {
	Pos      core.Vec2
	Angle    float64
	W, H     float64
	InFlight bool

	NextAppearance int
	NextDisappear  int
	NextChange     int
	NextShot       int

	Bullet Bullet
	Debris *Debris
}

func newSaucer(w *world) Saucer {
	return Saucer{
		W:              w.cfg.Saucer.Width,
		H:              w.cfg.Saucer.Height,
		NextAppearance: w.randRange(w.cfg.Saucer.Appearance),
		NextDisappear:  -1,
	}
}

// Center implements core.Collider.
func (s *Saucer) Center() core.Vec2 { return s.Pos }

// Bounds implements core.Collider.
func (s *Saucer) Bounds() core.Box { return core.BoxAt(s.Pos, s.W, s.H) }

// Update ticks the timers, moves the saucer and advances its bullet and debris.
func (s *Saucer) Update(w *world) {
	cfg := w.cfg.Saucer

	s.NextAppearance--
	s.NextDisappear--

	if !s.InFlight && s.NextAppearance <= 0 {
		s.InFlight = true
		s.Pos, s.Angle = w.nearEdges()
		s.NextDisappear = w.randRange(cfg.Disappear)
		s.NextChange = w.randRange(cfg.Change)
		s.NextShot = w.shotInterval(w.randRange(cfg.Shot))
	}

	if s.InFlight && s.NextDisappear <= 0 {
		s.InFlight = false
		s.NextAppearance = w.randRange(cfg.Appearance)
	}

	if s.InFlight {
		s.NextChange--
		s.NextShot--

		if s.NextShot <= 0 {
			s.NextShot = w.shotInterval(w.randRange(cfg.Shot))
			s.Bullet.Fire(s.Pos, w.randAngle(), cfg.BulletSpeed)
		}
		if s.NextChange <= 0 {
			s.NextChange = w.randRange(cfg.Change)
			s.Angle = w.randAngle()
		}

		s.Pos = s.Pos.Add(core.Heading(s.Angle).Scale(cfg.Speed))
		s.Pos = core.WrapBox(s.Bounds(), w.w, w.h).Center()
	}

	if s.Debris != nil {
		s.Debris.Update(w)
	}
	s.Bullet.Update(w)
}

// Explode takes the saucer out of play and schedules its next appearance.
func (s *Saucer) Explode(w *world) {
	s.InFlight = false
	s.NextAppearance = w.randRange(w.cfg.Saucer.Appearance)
	s.NextDisappear = -1
	s.Debris = newDebris(w, s.Pos, s.W)
}
