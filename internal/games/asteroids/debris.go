package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// DebrisPiece is one particle of an explosion.
type DebrisPiece struct {
	Pos      core.Vec2
	Angle    float64
	Lifetime int
}

// Debris is the particle burst left by a destroyed asteroid or saucer.
type Debris struct {
	Pieces   []DebrisPiece
	InFlight bool
}

// newDebris spreads width/spacing pieces evenly around the circle with jitter.
func newDebris(w *world, pos core.Vec2, width float64) *Debris {
	cfg := w.cfg.Debris
	n := 1
	if cfg.PieceSpacing > 0 {
		n = max(int(width/cfg.PieceSpacing), 1)
	}

	d := &Debris{Pieces: make([]DebrisPiece, n), InFlight: true}
	step := 360.0 / float64(n)
	for i := range d.Pieces {
		d.Pieces[i] = DebrisPiece{
			Pos:      pos,
			Angle:    float64(i)*step + float64(w.randInt(-cfg.Jitter, cfg.Jitter)),
			Lifetime: w.randRange(cfg.Lifetime),
		}
	}
	return d
}

// Update drifts the live pieces. The group goes out of flight on the first
// tick that finds no live piece.
func (d *Debris) Update(w *world) {
	if !d.InFlight {
		return
	}
	speed := w.cfg.Debris.Speed
	alive := false
	for i := range d.Pieces {
		p := &d.Pieces[i]
		if p.Lifetime <= 0 {
			continue
		}
		alive = true
		p.Pos = p.Pos.Add(core.Heading(p.Angle).Scale(speed))
		p.Lifetime--
	}
	if !alive {
		d.InFlight = false
	}
}

// ShipDebris is one drifting hull segment of an exploding ship.
type ShipDebris struct {
	Pos      core.Vec2
	Angle    float64
	Length   int
	Lifetime int
	InFlight bool
}

// Update drifts the segment and retires it when its lifetime runs out.
func (d *ShipDebris) Update(w *world) {
	if !d.InFlight {
		return
	}
	d.Pos = d.Pos.Add(core.Heading(d.Angle).Scale(w.cfg.Debris.Speed))
	d.Lifetime--
	if d.Lifetime <= 0 {
		d.InFlight = false
	}
}

// Ends returns the segment's two endpoints.
func (d *ShipDebris) Ends() (core.Vec2, core.Vec2) {
	half := core.Heading(d.Angle + 90).Scale(float64(d.Length) / 2)
	return d.Pos.Add(half), d.Pos.Add(half.Scale(-1))
}

// ExplodingShip is the transient wreck of the player's ship. It copies the
// ship's position; the ship itself stays owned by the game.
type ExplodingShip struct {
	Pieces []ShipDebris
}

func newExplodingShip(w *world, pos core.Vec2) *ExplodingShip {
	cfg := w.cfg.Debris
	n := max(cfg.ShipPieces, 1)
	e := &ExplodingShip{Pieces: make([]ShipDebris, n)}
	step := 360.0 / float64(n)
	for i := range e.Pieces {
		e.Pieces[i] = ShipDebris{
			Pos:      pos,
			Angle:    float64(i)*step + float64(w.randInt(-cfg.Jitter, cfg.Jitter)),
			Length:   w.randRange(cfg.ShipPieceLength),
			Lifetime: w.randRange(cfg.Lifetime),
			InFlight: true,
		}
	}
	return e
}

// Update advances every segment.
func (e *ExplodingShip) Update(w *world) {
	for i := range e.Pieces {
		e.Pieces[i].Update(w)
	}
}

// Done reports whether every segment has expired.
func (e *ExplodingShip) Done() bool {
	for _, p := range e.Pieces {
		if p.InFlight {
			return false
		}
	}
	return true
}
