package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

// Phase is the game's position in its play / game-over / high-score cycle.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseShipExploding
	PhasePaused
	PhaseGameOver
	PhaseHighscoreEntry
	PhaseShowingHighscores
	PhaseRestartPending
)

// String returns a readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseShipExploding:
		return "ship_exploding"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseHighscoreEntry:
		return "highscore_entry"
	case PhaseShowingHighscores:
		return "showing_highscores"
	case PhaseRestartPending:
		return "restart_pending"
	default:
		return "unknown"
	}
}

// Phase derives the current phase from the game flags.
func (g *Game) Phase() Phase {
	switch {
	case g.restart:
		return PhaseRestartPending
	case g.showHighscore:
		return PhaseShowingHighscores
	case g.getHighscore:
		return PhaseHighscoreEntry
	case g.paused:
		return PhasePaused
	case g.gameOver:
		return PhaseGameOver
	case g.exploding != nil:
		return PhaseShipExploding
	default:
		return PhasePlaying
	}
}

// Snapshot contains the observable game state for tests and replays.
// Entity data is flattened into float slices.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Score       int
	PrevScore   int
	Level       int
	Lives       int
	RotateSpeed float64
	Initials    string

	ShipX, ShipY   float64
	ShipVX, ShipVY float64
	ShipAngle      float64
	Thrusting      bool
	Teleports      int

	// Each asteroid is 5 values: X, Y, Angle, Speed, Size; InFlight ones only.
	AsteroidCount int
	AsteroidData  []float64

	// Each bullet is 3 values: X, Y, Angle; InFlight ones only.
	BulletCount int
	BulletData  []float64

	SaucerInFlight bool
	SaucerX        float64
	SaucerY        float64
	SaucerTimers   [4]int

	Highscores []highscore.Entry
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        uint64(g.tick), //#nosec G115 -- tick count is always positive
		Phase:       g.Phase(),
		Score:       g.score,
		PrevScore:   g.prevScore,
		Level:       g.level,
		Lives:       g.lives.Count,
		RotateSpeed: g.rotateSpeed,
		Initials:    g.initials,

		ShipX:     g.ship.Pos.X,
		ShipY:     g.ship.Pos.Y,
		ShipVX:    g.ship.Vel.X,
		ShipVY:    g.ship.Vel.Y,
		ShipAngle: g.ship.Angle,
		Thrusting: g.ship.Thrusting,
		Teleports: g.ship.TeleportCounter,

		SaucerInFlight: g.saucer.InFlight,
		SaucerX:        g.saucer.Pos.X,
		SaucerY:        g.saucer.Pos.Y,
		SaucerTimers: [4]int{
			g.saucer.NextAppearance,
			g.saucer.NextDisappear,
			g.saucer.NextChange,
			g.saucer.NextShot,
		},

		Highscores: g.Highscores(),
	}

	for _, a := range g.asteroids {
		if !a.InFlight {
			continue
		}
		snap.AsteroidCount++
		snap.AsteroidData = append(snap.AsteroidData, a.Pos.X, a.Pos.Y, a.Angle, a.Speed, float64(a.Size))
	}
	for _, b := range g.bullets {
		if !b.InFlight {
			continue
		}
		snap.BulletCount++
		snap.BulletData = append(snap.BulletData, b.Pos.X, b.Pos.Y, b.Angle)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		int(snap.Phase), snap.Score, snap.PrevScore, snap.Level, snap.Lives,
		snap.Teleports, snap.AsteroidCount, snap.BulletCount,
		snap.SaucerTimers[0], snap.SaucerTimers[1], snap.SaucerTimers[2], snap.SaucerTimers[3],
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{
		snap.RotateSpeed, snap.ShipX, snap.ShipY, snap.ShipVX, snap.ShipVY,
		snap.ShipAngle, snap.SaucerX, snap.SaucerY,
	} {
		h = h*31 + math.Float64bits(f)
	}
	for _, f := range snap.AsteroidData {
		h = h*31 + math.Float64bits(f)
	}
	for _, f := range snap.BulletData {
		h = h*31 + math.Float64bits(f)
	}
	if snap.SaucerInFlight {
		h = h*31 + 1
	}
	if snap.Thrusting {
		h = h*31 + 1
	}
	for _, r := range snap.Initials {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}
