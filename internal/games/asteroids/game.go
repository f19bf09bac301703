// Package asteroids implements the asteroids simulation: a ship that
// shoots and dodges drifting asteroids and a roaming saucer, with lives,
// waves and a top-10 high-score table. The game is pure and seeded; the
// platform layer feeds it key events, calls Update once per tick and
// Render once per frame.
package asteroids

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

// Game holds the complete mutable state of one asteroids session.
type Game struct {
	cfg        config.AsteroidsConfig
	runtime    core.RuntimeConfig
	world      *world
	difficulty *config.DifficultyManager
	log        *log.Logger
	store      highscore.Store

	ship      Ship
	bullets   []Bullet
	asteroids []*Asteroid
	saucer    Saucer
	lives     Lives
	exploding *ExplodingShip

	level       int
	score       int
	prevScore   int
	rotateSpeed float64
	held        map[core.Key]bool
	tick        int

	gameOver      bool
	getHighscore  bool
	showHighscore bool
	restart       bool
	paused        bool
	initials      string
	lastInitials  string
	lastRank      int

	highscores []highscore.Entry
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithStore sets where the high-score table is loaded from and saved to.
// Without a store the table lives in memory only.
func WithStore(s highscore.Store) Option {
	return func(g *Game) {
		g.store = s
	}
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.AsteroidsConfig, opts ...Option) *Game {
	g := &Game{
		cfg: cfg,
		log: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Config returns the active configuration.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Reset seeds the RNG, loads the high-score table and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = newWorld(&g.cfg, runtime.Seed)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.world.shotInterval = func(base int) int {
		return g.difficulty.ShotInterval(base, g.level, g.score)
	}
	g.loadHighscores()
	g.newGame()
}

// newGame reinitializes everything except the high-score table.
func (g *Game) newGame() {
	g.level = 0
	g.score = 0
	g.prevScore = 0
	g.rotateSpeed = 0
	g.held = make(map[core.Key]bool)
	g.tick = 0

	g.gameOver = false
	g.getHighscore = false
	g.showHighscore = false
	g.restart = false
	g.paused = false
	g.initials = ""
	g.lastRank = -1

	g.ship = newShip(g.world)
	g.bullets = make([]Bullet, max(g.cfg.Ship.BulletPool, 0))
	g.saucer = newSaucer(g.world)
	g.lives = Lives{Count: g.cfg.Gameplay.Lives, Slots: g.cfg.Gameplay.MaxIcons}
	g.exploding = nil
	g.initAsteroids()
}

func (g *Game) loadHighscores() {
	g.highscores = highscore.Blank()
	g.refreshHighscores()
}

// refreshHighscores re-reads the store, keeping the current table if that
// fails. Stores can be shared between concurrent sessions.
func (g *Game) refreshHighscores() {
	if g.store == nil {
		return
	}
	entries, err := g.store.Load()
	if err != nil {
		g.log.Warn("cannot load high scores, keeping the current table", "err", err)
		return
	}
	g.highscores = highscore.Normalize(entries)
}

func (g *Game) saveHighscores() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.highscores); err != nil {
		g.log.Warn("cannot save high scores", "err", err)
		return
	}
	g.log.Debug("high scores saved", "rank", g.lastRank+1)
}

// waveSize returns the asteroid count and base speed for a level.
func (g *Game) waveSize(level int) (int, float64) {
	ac := g.cfg.Asteroids
	count, speed := ac.DefaultCount, ac.DefaultSpeed
	if level >= 0 && level < len(ac.WaveCounts) {
		count = ac.WaveCounts[level]
	}
	if level >= 0 && level < len(ac.WaveSpeeds) {
		speed = ac.WaveSpeeds[level]
	}
	return count, speed
}

// initAsteroids creates the wave for the current level. New asteroids start
// far outside the field so their first update moves them to an edge.
func (g *Game) initAsteroids() {
	count, speed := g.waveSize(g.level)
	speed = g.difficulty.AsteroidSpeed(speed, g.level, g.score)

	off := g.cfg.Asteroids.Margin + g.cfg.Asteroids.SpawnOffset
	start := core.Vec2{X: -off, Y: -off}

	g.asteroids = make([]*Asteroid, 0, count*4)
	for range count {
		g.asteroids = append(g.asteroids, newAsteroid(g.world, start, speed, SizeBig))
	}
}

// levelUpdate starts the next wave once no asteroid is in flight.
func (g *Game) levelUpdate() {
	for _, a := range g.asteroids {
		if a.InFlight {
			return
		}
	}
	g.level++
	g.initAsteroids()
	g.log.Debug("level up", "level", g.level, "asteroids", len(g.asteroids))
}

// scoreUpdate awards one life per extra-life threshold crossed since the
// previous call.
func (g *Game) scoreUpdate() {
	if t := g.cfg.Scoring.ExtraLife; t > 0 {
		if gained := g.score/t - g.prevScore/t; gained > 0 {
			g.lives.Count += gained
			g.log.Debug("extra life", "lives", g.lives.Count, "score", g.score)
		}
	}
	g.prevScore = g.score
}

// Update advances the game by one tick.
func (g *Game) Update() {
	if g.restart {
		g.newGame()
		return
	}
	if g.paused {
		return
	}
	g.tick++

	if g.controllable() {
		g.steer()
	}

	if !g.gameOver {
		g.bulletsHitAsteroids()
		g.bulletsHitSaucer()
		g.scoreUpdate()
		g.resolveShipHits()
	}

	if g.exploding != nil && g.exploding.Done() {
		g.exploding = nil
		if g.gameOver {
			g.finishGame()
		} else {
			g.ship.Respawn(g.world)
		}
	}

	for i := range g.bullets {
		g.bullets[i].Update(g.world)
	}
	for _, a := range g.asteroids {
		a.Update(g.world)
	}
	if g.exploding != nil {
		g.exploding.Update(g.world)
	} else if !g.gameOver {
		g.ship.Update(g.world)
	}
	g.saucer.Update(g.world)

	g.pruneAsteroids()
	g.levelUpdate()
}

// controllable reports whether the player currently flies the ship.
func (g *Game) controllable() bool {
	return !g.gameOver && g.exploding == nil
}

// steer applies held rotate and thrust keys for one tick.
func (g *Game) steer() {
	sc := g.cfg.Ship
	if g.held[core.KeyW] {
		g.ship.Thrust(sc.Thrust, sc.MaxSpeed)
	}
	// The ship turns by the speed both before and after this tick's damping.
	g.ship.Angle += g.rotateSpeed
	if g.held[core.KeyA] {
		g.rotateSpeed += sc.RotateStep
	} else if g.held[core.KeyD] {
		g.rotateSpeed -= sc.RotateStep
	}
	g.rotateSpeed = dampRotation(g.rotateSpeed, sc.RotateDamping, sc.MaxRotateSpeed)
	g.ship.Angle += g.rotateSpeed
}

// teleport jumps the ship to a random spot. Landing on an asteroid retries
// until the counter is exhausted, after which the ship lands anyway and is
// destroyed.
func (g *Game) teleport() {
	w := g.world
	for {
		g.ship.Pos = core.Vec2{
			X: float64(w.rng.Intn(max(int(w.w), 1))),
			Y: float64(w.rng.Intn(max(int(w.h), 1))),
		}
		if !g.asteroidHitsShip() {
			break
		}
		if g.ship.TeleportCounter < 0 {
			g.ship.TeleportCounter = w.randRange(g.cfg.Ship.TeleportBudget)
			g.loseShip()
			break
		}
		g.ship.TeleportCounter--
	}
	g.ship.TeleportCounter--
}

// finishGame runs once the final explosion has played out.
func (g *Game) finishGame() {
	g.refreshHighscores()
	if highscore.Qualifies(g.highscores, g.score) {
		g.getHighscore = true
		g.initials = ""
		return
	}
	g.lastInitials = ""
	g.lastRank = -1
	g.showHighscore = true
}

// commitInitials enters the finished game into the table and persists it.
func (g *Game) commitInitials() {
	g.refreshHighscores()
	g.highscores, g.lastRank = highscore.Insert(g.highscores, highscore.Entry{
		Initials: g.initials,
		Score:    g.score,
	})
	g.lastInitials = g.initials
	g.saveHighscores()
	g.getHighscore = false
	g.showHighscore = true
}

// State returns the summary the platform layer needs.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lives:    g.lives.Count,
		GameOver: g.gameOver,
		Paused:   g.paused,
		TextMode: g.getHighscore,
	}
}

// Highscores returns a copy of the current table.
func (g *Game) Highscores() []highscore.Entry {
	out := make([]highscore.Entry, len(g.highscores))
	copy(out, g.highscores)
	return out
}

// LastEntry returns the initials and table rank (0-based, -1 when not
// placed) of the most recently finished game.
func (g *Game) LastEntry() (string, int) {
	return g.lastInitials, g.lastRank
}
