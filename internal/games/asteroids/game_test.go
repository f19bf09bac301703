package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

const eps = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64, opts ...Option) *Game {
	t.Helper()
	g := New(config.DefaultAsteroidsConfig(), opts...)
	g.Reset(testRuntime(seed))
	return g
}

// quiet replaces the wave with one parked asteroid in a corner and keeps
// the saucer away, so the ship can be tested in isolation.
func quiet(g *Game) {
	g.asteroids = []*Asteroid{parked(core.Vec2{X: 100, Y: 100}, SizeSmall)}
	g.saucer.NextAppearance = 1 << 30
}

func parked(pos core.Vec2, size Size) *Asteroid {
	dims := config.DefaultAsteroidsConfig().Asteroids.Sizes[size.String()]
	return &Asteroid{Pos: pos, Size: size, W: dims.Width, H: dims.Height, InFlight: true}
}

// memStore is an in-memory highscore.Store.
type memStore struct {
	entries []highscore.Entry
	saves   int
}

func (m *memStore) Load() ([]highscore.Entry, error) { return m.entries, nil }

func (m *memStore) Save(e []highscore.Entry) error {
	m.entries = append([]highscore.Entry(nil), e...)
	m.saves++
	return nil
}

func fullTable() []highscore.Entry {
	var out []highscore.Entry
	for i := 10; i >= 1; i-- {
		out = append(out, highscore.Entry{Initials: string(rune('A' + i - 1)), Score: i * 100})
	}
	return out
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)

	if g.Phase() != PhasePlaying {
		t.Errorf("Reset should start playing, got %s", g.Phase())
	}
	if g.lives.Count != 4 {
		t.Errorf("Expected 4 lives, got %d", g.lives.Count)
	}
	if len(g.bullets) != 10 {
		t.Errorf("Expected a pool of 10 bullets, got %d", len(g.bullets))
	}
	if len(g.asteroids) != 3 {
		t.Errorf("Expected 3 asteroids in the first wave, got %d", len(g.asteroids))
	}
	for _, a := range g.asteroids {
		if a.Pos != (core.Vec2{X: -300, Y: -300}) || a.Size != SizeBig {
			t.Errorf("Fresh asteroid should be big and parked at (-300,-300), got %+v", a)
		}
	}
	if g.ship.Pos != (core.Vec2{X: 1250, Y: 1000}) {
		t.Errorf("Ship should start at the centre, got %+v", g.ship.Pos)
	}
	if len(g.Highscores()) != highscore.Size {
		t.Errorf("Expected a blank table of %d", highscore.Size)
	}

	// First update moves the wave to the edges.
	g.Update()
	for _, a := range g.asteroids {
		if a.Pos.X == -300 && a.Pos.Y == -300 {
			t.Error("Asteroid was not relocated on its first update")
		}
	}
}

func TestBulletRisesAndRetires(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(g)

	g.KeyDown(core.KeySpace, ' ')
	g.KeyUp(core.KeySpace)

	b := &g.bullets[0]
	if !b.InFlight {
		t.Fatal("Space should fire the first bullet")
	}
	startY := b.Pos.Y

	for n := 1; n < 200; n++ {
		g.Update()
		expected := startY - float64(n)*12
		if expected < 0 {
			if b.InFlight {
				t.Fatalf("tick %d: bullet should retire at y=%v", n, b.Pos.Y)
			}
			return
		}
		if !b.InFlight {
			t.Fatalf("tick %d: bullet retired early at y=%v", n, b.Pos.Y)
		}
		if !near(b.Pos.Y, expected) || !near(b.Pos.X, 1250) {
			t.Fatalf("tick %d: bullet at %+v, expected (1250, %v)", n, b.Pos, expected)
		}
	}
	t.Fatal("bullet never left the field")
}

func TestBulletsStayInBounds(t *testing.T) {
	g := newTestGame(t, 7)

	for tick := 0; tick < 3000; tick++ {
		if tick%5 == 0 {
			g.KeyDown(core.KeySpace, ' ')
		}
		if tick%40 == 0 {
			g.KeyDown(core.KeyA, 'a')
		}
		g.Update()

		all := append([]Bullet{g.saucer.Bullet}, g.bullets...)
		for _, b := range all {
			if b.InFlight && !g.world.inField(b.Pos) {
				t.Fatalf("tick %d: in-flight bullet outside field at %+v", tick, b.Pos)
			}
		}
	}
}

func TestFirePoolExhausted(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(g)

	for range 11 {
		g.KeyDown(core.KeySpace, ' ')
	}

	inFlight := 0
	for _, b := range g.bullets {
		if b.InFlight {
			inFlight++
		}
	}
	if inFlight != 10 {
		t.Errorf("Expected 10 bullets in flight, got %d", inFlight)
	}
}

func TestAsteroidSplitting(t *testing.T) {
	tests := []struct {
		size     Size
		children int
		child    Size
		score    int
	}{
		{SizeBig, 2, SizeMedium, 20},
		{SizeMedium, 2, SizeSmall, 50},
		{SizeSmall, 0, SizeSmall, 100},
	}

	for _, tc := range tests {
		t.Run(tc.size.String(), func(t *testing.T) {
			g := newTestGame(t, 3)
			parent := parked(core.Vec2{X: 700, Y: 600}, tc.size)
			parent.Speed = 2.5
			g.asteroids = []*Asteroid{parent}
			g.bullets[0].Fire(core.Vec2{X: 701, Y: 601}, 0, 12)

			g.bulletsHitAsteroids()

			if g.bullets[0].InFlight {
				t.Error("Bullet should be consumed by the hit")
			}
			if parent.InFlight {
				t.Error("Parent should be destroyed")
			}
			if g.score != tc.score {
				t.Errorf("Score = %d, expected %d", g.score, tc.score)
			}
			if got := len(g.asteroids) - 1; got != tc.children {
				t.Fatalf("Got %d children, expected %d", got, tc.children)
			}
			for _, c := range g.asteroids[1:] {
				if c.Size != tc.child || !c.InFlight {
					t.Errorf("Child = %s in flight %v, expected in-flight %s", c.Size, c.InFlight, tc.child)
				}
				if c.Pos != parent.Pos || c.Speed != parent.Speed {
					t.Errorf("Child should inherit position and speed, got %+v", c)
				}
			}
			if tc.children == 0 && parent.Debris == nil {
				t.Error("Small asteroid should leave debris")
			}
			if tc.children > 0 && parent.Debris != nil {
				t.Error("Splitting asteroid should not leave debris")
			}
		})
	}
}

func TestBulletHitsOnlyOneAsteroid(t *testing.T) {
	g := newTestGame(t, 3)
	a1 := parked(core.Vec2{X: 700, Y: 600}, SizeSmall)
	a2 := parked(core.Vec2{X: 700, Y: 600}, SizeSmall)
	g.asteroids = []*Asteroid{a1, a2}
	g.bullets[0].Fire(core.Vec2{X: 700, Y: 600}, 0, 12)

	g.bulletsHitAsteroids()

	if a1.InFlight || !a2.InFlight {
		t.Errorf("Only the first asteroid should be hit: a1 %v, a2 %v", a1.InFlight, a2.InFlight)
	}
}

func TestBulletHitsSaucer(t *testing.T) {
	g := newTestGame(t, 5)
	g.saucer.InFlight = true
	g.saucer.Pos = core.Vec2{X: 900, Y: 400}
	g.bullets[2].Fire(core.Vec2{X: 910, Y: 410}, 90, 12)

	g.bulletsHitSaucer()

	if g.saucer.InFlight || g.bullets[2].InFlight {
		t.Error("Saucer and bullet should both be deactivated")
	}
	if g.score != 200 {
		t.Errorf("Score = %d, expected 200", g.score)
	}
	if g.saucer.Debris == nil {
		t.Error("Saucer should leave debris")
	}
	if g.saucer.NextDisappear != -1 {
		t.Errorf("NextDisappear = %d, expected -1", g.saucer.NextDisappear)
	}
	if n := g.saucer.NextAppearance; n < 100 || n >= 200 {
		t.Errorf("NextAppearance = %d, expected [100,200)", n)
	}
}

func TestShipHitBySaucerBullet(t *testing.T) {
	g := newTestGame(t, 5)
	quiet(g)
	g.saucer.Bullet.Fire(g.ship.Pos, 0, 12)

	g.resolveShipHits()

	if g.exploding == nil {
		t.Fatal("Saucer bullet should destroy the ship")
	}
	if g.lives.Count != 3 {
		t.Errorf("Lives = %d, expected 3", g.lives.Count)
	}
	if g.saucer.Bullet.InFlight {
		t.Error("Saucer bullet should be retired after the hit")
	}
}

func TestShipHitBySaucerBody(t *testing.T) {
	g := newTestGame(t, 5)
	quiet(g)
	g.saucer.InFlight = true
	g.saucer.Pos = g.ship.Pos.Add(core.Vec2{X: 50})

	g.resolveShipHits()

	if g.exploding == nil || g.lives.Count != 3 {
		t.Errorf("Saucer overlap should cost a life, lives %d", g.lives.Count)
	}
}

func TestExtraLife(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		gained   int
	}{
		{"below threshold", 100, 9990, 0},
		{"one crossing", 9990, 10001, 1},
		{"exact threshold", 9900, 10000, 1},
		{"two crossings in one tick", 9990, 20010, 2},
		{"already past", 10001, 10500, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.score = tc.from
			g.prevScore = tc.from
			before := g.lives.Count

			g.score = tc.to
			g.scoreUpdate()

			if got := g.lives.Count - before; got != tc.gained {
				t.Errorf("Gained %d lives, expected %d", got, tc.gained)
			}
			if g.prevScore != tc.to {
				t.Errorf("prevScore = %d, expected %d", g.prevScore, tc.to)
			}

			g.scoreUpdate()
			if got := g.lives.Count - before; got != tc.gained {
				t.Error("A second update without score change should not award lives")
			}
		})
	}
}

func TestLevelUpBatchSizes(t *testing.T) {
	g := newTestGame(t, 11)

	expected := []struct {
		count int
		speed float64
	}{
		{4, 1.5},
		{5, 2.0},
		{7, 3.0},
		{7, 3.0},
	}

	// Level up does not fire while any asteroid is in flight.
	g.asteroids[0].InFlight = false
	g.levelUpdate()
	if g.level != 0 {
		t.Fatalf("level changed with asteroids in flight: %d", g.level)
	}

	for i, want := range expected {
		for _, a := range g.asteroids {
			a.InFlight = false
		}
		g.levelUpdate()

		if g.level != i+1 {
			t.Errorf("level = %d, expected %d", g.level, i+1)
		}
		if len(g.asteroids) != want.count {
			t.Errorf("level %d: %d asteroids, expected %d", g.level, len(g.asteroids), want.count)
		}
		for _, a := range g.asteroids {
			if a.Speed != want.speed || a.Size != SizeBig || !a.InFlight {
				t.Errorf("level %d: asteroid %+v, expected big at speed %v", g.level, a, want.speed)
			}
		}
	}
}

func TestLevelUpWithDifficulty(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	config.ApplyAsteroidsPreset(&cfg, config.DifficultyHard)
	g := New(cfg)
	g.Reset(testRuntime(2))

	for _, a := range g.asteroids {
		if a.Speed <= 1.0 {
			t.Errorf("Hard difficulty should speed up the first wave, got %v", a.Speed)
		}
	}
	if g.lives.Count != 3 {
		t.Errorf("Hard difficulty lives = %d, expected 3", g.lives.Count)
	}
}

func TestRotation(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(g)

	g.KeyDown(core.KeyA, 'a')
	if !near(g.rotateSpeed, 0.6) {
		t.Fatalf("Key-down A should add 0.6, got %v", g.rotateSpeed)
	}

	g.Update() // turn 0.6; held: 1.2, damped to 0.7; turn 0.7
	if !near(g.rotateSpeed, 0.7) || !near(g.ship.Angle, 1.3) {
		t.Errorf("After one held tick: speed %v angle %v, expected 0.7 / 1.3", g.rotateSpeed, g.ship.Angle)
	}

	g.KeyUp(core.KeyA)
	g.Update() // turn 0.7; damped to 0.2; turn 0.2
	if !near(g.ship.Angle, 2.2) {
		t.Errorf("Angle = %v, expected 2.2", g.ship.Angle)
	}
	g.Update() // turn 0.2; snaps to 0
	if g.rotateSpeed != 0 {
		t.Errorf("Rotation should settle at 0, got %v", g.rotateSpeed)
	}
	if !near(g.ship.Angle, 2.4) {
		t.Errorf("Angle = %v, expected 2.4", g.ship.Angle)
	}

	g.KeyDown(core.KeyD, 'd')
	for range 100 {
		g.Update()
		if g.rotateSpeed < -5 {
			t.Fatalf("Rotation speed exceeded the clamp: %v", g.rotateSpeed)
		}
	}
	if !near(g.rotateSpeed, -5) {
		t.Errorf("Held D should reach -5, got %v", g.rotateSpeed)
	}
}

func TestDampRotation(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 0},
		{-0.4, 0},
		{1.0, 0.5},
		{-1.0, -0.5},
		{9, 5},
		{-9, -5},
	}
	for _, tc := range tests {
		if got := dampRotation(tc.in, 0.5, 5); !near(got, tc.expected) {
			t.Errorf("dampRotation(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestThrustSpeedCap(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(g)

	g.KeyDown(core.KeyW, 'w')
	if !g.ship.Thrusting {
		t.Error("W should light the flame")
	}
	for range 300 {
		g.Update()
		if g.ship.Vel.Length() >= 8 {
			t.Fatalf("Ship speed %v reached the cap", g.ship.Vel.Length())
		}
	}
	if g.ship.Vel.Length() < 7 {
		t.Errorf("Ship should approach the cap, speed %v", g.ship.Vel.Length())
	}
	if g.ship.Vel.Y >= 0 {
		t.Errorf("Thrust at angle 0 should move up, velocity %+v", g.ship.Vel)
	}

	g.KeyUp(core.KeyW)
	if g.ship.Thrusting {
		t.Error("Releasing W should clear the flame")
	}
}

func TestShipWrap(t *testing.T) {
	tests := []struct {
		name     string
		pos, vel core.Vec2
		expected core.Vec2
	}{
		{"still overlapping right", core.Vec2{X: 2520, Y: 500}, core.Vec2{X: 2}, core.Vec2{X: 2522, Y: 500}},
		{"fully off right", core.Vec2{X: 2529, Y: 500}, core.Vec2{X: 2}, core.Vec2{X: 30, Y: 500}},
		{"fully off left", core.Vec2{X: -29, Y: 500}, core.Vec2{X: -2}, core.Vec2{X: 2470, Y: 500}},
		{"fully off top", core.Vec2{X: 500, Y: -39}, core.Vec2{Y: -2}, core.Vec2{X: 500, Y: 1960}},
		{"fully off bottom", core.Vec2{X: 500, Y: 2039}, core.Vec2{Y: 2}, core.Vec2{X: 500, Y: 40}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			g.ship.Pos = tc.pos
			g.ship.Vel = tc.vel
			g.ship.Update(g.world)
			if !near(g.ship.Pos.X, tc.expected.X) || !near(g.ship.Pos.Y, tc.expected.Y) {
				t.Errorf("Ship at %+v, expected %+v", g.ship.Pos, tc.expected)
			}
		})
	}
}

func TestFourLossesEndGame(t *testing.T) {
	g := newTestGame(t, 9)
	quiet(g)

	for loss := 1; loss <= 4; loss++ {
		killer := parked(g.ship.Pos, SizeSmall)
		g.asteroids = append(g.asteroids, killer)
		g.Update()

		if g.exploding == nil {
			t.Fatalf("loss %d: expected an explosion", loss)
		}
		if g.lives.Count != 4-loss {
			t.Fatalf("loss %d: lives = %d, expected %d", loss, g.lives.Count, 4-loss)
		}

		// Further overlaps while exploding cost nothing.
		for range 5 {
			g.Update()
		}
		if g.lives.Count != 4-loss {
			t.Fatalf("loss %d: lives changed during explosion: %d", loss, g.lives.Count)
		}

		if loss < 4 {
			if g.State().GameOver {
				t.Fatalf("loss %d: game over too early", loss)
			}
			quiet(g)
			for i := 0; g.exploding != nil && i < 400; i++ {
				g.Update()
			}
			if g.exploding != nil {
				t.Fatal("explosion never finished")
			}
			if g.ship.Pos != (core.Vec2{X: 1250, Y: 1000}) || g.ship.Vel != (core.Vec2{}) || g.ship.Angle != 0 {
				t.Errorf("ship should respawn at rest in the centre, got %+v", g.ship)
			}
		}
	}

	if !g.State().GameOver {
		t.Fatal("fourth loss should end the game")
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Phase = %s, expected game_over while the wreck animates", g.Phase())
	}

	for i := 0; g.exploding != nil && i < 400; i++ {
		g.Update()
	}
	if g.Phase() != PhaseHighscoreEntry {
		t.Errorf("Phase = %s, expected highscore_entry for a score on a blank table", g.Phase())
	}
}

func TestInitialsEntry(t *testing.T) {
	store := &memStore{entries: fullTable()}
	g := newTestGame(t, 4, WithStore(store))
	g.score = 550
	g.gameOver = true
	g.finishGame()

	if g.Phase() != PhaseHighscoreEntry {
		t.Fatalf("Phase = %s, expected highscore_entry", g.Phase())
	}
	if !g.State().TextMode {
		t.Error("State should report text mode during initials entry")
	}

	g.KeyDown(core.KeyChar, 'x')
	g.KeyDown(core.KeyA, 'a')
	g.KeyDown(core.KeyChar, 'z') // over the limit
	if g.initials != "XA" {
		t.Errorf("initials = %q, expected XA", g.initials)
	}
	g.KeyDown(core.KeyBackspace, 0)
	g.KeyDown(core.KeyChar, 'q')
	g.KeyDown(core.KeySpace, ' ') // spaces are ignored
	if g.initials != "XQ" {
		t.Errorf("initials = %q, expected XQ", g.initials)
	}

	g.KeyDown(core.KeyReturn, '\r')

	if g.Phase() != PhaseShowingHighscores {
		t.Fatalf("Phase = %s, expected showing_highscores", g.Phase())
	}
	table := g.Highscores()
	if len(table) != highscore.Size {
		t.Fatalf("table has %d entries", len(table))
	}
	count := 0
	for _, e := range table {
		if e == (highscore.Entry{Initials: "XQ", Score: 550}) {
			count++
		}
	}
	if count != 1 {
		t.Errorf("new entry appears %d times, expected once", count)
	}
	if table[highscore.Size-1].Score != 200 {
		t.Errorf("lowest score should now be 200, got %d", table[highscore.Size-1].Score)
	}
	if store.saves != 1 || len(store.entries) != highscore.Size {
		t.Errorf("store saved %d times with %d entries", store.saves, len(store.entries))
	}
	if initials, rank := g.LastEntry(); initials != "XQ" || rank != 5 {
		t.Errorf("LastEntry() = %q, %d; expected XQ, 5", initials, rank)
	}
}

func TestScoreBelowTableSkipsEntry(t *testing.T) {
	g := newTestGame(t, 4, WithStore(&memStore{entries: fullTable()}))
	g.score = 50
	g.gameOver = true
	g.finishGame()

	if g.Phase() != PhaseShowingHighscores {
		t.Errorf("Phase = %s, expected showing_highscores", g.Phase())
	}
	if _, rank := g.LastEntry(); rank != -1 {
		t.Errorf("rank = %d, expected -1", rank)
	}
}

func TestFinishUsesLatestTable(t *testing.T) {
	store := &memStore{}
	g := newTestGame(t, 4, WithStore(store))

	// Another session fills the table while this game is running.
	store.entries = fullTable()
	g.score = 50
	g.gameOver = true
	g.finishGame()

	if g.Phase() != PhaseShowingHighscores {
		t.Errorf("Phase = %s, expected showing_highscores against the stored table", g.Phase())
	}
	if best := g.Highscores()[0].Score; best != 1000 {
		t.Errorf("top score = %d, expected the stored 1000", best)
	}
	if store.saves != 0 {
		t.Errorf("store saved %d times, expected none", store.saves)
	}
}

func TestRestart(t *testing.T) {
	store := &memStore{entries: fullTable()}
	g := newTestGame(t, 4, WithStore(store))
	g.score = 5000
	g.level = 3
	g.gameOver = true
	g.showHighscore = true

	g.KeyDown(core.KeyChar, 'k')
	if g.Phase() != PhaseRestartPending {
		t.Fatalf("Phase = %s, expected restart_pending", g.Phase())
	}

	screen := core.NewScreen(80, 24)
	screen.DrawTextColor(0, 5, "previous frame", core.ColorDefault)
	g.Render(screen)
	if screen.Row(5)[:14] != "previous frame" {
		t.Error("Render should leave the frame untouched while a restart is pending")
	}

	g.Update()

	if g.Phase() != PhasePlaying {
		t.Errorf("Phase = %s, expected playing", g.Phase())
	}
	if g.score != 0 || g.level != 0 || g.lives.Count != 4 || g.rotateSpeed != 0 {
		t.Errorf("restart should reset state: score %d level %d lives %d", g.score, g.level, g.lives.Count)
	}
	if len(g.asteroids) != 3 {
		t.Errorf("restart should seed the first wave, got %d asteroids", len(g.asteroids))
	}
	if highscore.Best(g.Highscores()) != 1000 {
		t.Error("restart should keep the high-score table")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 1)

	g.KeyDown(core.KeyP, 'p')
	if !g.State().Paused || g.Phase() != PhasePaused {
		t.Fatal("P should pause")
	}
	before := g.Snapshot()
	for range 10 {
		g.Update()
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Update should do nothing while paused")
	}

	g.KeyDown(core.KeySpace, ' ')
	if g.bullets[0].InFlight {
		t.Error("Firing should be ignored while paused")
	}

	g.KeyDown(core.KeyP, 'p')
	if g.State().Paused {
		t.Error("P should resume")
	}

	g.gameOver = true
	g.KeyDown(core.KeyP, 'p')
	if g.State().Paused {
		t.Error("P should be ignored once the game is over")
	}
}

func TestTeleport(t *testing.T) {
	g := newTestGame(t, 8)
	quiet(g)
	g.asteroids = nil
	g.ship.TeleportCounter = 10

	g.KeyDown(core.KeyS, 's')

	if g.ship.TeleportCounter != 9 {
		t.Errorf("TeleportCounter = %d, expected 9", g.ship.TeleportCounter)
	}
	if g.exploding != nil {
		t.Error("A clear landing should not destroy the ship")
	}
	if !g.world.inField(g.ship.Pos) {
		t.Errorf("Ship landed outside the field at %+v", g.ship.Pos)
	}
}

func TestTeleportBudgetExhausted(t *testing.T) {
	g := newTestGame(t, 8)
	quiet(g)

	// An asteroid covering the whole field makes every landing collide.
	blanket := parked(core.Vec2{X: 1250, Y: 1000}, SizeBig)
	blanket.W, blanket.H = 6000, 6000
	g.asteroids = []*Asteroid{blanket}
	g.ship.TeleportCounter = 3

	g.teleport()

	if g.exploding == nil {
		t.Fatal("Exhausted teleport budget should destroy the ship")
	}
	if g.lives.Count != 3 {
		t.Errorf("Lives = %d, expected 3", g.lives.Count)
	}
	// Reset to [5,15) then decremented once for the jump itself.
	if c := g.ship.TeleportCounter; c < 4 || c >= 14 {
		t.Errorf("TeleportCounter = %d, expected [4,14)", c)
	}
}

func TestScoreMonotonicWithinLife(t *testing.T) {
	g := newTestGame(t, 21)

	prev := g.score
	lives := g.lives.Count
	for tick := 0; tick < 5000 && !g.gameOver; tick++ {
		if tick%3 == 0 {
			g.KeyDown(core.KeySpace, ' ')
		}
		if tick%60 == 0 {
			g.KeyDown(core.KeyA, 'a')
		}
		g.Update()
		if g.score < prev {
			t.Fatalf("tick %d: score fell from %d to %d", tick, prev, g.score)
		}
		if g.lives.Count > lives && g.score/10000 == prev/10000 {
			t.Fatalf("tick %d: life gained without crossing a threshold", tick)
		}
		prev = g.score
		lives = g.lives.Count
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 12345)
		for i := 0; i < 3000; i++ {
			switch {
			case i%100 == 0:
				g.KeyDown(core.KeyW, 'w')
			case i%100 == 30:
				g.KeyUp(core.KeyW)
			}
			switch {
			case i%50 == 0:
				g.KeyDown(core.KeyA, 'a')
			case i%50 == 10:
				g.KeyUp(core.KeyA)
			}
			if i%7 == 0 {
				g.KeyDown(core.KeySpace, ' ')
			}
			if i%400 == 399 {
				g.KeyDown(core.KeyS, 's')
			}
			g.Update()
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, 6)
	quiet(g)
	g.KeyDown(core.KeySpace, ' ')
	g.Update()

	snap := g.Snapshot()
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
	if snap.BulletCount != 1 || len(snap.BulletData) != 3 {
		t.Errorf("Expected one bullet in the snapshot, got %d", snap.BulletCount)
	}
	if snap.AsteroidCount != 1 || len(snap.AsteroidData) != 5 {
		t.Errorf("Expected one asteroid in the snapshot, got %d", snap.AsteroidCount)
	}
	if snap.Phase != PhasePlaying || snap.Lives != 4 {
		t.Errorf("Unexpected snapshot header: %+v", snap)
	}
}
