package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// bulletsHitAsteroids resolves player shots against asteroids. Each bullet
// destroys at most one asteroid; big and medium ones split in two.
func (g *Game) bulletsHitAsteroids() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.InFlight {
			continue
		}
		for _, a := range g.asteroids {
			if !a.InFlight || !core.HitsPoint(a, b.Pos) {
				continue
			}
			b.InFlight = false
			a.InFlight = false
			g.score += g.asteroidScore(a.Size)

			if child, ok := a.Size.Smaller(); ok {
				g.asteroids = append(g.asteroids,
					newAsteroid(g.world, a.Pos, a.Speed, child),
					newAsteroid(g.world, a.Pos, a.Speed, child),
				)
			} else {
				a.Explode(g.world)
			}
			break
		}
	}
}

// bulletsHitSaucer resolves player shots against the saucer.
func (g *Game) bulletsHitSaucer() {
	for i := range g.bullets {
		b := &g.bullets[i]
		if !b.InFlight || !g.saucer.InFlight {
			continue
		}
		if core.HitsPoint(&g.saucer, b.Pos) {
			b.InFlight = false
			g.saucer.Explode(g.world)
			g.score += g.cfg.Scoring.Saucer
		}
	}
}

// saucerBulletHitsShip reports whether the saucer's bullet is inside the ship.
func (g *Game) saucerBulletHitsShip() bool {
	sb := &g.saucer.Bullet
	return sb.InFlight && core.HitsPoint(&g.ship, sb.Pos)
}

// saucerHitsShip reports whether the saucer body overlaps the ship.
func (g *Game) saucerHitsShip() bool {
	return g.saucer.InFlight && core.Overlaps(&g.saucer, &g.ship)
}

// asteroidHitsShip reports whether any in-flight asteroid overlaps the ship.
func (g *Game) asteroidHitsShip() bool {
	for _, a := range g.asteroids {
		if a.InFlight && core.Overlaps(a, &g.ship) {
			return true
		}
	}
	return false
}

// resolveShipHits checks everything that can destroy the ship and starts
// an explosion when one of them does.
func (g *Game) resolveShipHits() {
	if g.exploding != nil || g.gameOver {
		return
	}

	byBullet := g.saucerBulletHitsShip()
	if byBullet || g.saucerHitsShip() || g.asteroidHitsShip() {
		if byBullet {
			g.saucer.Bullet.InFlight = false
		}
		g.loseShip()
	}
}

// loseShip starts an explosion at the ship and takes a life.
func (g *Game) loseShip() {
	g.exploding = newExplodingShip(g.world, g.ship.Pos)
	g.ship.ThrustOff()
	g.rotateSpeed = 0
	g.lives.Count--
	g.log.Debug("ship lost", "lives", g.lives.Count, "score", g.score)

	if g.lives.Count <= 0 {
		g.gameOver = true
		g.log.Info("game over", "score", g.score, "level", g.level)
	}
}

// pruneAsteroids drops destroyed asteroids whose debris has finished.
func (g *Game) pruneAsteroids() {
	kept := g.asteroids[:0]
	for _, a := range g.asteroids {
		if !a.Gone() {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(g.asteroids); i++ {
		g.asteroids[i] = nil
	}
	g.asteroids = kept
}

func (g *Game) asteroidScore(s Size) int {
	switch s {
	case SizeBig:
		return g.cfg.Scoring.Big
	case SizeMedium:
		return g.cfg.Scoring.Medium
	default:
		return g.cfg.Scoring.Small
	}
}
