package asteroids

import (
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyDown handles a key press. r carries the typed character, or 0.
func (g *Game) KeyDown(k core.Key, r rune) {
	if g.restart {
		return
	}

	switch {
	case g.showHighscore:
		g.restart = true
		return
	case g.getHighscore:
		g.editInitials(k, r)
		return
	}

	if k == core.KeyP && !g.gameOver {
		g.paused = !g.paused
		return
	}
	if g.paused {
		return
	}

	if k.IsHoldable() {
		g.held[k] = true
	}
	if !g.controllable() {
		return
	}

	sc := g.cfg.Ship
	switch k {
	case core.KeyA:
		g.rotateSpeed += sc.RotateStep
	case core.KeyD:
		g.rotateSpeed -= sc.RotateStep
	case core.KeyW:
		g.ship.Thrust(sc.Thrust, sc.MaxSpeed)
	case core.KeyS:
		g.teleport()
	case core.KeySpace:
		fireFromPool(g.bullets, g.ship.Pos, g.ship.Angle, sc.BulletSpeed)
	}
}

// KeyUp handles a key release.
func (g *Game) KeyUp(k core.Key) {
	delete(g.held, k)
	if k == core.KeyW {
		g.ship.ThrustOff()
	}
}

// editInitials applies one key to the initials being typed.
func (g *Game) editInitials(k core.Key, r rune) {
	switch k {
	case core.KeyReturn:
		g.commitInitials()
	case core.KeyBackspace:
		if n := len(g.initials); n > 0 {
			_, size := utf8.DecodeLastRuneInString(g.initials)
			g.initials = g.initials[:n-size]
		}
	default:
		if r == 0 || r == ' ' || !unicode.IsPrint(r) {
			return
		}
		if utf8.RuneCountInString(g.initials) >= g.cfg.Gameplay.Initials {
			return
		}
		g.initials += string(unicode.ToUpper(r))
	}
}
