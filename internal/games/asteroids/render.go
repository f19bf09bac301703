package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
)

// Visual characters for rendering
const (
	BulletChar      = '•'
	DebrisChar      = '.'
	ShipDebrisChar  = '*'
	FlameChar       = '*'
	LifeChar        = '▲'
	SaucerSprite    = "<o>"
	minScreenWidth  = 40
	minScreenHeight = 14
)

// shipGlyphs are the ship arrows for the eight 45° sectors, counter-clockwise from up.
var shipGlyphs = []rune{'^', '\\', '<', '/', 'v', '\\', '>', '/'}

// asteroidGlyphs fill an asteroid's block by size.
var asteroidGlyphs = map[Size]rune{
	SizeBig:    '▓',
	SizeMedium: '▒',
	SizeSmall:  '░',
}

// viewport maps playfield units to screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / g.world.w,
		sy:  float64(dst.Height()-1) / g.world.h,
		top: 1,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), v.top + int(math.Floor(p.Y*v.sy))
}

// rect returns the cell rectangle covering b, at least one cell in size.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.cell(b.Min)
	x1, y1 := v.cell(b.Max)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current frame. While a restart is pending the frame is
// left untouched so a half-reset state is never shown.
func (g *Game) Render(dst *core.Screen) {
	if g.restart {
		return
	}
	dst.Clear()

	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight))
		return
	}

	v := g.viewport(dst)
	g.renderAsteroids(dst, v)
	g.renderSaucer(dst, v)
	g.renderBullets(dst, v)
	g.renderShip(dst, v)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, level, life icons and the best score on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)

	level := fmt.Sprintf("LEVEL %d", g.level+1)
	dst.DrawTextColor((dst.Width()-len(level))/2, 0, level, core.ColorWhite)

	icons := strings.Repeat(string(LifeChar), g.lives.Icons())
	dst.DrawTextColor(14, 0, icons, core.ColorCyan)

	hi := fmt.Sprintf("HI %d", max(highscore.Best(g.highscores), g.score))
	dst.DrawTextColor(dst.Width()-len(hi)-1, 0, hi, core.ColorYellow)
}

func (g *Game) renderAsteroids(dst *core.Screen, v viewport) {
	for _, a := range g.asteroids {
		if a.InFlight {
			r := v.rect(a.Bounds())
			glyph := asteroidGlyphs[a.Size]
			for y := r.Y; y < r.Bottom(); y++ {
				for x := r.X; x < r.Right(); x++ {
					dst.SetColor(x, y, glyph, core.ColorGray)
				}
			}
		}
		if a.Debris != nil {
			renderDebris(dst, v, a.Debris, core.ColorGray)
		}
	}
}

func renderDebris(dst *core.Screen, v viewport, d *Debris, c core.Color) {
	if !d.InFlight {
		return
	}
	for _, p := range d.Pieces {
		if p.Lifetime > 0 {
			x, y := v.cell(p.Pos)
			dst.SetColor(x, y, DebrisChar, c)
		}
	}
}

func (g *Game) renderSaucer(dst *core.Screen, v viewport) {
	s := &g.saucer
	if s.InFlight {
		x, y := v.cell(s.Pos)
		dst.DrawTextColor(x-len(SaucerSprite)/2, y, SaucerSprite, core.ColorBrightMagenta)
	}
	if s.Debris != nil {
		renderDebris(dst, v, s.Debris, core.ColorMagenta)
	}
	if s.Bullet.InFlight {
		x, y := v.cell(s.Bullet.Pos)
		dst.SetColor(x, y, BulletChar, core.ColorBrightRed)
	}
}

func (g *Game) renderBullets(dst *core.Screen, v viewport) {
	for _, b := range g.bullets {
		if b.InFlight {
			x, y := v.cell(b.Pos)
			dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderShip(dst *core.Screen, v viewport) {
	if g.exploding != nil {
		for _, p := range g.exploding.Pieces {
			if !p.InFlight {
				continue
			}
			a, b := p.Ends()
			for _, pt := range []core.Vec2{a, p.Pos, b} {
				x, y := v.cell(pt)
				dst.SetColor(x, y, ShipDebrisChar, core.ColorBrightYellow)
			}
		}
		return
	}
	if g.gameOver {
		return
	}

	x, y := v.cell(g.ship.Pos)
	if g.ship.Thrusting {
		tail := g.ship.Pos.Add(core.Heading(g.ship.Angle).Scale(-g.ship.H))
		fx, fy := v.cell(tail)
		if fx != x || fy != y {
			dst.SetColor(fx, fy, FlameChar, core.ColorOrange)
		}
	}
	dst.SetColor(x, y, shipGlyph(g.ship.Angle), core.ColorBrightCyan)
}

// shipGlyph picks the arrow closest to the heading.
func shipGlyph(angle float64) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	sector := int(math.Floor((a+22.5)/45)) % len(shipGlyphs)
	return shipGlyphs[sector]
}

// renderOverlay draws pause, game over, initials entry and the table.
func (g *Game) renderOverlay(dst *core.Screen) {
	midY := dst.Height() / 2

	switch {
	case g.showHighscore:
		g.renderTable(dst)
	case g.getHighscore:
		boxW := 28
		r := core.NewRect((dst.Width()-boxW)/2, midY-3, boxW, 7)
		clearRect(dst, r)
		dst.DrawBox(r)
		dst.DrawTextCentered(midY-2, "NEW HIGH SCORE!")
		dst.DrawTextCentered(midY-1, fmt.Sprintf("%d", g.score))
		field := g.initials + strings.Repeat("_", max(g.cfg.Gameplay.Initials-len([]rune(g.initials)), 0))
		dst.DrawTextCentered(midY+1, "INITIALS: "+field)
		dst.DrawTextCentered(midY+2, "ENTER to save")
	case g.gameOver:
		dst.DrawTextCentered(midY, "GAME OVER")
	case g.paused:
		dst.DrawTextCentered(midY, "PAUSED")
		dst.DrawTextCentered(midY+1, "Press P to resume")
	}
}

// renderTable draws the top-10 list, highlighting the latest entry.
func (g *Game) renderTable(dst *core.Screen) {
	boxW, boxH := 30, len(g.highscores)+6
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	clearRect(dst, r)
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, "HIGH SCORES")

	for i, e := range g.highscores {
		initials := e.Initials
		if initials == "" {
			initials = "--"
		}
		line := fmt.Sprintf("%2d. %-2s %8d", i+1, initials, e.Score)
		color := core.ColorWhite
		if i == g.lastRank {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor((dst.Width()-len(line))/2, r.Y+3+i, line, color)
	}
	dst.DrawTextCentered(r.Bottom()-2, "Press any key")
}

func clearRect(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, ' ')
}
