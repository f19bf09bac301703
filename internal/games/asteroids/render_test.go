package asteroids

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "SCORE 0") || !strings.Contains(hud, "LEVEL 1") {
		t.Errorf("HUD missing score or level: %q", hud)
	}
	if strings.Count(hud, string(LifeChar)) != 4 {
		t.Errorf("HUD should show 4 life icons: %q", hud)
	}

	// Ship at (1250,1000) maps to column 40, row 1 + 11.
	if got := screen.GetCell(40, 12).Rune; got != '^' {
		t.Errorf("Ship glyph at centre = %q, expected '^'", got)
	}
	if got := screen.GetCell(40, 12).Color; got != core.ColorBrightCyan {
		t.Errorf("Ship color = %d, expected bright cyan", got)
	}
}

func TestRenderThrustFlame(t *testing.T) {
	g := newTestGame(t, 1)
	quiet(g)
	g.KeyDown(core.KeyW, 'w')

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.ContainsRune(screen.String(), FlameChar) {
		t.Error("Thrusting ship should draw a flame")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		text  string
	}{
		{"paused", func(g *Game) { g.paused = true }, "PAUSED"},
		{"game over", func(g *Game) { g.gameOver = true }, "GAME OVER"},
		{"initials", func(g *Game) {
			g.gameOver = true
			g.getHighscore = true
			g.initials = "Q"
		}, "INITIALS: Q_"},
		{"table", func(g *Game) {
			g.gameOver = true
			g.showHighscore = true
		}, "HIGH SCORES"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1)
			tc.setup(g)
			screen := core.NewScreen(80, 24)
			g.Render(screen)
			if !strings.Contains(screen.String(), tc.text) {
				t.Errorf("expected %q on screen:\n%s", tc.text, screen.String())
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screens should show a warning")
	}
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{0, '^'},
		{20, '^'},
		{-20, '^'},
		{45, '\\'},
		{90, '<'},
		{180, 'v'},
		{270, '>'},
		{-90, '>'},
		{315, '/'},
		{720, '^'},
	}
	for _, tc := range tests {
		if got := shipGlyph(tc.angle); got != tc.expected {
			t.Errorf("shipGlyph(%v) = %q, expected %q", tc.angle, got, tc.expected)
		}
	}
}
