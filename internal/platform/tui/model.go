package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Model is the Bubble Tea model that plays asteroids.
type Model struct {
	game     *asteroids.Game
	screen   *core.Screen
	history  storage.Backend
	logger   *log.Logger
	palette  Palette
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *latch
	gen      int
	phase    asteroids.Phase
	quitting bool
	back     bool
}

// NewModel creates a model for the game and starts a new round.
// history may be nil, in which case finished games are not recorded.
func NewModel(game *asteroids.Game, history storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history: history,
		logger:  logger,
		palette: NewPalette(nil),
		config:  cfg,
		keys:    NewKeyMapper(),
		held:    newLatch(cfg.HoldTicks),
		phase:   game.Phase(),
	}
}

// WithPalette returns a copy of the model that renders with p.
func (m Model) WithPalette(p Palette) Model {
	m.palette = p
	return m
}

// withGen returns a copy of the model whose tick loop carries gen.
func (m Model) withGen(gen int) Model {
	m.gen = gen
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is logical, so a resize only changes the viewport.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	textMode := m.game.State().TextMode

	if m.keys.IsQuit(msg, textMode) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsBack(msg, textMode) {
		// A session model swallows the quit and shows its menu instead.
		m.back = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	k, r := m.keys.MapKey(msg)
	if k == core.KeyNone {
		return m, nil
	}

	// Auto-repeat only keeps a held key alive; the game sees one press.
	if k.IsHoldable() && m.flying() {
		if m.held.Press(k) {
			m.game.KeyDown(k, r)
		}
		return m, nil
	}

	m.game.KeyDown(k, r)
	return m, nil
}

// flying reports whether held keys steer the ship right now.
func (m Model) flying() bool {
	switch m.game.Phase() {
	case asteroids.PhasePlaying, asteroids.PhaseShipExploding:
		return true
	}
	return false
}

// handleTick releases expired keys and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, k := range m.held.Tick() {
		m.game.KeyUp(k)
	}

	m.game.Update()
	m.observePhase()

	return m, tickCmd(m.config.TickRate, m.gen)
}

// observePhase records the finished game once, when the table comes up.
func (m *Model) observePhase() {
	phase := m.game.Phase()
	if phase == asteroids.PhaseShowingHighscores && m.phase != phase {
		m.recordGame()
	}
	if phase == asteroids.PhasePlaying && m.phase == asteroids.PhaseRestartPending {
		for _, k := range m.held.ReleaseAll() {
			m.game.KeyUp(k)
		}
	}
	m.phase = phase
}

func (m *Model) recordGame() {
	state := m.game.State()
	initials, rank := m.game.LastEntry()
	m.logger.Info("game finished", "score", state.Score, "level", state.Level+1, "rank", rank+1)

	if m.history == nil {
		return
	}
	err := m.history.RecordGame(storage.GameRecord{
		Initials:  initials,
		Score:     state.Score,
		Level:     state.Level + 1,
		CreatedAt: time.Now(),
	})
	if err != nil && !errors.Is(err, storage.ErrNoHistory) {
		m.logger.Warn("cannot record game", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Game returns the game driven by the model.
func (m Model) Game() *asteroids.Game {
	return m.game
}

// Run plays the game in the local terminal until the user quits.
func Run(game *asteroids.Game, history storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, history, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
