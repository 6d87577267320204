package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// Game is the simulation the model drives. It must not depend on Bubble Tea.
type Game interface {
	ID() string
	Title() string
	Reset(seed int64)
	Update()
	Jump()
	Render(dst *core.Screen)
	State() core.GameState
}

// ScoreStore records finished runs.
type ScoreStore interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options are the optional collaborators of a Model.
type Options struct {
	Store   ScoreStore  // nil disables score recording
	Logger  *log.Logger // nil discards logs
	Palette Palette     // nil uses the local terminal palette
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	game    Game
	screen  *core.Screen
	store   ScoreStore
	logger  *log.Logger
	palette Palette
	keys    KeyMap
	help    help.Model
	config  core.RuntimeConfig

	fixedSeed  bool
	state      core.GameState
	best       int
	paused     bool
	quitting   bool
	scoreSaved bool // Whether the current run's score has been recorded
}

// NewModel creates a model for game. The game is reset with the config seed,
// or a clock-based seed when it is zero.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultRuntimeConfig().TickInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		store:     opts.Store,
		logger:    logger,
		palette:   palette,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		config:    cfg,
		fixedSeed: fixed,
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg.Seed)
	m.state = game.State()
	m.best = m.loadBest()
	return m
}

// playfieldRows leaves the last terminal row for the help line.
func playfieldRows(screenH int) int {
	return core.Max(screenH-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick", m.config.TickInterval)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies input as soon as it arrives; a jump overrides the
// velocity before the next tick runs.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "score", m.state.Score, "game_over", m.state.GameOver)
		return m, tea.Quit

	case core.ActionJump:
		// Not gated on game over: the write is harmless once the bird is frozen.
		if !m.paused {
			m.game.Jump()
		}

	case core.ActionPause:
		if !m.state.GameOver {
			m.paused = !m.paused
		}

	case core.ActionRestart:
		if m.state.GameOver {
			m.restart()
		}

	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleResize adapts the screen buffer. The canvas is logical, so the run
// continues unchanged at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and records the score once the run
// ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.game.Update()
		m.state = m.game.State()
	}

	if m.state.GameOver && !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickInterval)
}

func (m *Model) recordScore() {
	score := m.state.Score
	m.logger.Info("game over", "score", score, "best", m.best)

	if score > m.best {
		m.best = score
	}
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("could not save score", "score", score, "error", err)
	}
}

func (m *Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// restart begins a new run. A seed given on the command line is reused so
// runs stay reproducible.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config.Seed)
	m.state = m.game.State()
	m.scoreSaved = false
	m.paused = false
	m.logger.Debug("restarted", "seed", m.config.Seed)
}

// saveScreenshot writes the plain-text frame to the XDG state directory.
func (m *Model) saveScreenshot() {
	m.draw()

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path, err := xdg.StateFile(filepath.Join("flappy", "screenshots", name))
	if err != nil {
		m.logger.Warn("could not resolve screenshot path", "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// pauseBoxW is the width of the pause overlay frame.
const pauseBoxW = 17

// draw renders the game and the platform overlays into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)

	mid := m.screen.Height() / 2
	switch {
	case m.paused:
		box := core.NewRect((m.screen.Width()-pauseBoxW)/2, mid-1, pauseBoxW, 5)
		m.screen.FillRect(box, ' ', core.ColorDefault)
		m.screen.DrawBox(box, core.ColorGray)
		m.screen.DrawTextCentered(mid, "Paused", core.ColorYellow)
		m.screen.DrawTextCentered(mid+2, "p to resume", core.ColorGray)
	case m.state.GameOver:
		m.screen.DrawTextCentered(mid+2, fmt.Sprintf("Best: %d", m.best), core.ColorYellow)
		m.screen.DrawTextCentered(mid+3, "r to restart, q to quit", core.ColorGray)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// Best returns the best score known to this session.
func (m Model) Best() int {
	return m.best
}

// Run starts a local Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
