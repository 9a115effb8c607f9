package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const scoreTimeout = 2 * time.Second

// saveAware is implemented by games that keep progress in a SaveStore.
type saveAware interface {
	UseStore(store t2048.SaveStore, logger *log.Logger)
}

// rulesAware is implemented by games whose rules can be set per instance.
type rulesAware interface {
	UseRules(r t2048.Rules)
}

// tileReporter is implemented by games that track a highest tile.
type tileReporter interface {
	MaxTile() int
}

// Options configures a game run.
type Options struct {
	Scores *storage.Store  // Finished games; may be nil
	Saves  t2048.SaveStore // In-progress games; may be nil
	Logger *log.Logger     // Defaults to log.Default()
	Rules  *t2048.Rules    // Per-game rules; nil keeps the configured ones
	Config core.RuntimeConfig
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	scores     *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool // Left the game with the back key
	quitOnBack bool // Stop the program on back (standalone runs)
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	if sa, ok := game.(saveAware); ok && opts.Saves != nil {
		sa.UseStore(opts.Saves, logger)
	}
	if ra, ok := game.(rulesAware); ok && opts.Rules != nil {
		ra.UseRules(*opts.Rules)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		scores:     opts.Scores,
		logger:     logger.With("game", game.ID(), "profile", cfg.Profile),
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.back = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. The game lays itself out
// from the screen size on every render, so progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Undo or restart out of a loss starts a new run that may end again.
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save score on game over (once per loss)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		m.recordScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the finished game. Failures are logged only.
func (m *Model) recordScore() {
	if m.scores == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.config.Profile,
		Score:  m.gameState.Score,
	}
	if tr, ok := m.game.(tileReporter); ok {
		entry.MaxTile = tr.MaxTile()
	}

	ctx, cancel := context.WithTimeout(context.Background(), scoreTimeout)
	defer cancel()

	if _, err := m.scores.SaveScore(ctx, entry); err != nil {
		m.logger.Warn("cannot record score", "score", entry.Score, "error", err)
		return
	}
	m.logger.Debug("score recorded", "score", entry.Score, "max_tile", entry.MaxTile)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WentBack reports whether the player left with the back key rather than
// quitting.
func (m Model) WentBack() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game. It reports
// whether the player asked to go back to the menu.
func Run(game registry.Game, opts Options) (back bool, err error) {
	model := NewModel(game, opts)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.WentBack(), nil
	}
	return false, nil
}
