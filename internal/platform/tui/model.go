package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/registry"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/storage"
)

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// matchInfo is implemented by games that report match details for storage.
type matchInfo interface {
	Ticks() int
	BallPolicy() bounds.Mode
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	log        *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	input      *Input
	gameState  core.GameState
	inMenu     bool // Back returns to a menu instead of pausing
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the result has been saved for this match
}

// NewGameModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		log:       logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     NewInput(DefaultHoldTicks),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.input.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.leaveMatch()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		switch {
		case m.inMenu && (m.gameState.GameOver || m.gameState.Paused):
			m.leaveMatch()
			m.backToMenu = true
			return m, nil
		case !m.gameState.GameOver:
			action = core.ActionPause
		}
	}

	m.input.Press(action)
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games that follow the viewport keep playing, others restart
	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()

	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.input.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventMatchOver {
			m.log.Info("match over", "game", m.game.ID(), "for", m.gameState.Score, "against", m.gameState.OpponentScore)
		}
	}

	if m.gameState.GameOver {
		m.recordMatch()
	}

	return m, tickCmd(m.config.TickRate)
}

// leaveMatch records an endless run when the player walks away from it.
// Unfinished matches are not recorded.
func (m *GameModel) leaveMatch() {
	if !strings.HasSuffix(m.game.ID(), "_endless") {
		return
	}
	if mi, ok := m.game.(matchInfo); ok && mi.Ticks() == 0 {
		return
	}
	m.recordMatch()
}

// recordMatch saves the score and match result once per match.
func (m *GameModel) recordMatch() {
	if m.recorded {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.log.Warn("could not save score", "game", m.game.ID(), "err", err)
		}
	}

	rec := storage.MatchRecord{
		GameID:       m.game.ID(),
		GoalsFor:     m.gameState.Score,
		GoalsAgainst: m.gameState.OpponentScore,
	}
	if mi, ok := m.game.(matchInfo); ok {
		rec.Policy = string(mi.BallPolicy())
		rec.DurationTicks = mi.Ticks()
	}
	if _, err := m.store.SaveMatch(rec); err != nil {
		m.log.Warn("could not save match", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks kick the ball
	)

	_, err := p.Run()
	return err
}
