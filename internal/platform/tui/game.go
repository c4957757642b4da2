package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/engine"
	"github.com/vovakirdan/tui-serpent/internal/storage"
)

// GameModel is the Bubble Tea model driving one simulation episode.
type GameModel struct {
	eng        *engine.Engine
	screen     *core.Screen
	store      *storage.Store
	file       config.File
	runtime    core.RuntimeConfig
	modeID     string
	difficulty string
	keyMapper  *KeyMapper
	paused     bool
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been recorded for the current game over
}

// NewGameModel builds the engine for the selected mode and difficulty and
// wraps it in a model.
func NewGameModel(file config.File, modeID, difficulty string, store *storage.Store, runtime core.RuntimeConfig) (GameModel, error) {
	eng, err := BuildEngine(file, modeID, difficulty, runtime.Seed)
	if err != nil {
		return GameModel{}, err
	}

	return GameModel{
		eng:        eng,
		screen:     core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:      store,
		file:       file,
		runtime:    runtime,
		modeID:     modeID,
		difficulty: difficulty,
		keyMapper:  NewKeyMapper(),
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

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
		m.quitting = true
		return m, tea.Quit
	}

	terminal := m.eng.Terminal()

	if dir, ok := DirectionFor(action); ok && !m.paused && !terminal {
		m.eng.SetDirection(dir)
		return m, nil
	}

	switch action {
	case core.ActionPause:
		if !terminal {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if terminal {
			return m.restart()
		}
	case core.ActionBack:
		if terminal || m.paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// restart rebuilds the engine with a fresh wall-clock seed so terrain and
// spawns differ between runs.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	eng, err := BuildEngine(m.file, m.modeID, m.difficulty, time.Now().UnixNano())
	if err != nil {
		// Config has not changed since the last build, so this is unreachable
		// in practice; keep the old episode on screen if it ever happens.
		return m, nil
	}
	m.eng = eng
	m.paused = false
	m.runSaved = false
	return m, nil
}

// handleTick advances the simulation.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.eng.Terminal() {
		m.eng.Advance(1.0 / float64(m.runtime.TickRate))
	}

	// Record the run once per game over
	if m.eng.Terminal() && !m.runSaved {
		if m.store != nil && m.eng.Score() > 0 {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveRun(m.modeID, m.difficulty, m.eng.Score(), m.eng.Ticks())
		}
		m.runSaved = true
	}

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	drawGame(m.screen, m.eng, m.difficulty, m.paused)

	dir := filepath.Join(os.Getenv("HOME"), ".serpent", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.modeID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.eng, m.difficulty, m.paused)
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

// Run starts a standalone Bubble Tea program for one game session.
func Run(file config.File, modeID, difficulty string, store *storage.Store, runtime core.RuntimeConfig) error {
	model, err := NewGameModel(file, modeID, difficulty, store, runtime)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
