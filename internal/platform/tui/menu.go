package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/modes"
)

// Selection holds the user's choice from the menu.
type Selection struct {
	ModeID     string
	Difficulty string
}

// MenuModel lets users choose a game mode and a difficulty preset.
type MenuModel struct {
	defs         []modes.Definition
	difficulties []string
	file         config.File
	cursor       int
	diffCursor   int
	inDiffSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    Selection
	choosing     bool
	quitting     bool
	back         bool
	openScores   bool // True if user pressed Tab for the scoreboard
}

// NewMenuModel creates a new mode selection model.
func NewMenuModel(file config.File, width, height int) MenuModel {
	return MenuModel{
		defs:         modes.List(),
		difficulties: config.DifficultyNames(),
		file:         file,
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
		choosing:     true,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDiffSelect {
		return m.handleDifficultyKey(action)
	}
	return m.handleModeKey(action)
}

func (m MenuModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.defs)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.defs) > 0 {
			m.selection.ModeID = m.defs[m.cursor].ID
			m.inDiffSelect = true
			m.diffCursor = 1 // Default to medium
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScores = true
		return m, tea.Quit // Exit menu to show the scoreboard
	}

	return m, nil
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(m.difficulties)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = m.difficulties[m.diffCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inDiffSelect = false
	}

	return m, nil
}

// View renders the selection screens.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDiffSelect {
		return m.viewDifficultySelect()
	}
	return m.viewModeSelect()
}

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S E R P E N T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, def := range m.defs {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, def.Title), m.width))
		b.WriteString("\n")
	}

	if len(m.defs) > 0 && m.cursor < len(m.defs) {
		b.WriteString("\n")
		b.WriteString(centerText(m.defs[m.cursor].Description, m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m MenuModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, name := range m.difficulties {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}

		desc := ""
		if d, err := m.file.Difficulty(name); err == nil && d.Description != "" {
			desc = " - " + d.Description
		}

		line := fmt.Sprintf("%s%-8s%s", cursor, name, desc)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m MenuModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back on the top-level screen.
func (m MenuModel) WantsBack() bool {
	return m.back
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScores
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the outcome of running the selector.
type MenuResult struct {
	Selection       *Selection
	WantsScoreboard bool
	Quit            bool
}

// RunSelector runs the mode/difficulty selection screen.
func RunSelector(file config.File, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(file, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Quit: true}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	if m.WantsScoreboard() {
		return MenuResult{WantsScoreboard: true}, nil
	}
	if m.IsQuitting() || m.WantsBack() {
		return MenuResult{Quit: true}, nil
	}

	return MenuResult{Selection: m.Selected()}, nil
}
