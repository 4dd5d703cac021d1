package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sortviz/internal/core"
	"github.com/vovakirdan/sortviz/internal/visualizer"
)

// helpHeight is the number of rows reserved below the canvas for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running the visualizer.
type Model struct {
	vis        *visualizer.Visualizer
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model around vis and resets it to the
// configured screen size.
func NewModel(vis *visualizer.Visualizer, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	canvasH := max(cfg.ScreenH-helpHeight, 0)
	vis.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  canvasH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	return Model{
		vis:        vis,
		screen:     core.NewScreen(cfg.ScreenW, canvasH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(keys),
		keys:       keys,
		help:       h,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

// handleKey records the action for the next tick. Quit takes effect at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit requested")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the data and recomputes the layout for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	canvasH := max(msg.Height-helpHeight, 0)

	m.screen.Resize(msg.Width, canvasH)
	m.vis.Resize(msg.Width, canvasH)
	m.help.Width = msg.Width
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick advances the visualizer by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.vis.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.vis.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for vis.
func Run(vis *visualizer.Visualizer, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(vis, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
