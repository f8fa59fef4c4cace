package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of lines the help footer takes below the game.
const helpHeight = 1

// Model is the Bubble Tea model running one snake session.
type Model struct {
	session  *snake.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	palette  Palette
	logger   *log.Logger
	width    int // terminal size, 0 until the first WindowSizeMsg
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *snake.Session, cfg core.RuntimeConfig, palette Palette, logger *log.Logger) Model {
	w, h := snake.ScreenSize(session.Grid().Size)
	return Model{
		session: session,
		screen:  core.NewScreen(w, h),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		palette: palette,
		logger:  logger,
	}
}

// RequiredSize returns the terminal size needed to show a grid of gridSize cells.
func RequiredSize(gridSize int) (w, h int) {
	w, h = snake.ScreenSize(gridSize)
	return w, h + helpHeight
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues directions and handles quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.session.Input(action)
		m.quitting = true
		m.logger.Debug("quit requested", "key", msg.String())
		return m, tea.Quit
	case action.IsDirectional():
		m.session.Input(action)
		m.logger.Debug("direction queued", "action", action)
	}
	return m, nil
}

// handleTick runs one session iteration and stops the program when the
// session ends.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Hold the game while the field can't be shown
	if m.tooSmall() {
		return m, tickCmd(m.config.FrameRate)
	}

	res := m.session.Update()

	if res.Turned {
		m.logger.Debug("turned", "heading", m.session.Snapshot().Heading)
	}
	if res.Ate {
		m.logger.Debug("treat eaten", "length", m.session.Len(), "treats", m.session.Eaten())
	}

	if res.Status.Terminal() {
		m.logger.Info("session ended",
			"status", res.Status,
			"reason", m.session.Reason(),
			"length", m.session.Len(),
			"ticks", m.session.Ticks(),
		)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.FrameRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		needW, needH := RequiredSize(m.session.Grid().Size)
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize to continue, q to quit.",
			needW, needH, m.width, m.height)
	}

	snake.RenderSnapshot(m.session.Snapshot(), m.screen)
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
}

// tooSmall reports whether the last known terminal size can't fit the field.
func (m Model) tooSmall() bool {
	if m.width == 0 {
		return false
	}
	needW, needH := RequiredSize(m.session.Grid().Size)
	return m.width < needW || m.height < needH
}

// Session returns the session driven by this model.
func (m Model) Session() *snake.Session {
	return m.session
}

// Run starts the Bubble Tea program for session and blocks until it ends.
// It returns the final snapshot of the session.
func Run(session *snake.Session, cfg core.RuntimeConfig, palette Palette, logger *log.Logger) (snake.Snapshot, error) {
	model := NewModel(session, cfg, palette, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return session.Snapshot(), err
}
