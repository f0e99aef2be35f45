package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// statusTicks is how long a status message replaces the help line.
const statusTicks = 180

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// reloadMsg delivers a config reload to the program.
type reloadMsg config.Reload

// Option customizes a Model.
type Option func(*Model)

// WithLogger sets the logger for game events and config reloads.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithReloads feeds config reloads from a watcher into the game.
func WithReloads(ch <-chan config.Reload) Option {
	return func(m *Model) {
		m.reloads = ch
	}
}

// WithScreenshotDir overrides where ctrl+s saves frames.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.shotDir = dir
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	logger     *log.Logger
	reloads    <-chan config.Reload
	shotDir    string
	status     string
	statusLeft int
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game and resets the game
// onto its title screen.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
		shotDir:    DefaultScreenshotDir(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop and, when configured, the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.waitForReload())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game keys are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back) && m.gameState.InMenu:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
			m.setStatus("screenshot failed: " + err.Error())
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.setStatus("saved " + path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.gameHeight())
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize only resizes the frame; the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.gameHeight())
	return m, nil
}

// handleTick steps the game with the input queued since the last tick and
// the measured time between the two ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.DT = frameDelta(m.lastTick, now)
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)
	if m.gameState.GameOver && !wasOver {
		m.logger.Info("run finished", "game", m.game.ID(), "score", m.gameState.Score)
	}

	m.inputFrame.Clear()
	if m.statusLeft > 0 {
		m.statusLeft--
	}

	return m, tickCmd(m.config.TickRate)
}

// handleReload hands a reloaded config to the game, which applies it when
// the next run starts.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.logger.Error("config reload failed", "path", r.Path, "error", r.Err)
		m.setStatus("config error, keeping previous settings")
		return m, m.waitForReload()
	}

	if c, ok := m.game.(registry.Configurable); ok {
		c.Configure(r.Config)
		m.logger.Info("config reloaded", "path", r.Path)
		m.setStatus("config reloaded, applies to the next run")
	}
	return m, m.waitForReload()
}

func (m Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(r)
	}
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case "coin", "cleared":
			m.logger.Debug(e.Message, "game", m.game.ID(), "kind", e.Kind)
		default:
			m.logger.Info(e.Message, "game", m.game.ID(), "kind", e.Kind)
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = statusTicks
}

// gameHeight is the terminal height minus the help footer.
func (m Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(0, m.config.ScreenH-lines)
}

// DefaultScreenshotDir returns ~/.tui-runner/screenshots, or a relative
// directory when the home directory is unknown.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".tui-runner", "screenshots")
}

// saveScreenshot saves the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", m.shotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.statusLeft > 0 {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts...),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
