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
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neondash/internal/core"
	"github.com/vovakirdan/neondash/internal/game"
	"github.com/vovakirdan/neondash/internal/level"
)

// Options configures the play screen.
type Options struct {
	Runtime       core.RuntimeConfig
	HoldRelease   time.Duration
	ArenaCapacity int
	Logger        *log.Logger
	Reload        <-chan *level.Catalog // hot reloaded catalogs, may be nil
}

// Model is the Bubble Tea model for playing a session.
type Model struct {
	session  *game.Session
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	hold     *HoldTracker
	presses  []time.Time
	config   core.RuntimeConfig
	reload   <-chan *level.Catalog
	logger   *log.Logger
	now      func() time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model driving s.
func NewModel(s *game.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Runtime
	// Reserve the last line for the help bar.
	r := NewRenderer(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1), s.Physics(), opts.ArenaCapacity, logger)
	r.SetLevelCount(s.Catalog().Len())
	r.SubmitFrame(s.Frame())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  s,
		renderer: r,
		keys:     DefaultKeyMap(),
		help:     h,
		hold:     NewHoldTracker(opts.HoldRelease),
		config:   cfg,
		reload:   opts.Reload,
		logger:   logger,
		now:      time.Now,
	}
}

// Init starts the tick loop and the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForCatalog(m.reload))
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

	case CatalogMsg:
		m.session.SetCatalog(msg.Catalog)
		m.renderer.SetLevelCount(msg.Catalog.Len())
		if m.session.State() == game.StateMenu {
			m.renderer.SubmitFrame(m.session.Frame())
		}
		return m, waitForCatalog(m.reload)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case key.Matches(msg, m.keys.Jump):
		now := m.now()
		if m.hold.Key(now) {
			m.presses = append(m.presses, now)
		}

	case key.Matches(msg, m.keys.Prev):
		m.selectLevel(-1)

	case key.Matches(msg, m.keys.Next):
		m.selectLevel(1)
	}
	return m, nil
}

// selectLevel moves the menu selection by delta, wrapping at both ends.
func (m Model) selectLevel(delta int) {
	n := m.session.Catalog().Len()
	idx := ((m.session.LevelIndex()+delta)%n + n) % n
	if m.session.Select(idx) {
		m.renderer.SubmitFrame(m.session.Frame())
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.renderer.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick samples the intent and advances the session by one tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	in := core.Intent{
		JumpHeld: m.hold.Held(t),
		Presses:  m.presses,
		At:       t,
	}
	m.presses = nil

	m.renderer.SubmitFrame(m.session.Step(in))
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".neondash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Level().ID, timestamp))
	return path, os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for s.
func Run(s *game.Session, opts Options) error {
	p := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
