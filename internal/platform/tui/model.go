package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-attackers/internal/config"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/registry"
)

// Options configures a terminal session.
type Options struct {
	Runtime core.RuntimeConfig

	// HoldWindow is how long a key stays down after its last repeat.
	HoldWindow time.Duration

	// Updates delivers configuration reloads; nil disables them.
	Updates <-chan config.ShooterConfig

	// ScreenshotDir receives ctrl+s captures. Empty uses ~/.attackers/screenshots.
	ScreenshotDir string

	Log *log.Logger
}

// configMsg carries a reloaded configuration.
type configMsg config.ShooterConfig

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	opts     Options
	keys     KeyMap
	hold     *holdTracker
	frame    core.InputFrame
	state    core.GameState
	quitting bool
	done     bool
	embedded bool // hosted by a session; finishing does not quit the program
	now      func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Log == nil {
		opts.Log = engine.NewLogger(io.Discard, log.InfoLevel)
	}
	return Model{
		game:   game,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:   opts,
		keys:   DefaultKeyMap(),
		hold:   newHoldTracker(opts.HoldWindow),
		frame:  core.NewInputFrame(),
		now:    time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tea.Batch(tickCmd(m.opts.Runtime.TickRate), waitForConfig(m.opts.Updates))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case configMsg:
		m.applyConfig(config.ShooterConfig(msg))
		return m, waitForConfig(m.opts.Updates)
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
		if err := m.saveScreenshot(); err != nil {
			m.opts.Log.Error("screenshot failed", "err", err)
		}
		return m, nil
	}

	k, ok := TranslateKey(msg)
	if !ok {
		return m, nil
	}
	m.hold.Press(k, m.now(), &m.frame)
	if a := ActionFor(k); a != core.ActionNone {
		m.frame.Set(a)
	}
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Release(m.now(), &m.frame)
	result := m.game.Step(m.frame)
	m.state = result.State
	m.frame.Clear()

	if m.state.GameOver {
		m.done = true
		if m.embedded {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m Model) applyConfig(cfg config.ShooterConfig) {
	if t, ok := m.game.(registry.Tunable); ok {
		t.ApplyConfig(cfg)
	}
	m.hold.SetWindow(time.Duration(cfg.Input.HoldMS) * time.Millisecond)
}

// waitForConfig blocks until the next configuration reload.
func waitForConfig(updates <-chan config.ShooterConfig) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-updates
		if !ok {
			return nil
		}
		return configMsg(cfg)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dir = filepath.Join(home, ".attackers", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return err
	}
	m.opts.Log.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the game is over.
func (m Model) Done() bool {
	return m.done
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run plays game in the terminal until it is over or the user quits.
// A game that stopped on an error returns it. Games holding resources are
// closed on return.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	if err == nil {
		err = gameErr(game)
	}

	if c, ok := game.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// gameErr returns the error a game stopped on, if it reports one.
func gameErr(game registry.Game) error {
	if f, ok := game.(registry.Failer); ok {
		return f.Err()
	}
	return nil
}
