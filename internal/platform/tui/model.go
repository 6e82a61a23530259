package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/game"
	"github.com/vovakirdan/skyfall/internal/input"
	"github.com/vovakirdan/skyfall/internal/storage"
)

// LocalPlayer is the player name recorded for non-SSH sessions.
const LocalPlayer = "local"

const comboBarWidth = 20

// Model is the Bubble Tea model driving one skyfall session.
//
// Two independent periodic commands feed it: the main tick, re-armed on
// every TickMsg for the whole session, and the gesture decay tick, alive
// only while the pause gesture is armed. Generation counters on both drop
// messages from torn-down epochs.
type Model struct {
	game     *game.Game
	keys     *input.State
	holds    *holdTracker
	km       *KeyMapper
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	field    config.FieldConfig
	username string
	comboBar progress.Model

	tickGen     int
	comboGen    int
	comboActive bool

	highScore  int
	scoreSaved bool
	quitting   bool
}

// NewModel creates a session model. store may be nil; scores are then
// simply not persisted.
func NewModel(gameCfg config.Config, store *storage.Store, cfg core.RuntimeConfig, username string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := input.NewState()

	m := Model{
		game:     game.New(gameCfg, keys, cfg.Seed),
		keys:     keys,
		holds:    newHoldTracker(defaultHoldTTL),
		km:       NewKeyMapper(),
		screen:   core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:    store,
		config:   cfg,
		field:    gameCfg.Field,
		username: username,
		comboBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(comboBarWidth),
		),
	}

	if store != nil {
		if high, err := store.HighScore(username); err == nil {
			m.highScore = high
		}
	}

	return m
}

// playfieldHeight reserves the bottom terminal row for the status line.
func playfieldHeight(screenH int) int {
	return core.Max(1, screenH-1)
}

// Init starts the main tick loop. The loop runs for the whole session; the
// simulation ignores ticks outside the Active state.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case ComboTickMsg:
		return m.handleComboTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch m.km.MapControl(msg) {
	case ControlQuit:
		m.quitting = true
		return m, tea.Quit

	case ControlScreenshot:
		m.saveScreenshot()
		return m, nil

	case ControlStart:
		st := m.game.State()
		if st != game.StateReady && st != game.StateGameOver {
			return m, nil
		}
		// Tear down the old schedule epoch; its pending messages get
		// dropped on arrival.
		m.tickGen++
		m.comboGen++
		m.comboActive = false
		if st == game.StateGameOver {
			// Restarts roll a fresh seed
			m.game.SetSeed(time.Now().UnixNano())
		}
		m.game.Start(now)
		m.scoreSaved = false
		return m, tickCmd(m.config.TickRate, m.tickGen)

	case ControlBack:
		// esc resumes a paused run and otherwise backs out to the title.
		switch m.game.State() {
		case game.StatePaused:
			m.game.Resume()
		case game.StateActive, game.StateGameOver:
			m.game.Stop()
		}
		return m, nil
	}

	if k, ok := m.km.MapMovement(msg); ok {
		m.holds.touch(k, now)
		if m.keys.Press(k) {
			m.game.KeyDown(k, now)
		}
		// An arming press needs the decay loop running; a completing
		// press leaves it to die on its next frame.
		if m.game.ComboArmed() && !m.comboActive {
			m.comboActive = true
			return m, comboTickCmd(m.comboGen)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
// The playfield is virtual; a resize only rescales the viewport and never
// resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	return m, nil
}

// handleTick runs one simulation frame and re-arms the main loop.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen {
		return m, nil
	}

	// Expire held keys before the frame so stale holds don't move the
	// paddle.
	for _, k := range m.holds.expired(msg.Time) {
		m.keys.Release(k)
	}

	m.game.Tick(msg.Time)

	// Save score on game over (once)
	if m.game.State() == game.StateGameOver && !m.scoreSaved {
		score := m.game.Score()
		if m.store != nil && score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.username, score)
		}
		if score > m.highScore {
			m.highScore = score
		}
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// handleComboTick advances the gesture decay and re-arms its loop only
// while the gesture stays armed.
func (m Model) handleComboTick(msg ComboTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.comboGen || !m.comboActive {
		return m, nil
	}

	if m.game.TickCombo(msg.Time) {
		return m, comboTickCmd(m.comboGen)
	}
	m.comboActive = false
	return m, nil
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	drawFrame(m.screen, m.game.Snapshot(), m.field)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".skyfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("skyfall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	drawFrame(m.screen, snap, m.field)

	return RenderScreen(m.screen) + "\n" + statusLine(snap, m.highScore, m.comboBar, m.game.ComboArmed())
}

// Run starts a local terminal session with the given configuration.
func Run(gameCfg config.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, cfg, LocalPlayer)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
