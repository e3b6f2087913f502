package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/report"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/scan"
)

// Messages for async operations
type sweepStartMsg struct{}
type sweepDoneMsg struct {
	table    string
	networks int
	took     time.Duration
	err      error
}
type countdownTickMsg time.Time

// watchKeyMap defines key bindings while the screen is idle between sweeps
type watchKeyMap struct {
	Sweep key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sweep, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sweep, k.Quit},
	}
}

// sweepingKeyMap defines key bindings while a sweep is in flight
type sweepingKeyMap struct {
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (s sweepingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{s.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (s sweepingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{s.Quit},
	}
}

// Model represents the live survey screen state
type Model struct {
	driver   scan.Driver
	cfg      scan.Config
	interval time.Duration

	// Sweep state
	scanning   bool
	table      string // last rendered survey table
	sweeps     int    // completed sweep count
	took       time.Duration
	nextIn     int // seconds until the next sweep starts
	err        error
	sweepStart time.Time

	// UI state
	width   int
	height  int
	spinner spinner.Model
	help    help.Model
	keys    watchKeyMap
	busy    sweepingKeyMap
}

// NewModel creates a live survey screen that sweeps with the given driver
// and configuration, waiting interval between sweeps. The countdown ticks in
// whole seconds; sub-second intervals round up to one.
func NewModel(driver scan.Driver, cfg scan.Config, interval time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	h := help.New()

	keys := watchKeyMap{
		Sweep: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sweep now"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	busy := sweepingKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	return Model{
		driver:   driver,
		cfg:      cfg,
		interval: interval,
		spinner:  s,
		help:     h,
		keys:     keys,
		busy:     busy,
	}
}

// Err returns the driver failure that ended the session, if any. The caller
// reports it after the program exits; failures are not retried.
func (m Model) Err() error {
	return m.err
}

// Init starts the first sweep immediately
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return sweepStartMsg{} },
		m.sweep(),
		m.spinner.Tick,
	)
}

// sweep returns a command that runs one blocking scan cycle and reports the
// rendered table. The result set is released before the message is sent.
func (m Model) sweep() tea.Cmd {
	driver := m.driver
	cfg := m.cfg
	return func() tea.Msg {
		start := time.Now()
		if err := driver.Scan(context.Background(), cfg); err != nil {
			return sweepDoneMsg{err: err}
		}
		set, err := driver.Records()
		if err != nil {
			return sweepDoneMsg{err: err}
		}
		defer set.Release()
		return sweepDoneMsg{
			table:    report.FormatTable(set.Records()),
			networks: set.Len(),
			took:     time.Since(start),
		}
	}
}

// countdown schedules the next one-second countdown tick
func countdown() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// countdownSeconds converts the sweep interval to whole countdown seconds
func countdownSeconds(interval time.Duration) int {
	secs := int((interval + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "s":
			if !m.scanning {
				return m, tea.Batch(
					func() tea.Msg { return sweepStartMsg{} },
					m.sweep(),
					m.spinner.Tick,
				)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case sweepStartMsg:
		m.scanning = true
		m.sweepStart = time.Now()

	case sweepDoneMsg:
		m.scanning = false
		if msg.err != nil {
			// Driver failures end the session; the caller reports them.
			m.err = msg.err
			return m, tea.Quit
		}
		m.table = msg.table
		m.took = msg.took
		m.sweeps++
		m.nextIn = countdownSeconds(m.interval)
		return m, countdown()

	case countdownTickMsg:
		// A sweep started early ends the countdown chain.
		if m.scanning {
			return m, nil
		}
		m.nextIn--
		if m.nextIn <= 0 {
			return m, tea.Batch(
				func() tea.Msg { return sweepStartMsg{} },
				m.sweep(),
				m.spinner.Tick,
			)
		}
		return m, countdown()

	case spinner.TickMsg:
		if m.scanning {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, cmd
}

// View renders the live survey screen
func (m Model) View() string {
	width := m.width
	if width == 0 {
		width = MinTerminalWidth
	}

	var content string
	switch {
	case m.err != nil:
		content = m.renderFailure()
	case m.table == "":
		content = m.renderFirstSweep(width)
	default:
		content = m.renderSurvey()
	}

	var helpText string
	if m.scanning {
		helpText = m.help.View(m.busy)
	} else {
		helpText = m.help.View(m.keys)
	}

	return RenderFrame(content, helpText, m.width, m.height)
}

// renderFirstSweep renders a centered banner while the first sweep runs and
// no table exists yet
func (m Model) renderFirstSweep(width int) string {
	elapsed := int(time.Since(m.sweepStart).Seconds())

	title := fmt.Sprintf("%s SWEEPING CHANNELS", m.spinner.View())
	subtitle := "Scanning nearby 802.11 networks..."
	elapsedText := fmt.Sprintf("Elapsed: %ds", elapsed)

	content := lipgloss.JoinVertical(lipgloss.Center,
		"", // Top spacing
		TitleStyle.Render(title),
		"",
		SubtitleStyle.Render(subtitle),
		"",
		SubtitleStyle.Render(elapsedText),
		"", // Bottom spacing
	)

	return lipgloss.Place(width, 0, lipgloss.Center, lipgloss.Top, content)
}

// renderSurvey renders the status line and the latest survey table
func (m Model) renderSurvey() string {
	var b strings.Builder

	b.WriteString("\n")

	if m.scanning {
		b.WriteString("  ")
		b.WriteString(StatusStyle.Render(fmt.Sprintf("%s Sweeping channels...", m.spinner.View())))
	} else {
		b.WriteString("  ")
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Sweep %d finished in %s", m.sweeps, m.took.Round(time.Millisecond))))
		b.WriteString("  ")
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("next sweep in %ds", m.nextIn)))
	}

	b.WriteString("\n\n")
	b.WriteString(m.table)

	return b.String()
}

// renderFailure renders the terminal frame shown while the program shuts
// down after a driver failure
func (m Model) renderFailure() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(RenderError(fmt.Sprintf("Sweep failed: %v", m.err)))
	b.WriteString("\n")

	return b.String()
}
