// Package tui provides a Bubble Tea terminal user interface for rekonise-unlocker.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/rekonise-unlocker/internal/config"
	"github.com/handiism/rekonise-unlocker/internal/resolve"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateResolving
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   resolve.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	links     []string
	results   []resolve.Result
	err       error

	// Resolution context
	ctx    context.Context
	cancel context.CancelFunc

	// Resolve manager reference
	manager *resolve.Manager

	// Progress events from manager workers, drained on tick
	events chan resolve.ProgressEvent

	// Resolution progress
	completedLinks int32
	failedLinks    int32
	totalLinks     int32

	// Options
	failFast bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "https://rkns.link/abc12 or links.txt"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	settings := config.DefaultSettings()

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		events:    make(chan resolve.ProgressEvent, 256),
		failFast:  settings.FailFast,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// LoadDoneMsg is sent when link loading completes.
	LoadDoneMsg struct {
		Links   []string
		Manager *resolve.Manager
		Err     error
	}

	// ResolveDoneMsg is sent when all resolutions complete.
	ResolveDoneMsg struct {
		Results   []resolve.Result
		Completed int32
		Failed    int32
		Total     int32
		Err       error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateResolving || m.state == StateLoading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateLoading
				return m, tea.Batch(m.loadLinks(), m.spinner.Tick)
			}

		case "f":
			if m.state == StateInput {
				m.failFast = !m.failFast
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new resolution
				m.state = StateInput
				m.logs = nil
				m.links = nil
				m.results = nil
				m.err = nil
				m.completedLinks = 0
				m.failedLinks = 0
				m.totalLinks = 0
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.links = msg.Links
			m.manager = msg.Manager
			m.state = StateResolving
			// Start resolving and tick for progress updates
			cmds = append(cmds, m.startResolve(), m.tickProgress())
		}

	case ResolveDoneMsg:
		m.completedLinks = msg.Completed
		m.failedLinks = msg.Failed
		m.totalLinks = msg.Total
		m.results = msg.Results
		m.drainEvents()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from manager
		if m.manager != nil && m.state == StateResolving {
			completed, failed, total := m.manager.GetProgress()
			m.completedLinks = completed
			m.failedLinks = failed
			m.totalLinks = total
			m.drainEvents()

			// Calculate percentage and animate progress bar
			var percent float64
			if total > 0 {
				percent = float64(completed) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// drainEvents moves buffered progress events into the visible log.
func (m *Model) drainEvents() {
	for {
		select {
		case event := <-m.events:
			// Filter verbose messages if not in verbose mode
			if event.Level == resolve.LevelVerbose && !m.verbose {
				continue
			}
			m.logs = append(m.logs, LogEntry{
				Message: event.Message,
				Level:   event.Level,
			})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		default:
			return
		}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🔓 Rekonise Unlocker"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Resolve Rekonise links into download URLs"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateResolving:
		b.WriteString(m.viewResolving())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a Rekonise link or a links file path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	failFastCheck := "[ ]"
	if m.failFast {
		failFastCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Stop at first failure (f)\n", failFastCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Workers: %d | Timeout: %ds", m.settings.Workers(), m.settings.RequestTimeoutSeconds)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading links..."))
	b.WriteString("\n\n")

	// Show logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewResolving() string {
	var b strings.Builder

	// Links found
	if len(m.links) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Resolving %d link(s):", len(m.links))))
		b.WriteString("\n")
		shown := m.links
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, link := range shown {
			b.WriteString(linkStyle.Render(fmt.Sprintf("  🔗 %s", link)))
			b.WriteString("\n")
		}
		if rest := len(m.links) - len(shown); rest > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", rest)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Progress bar
	var percent float64
	if m.totalLinks > 0 {
		percent = float64(m.completedLinks) / float64(m.totalLinks)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Links: %d/%d | Failed: %d",
		m.completedLinks,
		m.totalLinks,
		m.failedLinks,
	)))
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Resolution Complete!\n\n"+
			"Links: %d\n"+
			"Resolved: %d\n"+
			"Failed: %d",
		m.totalLinks,
		m.totalLinks-m.failedLinks,
		m.failedLinks,
	))
	b.WriteString(box)
	b.WriteString("\n\n")

	for _, result := range m.results {
		if result.Failed() {
			b.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", result.Record.Name, result.Err)))
		} else {
			b.WriteString(successStyle.Render(fmt.Sprintf("✓ %s: %s", result.Record.Name, result.Record.DownloadURL)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case resolve.LevelError:
			style = errorStyle
			prefix = "✗"
		case resolve.LevelWarning:
			style = warningStyle
			prefix = "!"
		case resolve.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case resolve.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • f: fail fast • v: verbose • esc: quit"
	case StateLoading, StateResolving:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new resolution • q: quit"
	}
	return ""
}

// loadLinks reads the input as a single link or a links file and
// creates the manager.
func (m *Model) loadLinks() tea.Cmd {
	return func() tea.Msg {
		input := strings.TrimSpace(m.textInput.Value())

		// Apply options
		settings := m.settings
		settings.FailFast = m.failFast

		// Create manager with progress callback feeding the event buffer
		manager := resolve.NewManager(settings, m.emitProgress)

		if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
			manager.LoadLink(input)
		} else if err := manager.LoadFile(input); err != nil {
			return LoadDoneMsg{Err: err}
		}

		links := manager.GetLinkNames()
		if len(links) == 0 {
			return LoadDoneMsg{Err: fmt.Errorf("no links found in %s", input)}
		}

		return LoadDoneMsg{
			Links:   links,
			Manager: manager,
			Err:     nil,
		}
	}
}

// emitProgress feeds manager events into the buffer without blocking
// the workers. The buffer is drained on the UI tick.
func (m Model) emitProgress(event resolve.ProgressEvent) {
	select {
	case m.events <- event:
	default:
	}
}

// startResolve starts the actual resolution in background.
func (m *Model) startResolve() tea.Cmd {
	return func() tea.Msg {
		if m.manager == nil {
			return ResolveDoneMsg{Err: fmt.Errorf("no manager")}
		}

		results, err := m.manager.ResolveAll(m.ctx)
		completed, failed, total := m.manager.GetProgress()

		return ResolveDoneMsg{
			Results:   results,
			Completed: completed,
			Failed:    failed,
			Total:     total,
			Err:       err,
		}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
