// Package watch implements the live status dashboard.
package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/tante/internal/cli"
	"github.com/xolan/tante/internal/logger"
	"github.com/xolan/tante/internal/report"
	"github.com/xolan/tante/internal/service"
)

// RefreshInterval is how often the dashboard reloads the status.
const RefreshInterval = 30 * time.Second

// Model is the dashboard model
type Model struct {
	services *service.Services
	now      func() time.Time

	width  int
	height int

	status  *service.StatusResult
	message string
	err     error

	palette report.Palette
	styles  Styles
	keys    KeyMap
	help    help.Model
}

// statusMsg carries a freshly loaded status
type statusMsg struct {
	status service.StatusResult
	err    error
}

// actionMsg reports the outcome of a start or stop
type actionMsg struct {
	message string
	err     error
}

// tickMsg triggers the periodic refresh
type tickMsg time.Time

// New creates a dashboard model. now supplies the reference moment.
func New(services *service.Services, now func() time.Time) Model {
	theme := services.Config.Get().Theme
	styles := NewStyles(theme)

	return Model{
		services: services,
		now:      now,
		palette:  report.NewPalette(theme),
		styles:   styles,
		keys:     DefaultKeyMap(),
		help:     newHelp(styles),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatus(), tick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadStatus()
		case key.Matches(msg, m.keys.Start):
			return m, m.startTask()
		case key.Matches(msg, m.keys.Stop):
			return m, m.stopTask()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case statusMsg:
		m.err = msg.err
		if msg.err == nil {
			st := msg.status
			m.status = &st
		}
		return m, nil

	case actionMsg:
		m.message = msg.message
		m.err = msg.err
		return m, m.loadStatus()

	case tickMsg:
		return m, tea.Batch(m.loadStatus(), tick())
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("tante"))
	if m.status != nil {
		b.WriteString(" ")
		b.WriteString(m.styles.Clock.Render(m.status.Now.Format("Mon 02.01.2006 15:04")))
	}
	b.WriteString("\n")

	switch {
	case m.status == nil && m.err == nil:
		b.WriteString("\nLoading...\n")
	case m.status != nil:
		b.WriteString(cli.RenderStatus(*m.status, m.palette))
		if n := len(m.status.Warnings); n > 0 {
			b.WriteString("\n")
			b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d malformed %s skipped today", n, cli.Pluralize("event", n))))
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Message.Render(m.message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.App.Render(b.String())
}

// loadStatus creates a command to load the status
func (m Model) loadStatus() tea.Cmd {
	return func() tea.Msg {
		st, err := m.services.Status.Status(m.now())
		if err != nil {
			logger.Error("failed to load status", "error", err)
		}
		return statusMsg{status: st, err: err}
	}
}

// startTask creates a command that starts the default task now
func (m Model) startTask() tea.Cmd {
	return func() tea.Msg {
		rec, err := m.services.Tracking.Start("", "", m.now())
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{message: cli.FormatStarted(rec)}
	}
}

// stopTask creates a command that stops the running task now
func (m Model) stopTask() tea.Cmd {
	return func() tea.Msg {
		rec, err := m.services.Tracking.Stop("", m.now())
		if err != nil {
			return actionMsg{err: err}
		}
		return actionMsg{message: cli.FormatStopped(rec)}
	}
}

func tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the dashboard
func Run(services *service.Services, now func() time.Time) error {
	p := tea.NewProgram(New(services, now), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
