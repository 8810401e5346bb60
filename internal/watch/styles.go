package watch

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/tante/internal/report"
)

// Styles contains the styles used by the dashboard
type Styles struct {
	App     lipgloss.Style
	Title   lipgloss.Style
	Clock   lipgloss.Style
	Message lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewStyles maps the colours of theme onto dashboard elements:
// Purple for the title, Cyan for keys, BrightBlack for muted text,
// Green/Yellow/Red for messages, warnings and errors.
func NewStyles(theme string) Styles {
	r := report.NewThemeRegistry(theme)
	primary := r.Purple()
	secondary := r.Cyan()
	muted := r.BrightBlack()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Clock: lipgloss.NewStyle().
			Foreground(muted),
		Message: lipgloss.NewStyle().
			Foreground(r.Green()),
		Warning: lipgloss.NewStyle().
			Foreground(r.Yellow()),
		Error: lipgloss.NewStyle().
			Foreground(r.Red()),
		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),
	}
}

// newHelp returns a help model drawn with s.
func newHelp(s Styles) help.Model {
	h := help.New()
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc
	return h
}
