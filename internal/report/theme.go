package report

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used when none is configured or the configured one is unknown.
const DefaultTheme = "dracula"

// NewThemeRegistry returns a bubbletint registry switched to theme.
// Unknown theme names leave the registry on DefaultTheme.
func NewThemeRegistry(theme string) *tint.Registry {
	allTints := tint.DefaultTints()

	var defaultTint tint.Tint
	for _, t := range allTints {
		if t.ID() == DefaultTheme {
			defaultTint = t
			break
		}
	}
	if defaultTint == nil && len(allTints) > 0 {
		defaultTint = allTints[0]
	}

	registry := tint.NewRegistry(defaultTint, allTints...)
	if theme != "" {
		registry.SetTintID(theme)
	}
	return registry
}

// AvailableThemes returns the sorted IDs of all bundled themes.
func AvailableThemes() []string {
	ids := NewThemeRegistry("").TintIDs()
	sort.Strings(ids)
	return ids
}

// IsKnownTheme reports whether theme names a bundled theme.
func IsKnownTheme(theme string) bool {
	for _, id := range AvailableThemes() {
		if id == theme {
			return true
		}
	}
	return false
}

// Palette holds the colours used for glyphs, bars and headings.
type Palette struct {
	// Tasks colours the 1st..7th known task of a colour map, cycling after that.
	Tasks []lipgloss.TerminalColor
	// Idle colours empty buckets on weekdays [0] and weekend days [1].
	Idle [2]lipgloss.TerminalColor
	// Header alternates behind the hour ruler.
	Header [2]lipgloss.TerminalColor

	Ink     lipgloss.TerminalColor
	Paper   lipgloss.TerminalColor
	Weekend lipgloss.TerminalColor
	Alert   lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
}

// NewPalette maps the colours of theme onto the report palette.
func NewPalette(theme string) Palette {
	r := NewThemeRegistry(theme)
	return Palette{
		Tasks: []lipgloss.TerminalColor{
			r.BrightRed(),
			r.BrightPurple(),
			r.Yellow(),
			r.Green(),
			r.Purple(),
			r.Cyan(),
			r.BrightBlack(),
		},
		Idle:    [2]lipgloss.TerminalColor{r.White(), r.Yellow()},
		Header:  [2]lipgloss.TerminalColor{r.Cyan(), r.BrightCyan()},
		Ink:     r.Black(),
		Paper:   r.White(),
		Weekend: r.Yellow(),
		Alert:   r.Red(),
		Accent:  r.Purple(),
		Muted:   r.BrightBlack(),
	}
}

// taskColor returns the colour of a 1-based task index.
func (p Palette) taskColor(index int) lipgloss.TerminalColor {
	return p.Tasks[(index-1)%len(p.Tasks)]
}
