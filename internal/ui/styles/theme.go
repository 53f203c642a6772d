package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/unexotica/internal/amiga"
)

// Theme defines the color palette and pre-built styles for the reports.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - headers, cursor
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	BgCursor lipgloss.Color // Selected row
	Border   lipgloss.Color

	// Status colors
	Success lipgloss.Color // Green - split, added
	Error   lipgloss.Color // Red - failed, removed
	Warning lipgloss.Color // Yellow/orange - updated, overridden

	// Per-format label colors
	Kinds map[amiga.Kind]lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Header  lipgloss.Style // Table header
	Cursor  lipgloss.Style // Cursor background highlight
	Panel   lipgloss.Style // Rounded border around the browser
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),
	Border:   lipgloss.Color("#585858"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	Kinds: map[amiga.Kind]lipgloss.Color{
		amiga.KindTFMX: lipgloss.Color("#f472b6"),
		amiga.KindMOD:  lipgloss.Color("#60a5fa"),
		amiga.KindDI:   lipgloss.Color("#34d399"),
		amiga.KindRH:   lipgloss.Color("#fbbf24"),
		amiga.KindDW:   lipgloss.Color("#fb923c"),
		amiga.KindRJP:  lipgloss.Color("#a78bfa"),
		amiga.KindST3:  lipgloss.Color("#22d3ee"),
	},
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// Kind returns the label style for a decoder kind.
func (t *Theme) Kind(k amiga.Kind) lipgloss.Style {
	c, ok := t.Kinds[k]
	if !ok {
		c = t.FgSubtle
	}
	return lipgloss.NewStyle().Foreground(c)
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
