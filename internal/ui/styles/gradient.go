package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Banner renders text bold with a horizontal gradient between the theme's
// two accent colors.
func (t *Theme) Banner(text string) string {
	return Gradient(text, t.Primary, t.Secondary)
}

// Gradient renders bold text blending from one hex color to another across
// its grapheme clusters. Non-hex colors render in from without blending.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	solid := lipgloss.NewStyle().Bold(true).Foreground(from)
	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if len(clusters) < 2 || err1 != nil || err2 != nil {
		return solid.Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		// HCL keeps the blend perceptually even
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(solid.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}
