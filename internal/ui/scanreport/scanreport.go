// Package scanreport renders the summary printed after a cached scan.
package scanreport

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/unexotica/internal/scan"
	"github.com/llehouerou/unexotica/internal/ui/styles"
)

// DefaultMaxExamples is the number of example paths to show per category.
const DefaultMaxExamples = 3

// Render returns the summary for stats, listing at most maxExamples paths
// per category.
func Render(stats *scan.Stats, maxExamples int) string {
	if stats == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.T().S().Title.Render("Scan Complete"))
	sb.WriteString("\n\n")

	// Sort roots for consistent output
	roots := make([]string, 0, len(stats.ByRoot))
	for root := range stats.ByRoot {
		roots = append(roots, root)
	}
	sort.Strings(roots)

	t := styles.T()
	for i, root := range roots {
		if i > 0 {
			sb.WriteString("\n")
		}

		rs := stats.ByRoot[root]
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(root))
		sb.WriteString("\n")

		hasChanges := len(rs.Added) > 0 || len(rs.Removed) > 0 || len(rs.Updated) > 0 || len(rs.Failed) > 0
		if !hasChanges {
			sb.WriteString("  ")
			sb.WriteString(t.S().Subtle.Render(fmt.Sprintf("No changes (%d unchanged)", rs.Unchanged)))
			sb.WriteString("\n")
			continue
		}

		renderCategory(&sb, "Added", rs.Added, t.Success, maxExamples)
		renderCategory(&sb, "Updated", rs.Updated, t.Warning, maxExamples)
		renderCategory(&sb, "Removed", rs.Removed, t.Error, maxExamples)
		renderCategory(&sb, "Failed", rs.Failed, t.Error, maxExamples)
	}

	total := stats.Total()
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", 40))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf(
		"Total: %d added, %d updated, %d removed, %d failed, %d unchanged",
		len(total.Added), len(total.Updated), len(total.Removed), len(total.Failed), total.Unchanged)))

	return sb.String()
}

func renderCategory(sb *strings.Builder, label string, paths []string, color lipgloss.Color, maxExamples int) {
	if len(paths) == 0 {
		return
	}
	sb.WriteString("  ")
	sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s: %d", label, len(paths))))
	sb.WriteString("\n")

	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	dimStyle := styles.T().S().Subtle
	for i, path := range sorted {
		if i >= maxExamples {
			sb.WriteString("    ")
			sb.WriteString(dimStyle.Render(fmt.Sprintf("... and %d more", len(sorted)-maxExamples)))
			sb.WriteString("\n")
			break
		}
		sb.WriteString("    • ")
		sb.WriteString(dimStyle.Render(path))
		sb.WriteString("\n")
	}
}
