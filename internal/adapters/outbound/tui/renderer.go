package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/railport/railport/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary renders a transform run's counts and per-row failures.
func RenderSummary(inputPath string, result *domain.TransformResult) string {
	var b strings.Builder

	title := headerStyle.Render("railport")
	subtitle := dimStyle.Render(inputPath)
	counts := fmt.Sprintf("%d attempted   %s   %s",
		result.Attempted,
		passStyle.Render(fmt.Sprintf("%d mapped", result.Succeeded)),
		renderFailedCount(result.Failed),
	)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + counts))
	b.WriteString("\n\n")

	if len(result.Failures) > 0 {
		b.WriteString("  " + titleStyle.Render("Skipped rows") + "\n\n")
		for _, failure := range result.Failures {
			b.WriteString(renderFailure(failure))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderFailedCount(failed int) string {
	if failed == 0 {
		return dimStyle.Render("0 skipped")
	}
	return failStyle.Render(fmt.Sprintf("%d skipped", failed))
}

func renderFailure(failure domain.RowFailure) string {
	ref := failure.Identifier
	if ref == "" {
		ref = fmt.Sprintf("row %d", failure.RowIndex+1)
	}
	return fmt.Sprintf("    %s %s  %s\n",
		failStyle.Render("●"),
		titleStyle.Render(ref),
		dimStyle.Render(failure.Reason),
	)
}
