package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/railport/railport/internal/domain"
)

var cellStyle = lipgloss.NewStyle().Foreground(fg)

// previewCellWidth truncates long cells (descriptions) to keep the preview
// table readable.
const previewCellWidth = 28

// RenderPreview renders the first and last rows of a mapped batch plus
// per-column fill statistics, without anything being written to disk.
func RenderPreview(result *domain.TransformResult, rows int) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("Transformation preview") + "\n")
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("%d row(s) mapped, %d skipped", result.Succeeded, result.Failed)) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	if rows <= 0 {
		rows = 5
	}

	head, tail := splitPreview(result.Records, rows)
	renderRecords(&b, "First rows", head)
	if len(tail) > 0 {
		b.WriteString("\n")
		renderRecords(&b, "Last rows", tail)
	}

	b.WriteString("\n  " + titleStyle.Render("Column fill") + "\n\n")
	for i, column := range domain.OutputColumns {
		nonEmpty := 0
		for _, record := range result.Records {
			if record.Values()[i] != "" {
				nonEmpty++
			}
		}
		b.WriteString(fmt.Sprintf("    %s %d/%d non-empty\n",
			dimStyle.Render(fmt.Sprintf("%-22s", column)),
			nonEmpty, len(result.Records)))
	}

	return b.String()
}

func splitPreview(records []domain.OutputRecord, rows int) (head, tail []domain.OutputRecord) {
	if len(records) <= rows {
		return records, nil
	}
	head = records[:rows]
	start := len(records) - rows
	if start < rows {
		start = rows
	}
	return head, records[start:]
}

func renderRecords(b *strings.Builder, title string, records []domain.OutputRecord) {
	if len(records) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render(title) + "\n\n")
	for _, record := range records {
		b.WriteString(fmt.Sprintf("    %s %s  %s  %s\n",
			passStyle.Render("●"),
			cellStyle.Render(clip(record.Summary)),
			dimStyle.Render(clip(record.TypeLabel)),
			dimStyle.Render(clip(record.AutomationLabel)),
		))
	}
}

func clip(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= previewCellWidth {
		return s
	}
	return s[:previewCellWidth-1] + "…"
}
