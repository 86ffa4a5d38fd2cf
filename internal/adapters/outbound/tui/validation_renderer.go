package tui

import (
	"fmt"
	"strings"

	"github.com/railport/railport/internal/domain"
)

// RenderValidation renders a validation result with its errors and warnings.
func RenderValidation(inputPath string, result *domain.ValidationResult) string {
	var b strings.Builder

	verdict := passStyle.Render("PASS")
	if !result.Valid {
		verdict = failStyle.Render("FAIL")
	}

	title := headerStyle.Render("railport validate")
	subtitle := dimStyle.Render(inputPath)
	stats := fmt.Sprintf("%s   %d rows   %d columns", verdict, result.RowCount, result.ColumnCount)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + stats))
	b.WriteString("\n\n")

	renderFindings(&b, "Errors", result.Errors, failStyle.Render("●"))
	renderFindings(&b, "Warnings", result.Warnings, warnStyle.Render("●"))

	if result.Valid && len(result.Warnings) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	}

	return b.String()
}

func renderFindings(b *strings.Builder, title string, findings []string, bullet string) {
	if len(findings) == 0 {
		return
	}
	b.WriteString("  " + titleStyle.Render(title) + "  " + dimStyle.Render(fmt.Sprintf("(%d)", len(findings))) + "\n\n")
	for _, finding := range findings {
		b.WriteString(fmt.Sprintf("    %s %s\n", bullet, finding))
	}
	b.WriteString("\n")
}
