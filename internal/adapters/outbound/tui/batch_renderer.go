package tui

import (
	"fmt"
	"strings"

	"github.com/railport/railport/internal/application"
)

// RenderBatch renders a per-file batch summary.
func RenderBatch(summary *application.BatchSummary) string {
	var b strings.Builder

	title := headerStyle.Render("railport batch")
	failed := dimStyle.Render("0 failed")
	if summary.Failed > 0 {
		failed = failStyle.Render(fmt.Sprintf("%d failed", summary.Failed))
	}
	counts := fmt.Sprintf("%s   %s",
		passStyle.Render(fmt.Sprintf("%d converted", summary.Succeeded)),
		failed,
	)
	b.WriteString(boxStyle.Render(title + "\n\n" + counts))
	b.WriteString("\n\n")

	for _, outcome := range summary.Outcomes {
		if outcome.Error != "" {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				failStyle.Render("●"),
				titleStyle.Render(outcome.Input),
				dimStyle.Render(outcome.Error)))
			continue
		}
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			passStyle.Render("●"),
			titleStyle.Render(outcome.Input),
			dimStyle.Render(fmt.Sprintf("%d/%d rows → %s",
				outcome.Result.Succeeded, outcome.Result.Attempted, outcome.Output))))
	}

	return b.String()
}
