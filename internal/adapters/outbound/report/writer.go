package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/railport/railport/internal/domain"
)

// Writer persists validation results as a plain-text report file.
type Writer struct{}

// New creates a report Writer.
func New() *Writer { return &Writer{} }

// Write renders the input and output validation halves to path.
func (w *Writer) Write(path string, input, output *domain.ValidationResult) error {
	return os.WriteFile(path, []byte(w.render(input, output)), 0o644)
}

func (w *Writer) render(input, output *domain.ValidationResult) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	b.WriteString("CSV TRANSFORMATION VALIDATION REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	b.WriteString("INPUT DATA VALIDATION:\n")
	fmt.Fprintf(&b, "  Status: %s\n", status(input.Valid))
	fmt.Fprintf(&b, "  Rows: %d\n", input.RowCount)
	fmt.Fprintf(&b, "  Columns: %d\n", input.ColumnCount)
	writeFindings(&b, input)

	b.WriteString("\nOUTPUT DATA VALIDATION:\n")
	fmt.Fprintf(&b, "  Status: %s\n", status(output.Valid))
	fmt.Fprintf(&b, "  Import Ready: %s\n", yesNo(output.Valid))
	writeFindings(&b, output)

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

func writeFindings(b *strings.Builder, result *domain.ValidationResult) {
	if len(result.Errors) > 0 {
		b.WriteString("  Errors:\n")
		for _, e := range result.Errors {
			fmt.Fprintf(b, "    - %s\n", e)
		}
	}
	if len(result.Warnings) > 0 {
		b.WriteString("  Warnings:\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(b, "    - %s\n", w)
		}
	}
}

func status(valid bool) string {
	if valid {
		return "PASS"
	}
	return "FAIL"
}

func yesNo(valid bool) string {
	if valid {
		return "YES"
	}
	return "NO"
}
