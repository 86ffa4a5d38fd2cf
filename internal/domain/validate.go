package domain

import (
	"fmt"
	"strings"
)

// ValidationResult reports what a validation pass found. Errors make the
// input unfit for import; warnings are survivable but worth a look.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	RowCount    int      `json:"row_count"`
	ColumnCount int      `json:"column_count"`
}

func (r *ValidationResult) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

func (r *ValidationResult) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateTable checks an input table's structure and content against the
// config without mapping anything: shape problems, expected columns,
// blank required cells, duplicate identifiers and titles.
func ValidateTable(table *Table, cfg ProjectConfig) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if table == nil || len(table.Headers) == 0 {
		result.addError("input has no header row")
		return result
	}
	result.RowCount = len(table.Rows)
	result.ColumnCount = len(table.Headers)

	if len(table.Rows) == 0 {
		result.addError("input has no data rows")
	}

	validateHeaders(table, result)

	specs := cfg.FieldSpecs()
	validateColumnPresence(table, specs, result)
	validateRequiredCells(table, specs, result)
	validateDuplicates(table, specs, result)

	return result
}

func validateHeaders(table *Table, result *ValidationResult) {
	seen := make(map[string]bool, len(table.Headers))
	var duplicates []string
	for _, h := range table.Headers {
		if seen[h] {
			duplicates = append(duplicates, h)
		}
		seen[h] = true
	}
	if len(duplicates) > 0 {
		result.addError("duplicate columns found: %s", strings.Join(duplicates, ", "))
	}

	for _, h := range table.Headers {
		empty := true
		for _, row := range table.Rows {
			if strings.TrimSpace(row[h]) != "" {
				empty = false
				break
			}
		}
		if empty && len(table.Rows) > 0 {
			result.addWarning("column %q is completely empty", h)
		}
	}
}

func validateColumnPresence(table *Table, specs []FieldSpec, result *ValidationResult) {
	present := make(map[string]bool, len(table.Headers))
	for _, h := range table.Headers {
		present[h] = true
	}
	var missing []string
	for _, spec := range specs {
		if !present[spec.Column] {
			missing = append(missing, spec.Column)
		}
	}
	if len(missing) > 0 {
		result.addWarning("expected columns not found: %s", strings.Join(missing, ", "))
	}
}

func validateRequiredCells(table *Table, specs []FieldSpec, result *ValidationResult) {
	for _, spec := range specs {
		if !spec.Required {
			continue
		}
		empty := 0
		for _, row := range table.Rows {
			if strings.TrimSpace(row[spec.Column]) == "" {
				empty++
			}
		}
		if empty > 0 {
			result.addWarning("%d row(s) have empty %s", empty, spec.Column)
		}
	}
}

func validateDuplicates(table *Table, specs []FieldSpec, result *ValidationResult) {
	idColumn, titleColumn := "", ""
	for _, spec := range specs {
		switch spec.Logical {
		case FieldIdentifier:
			idColumn = spec.Column
		case FieldTitle:
			titleColumn = spec.Column
		}
	}

	countDuplicates := func(column, what string) {
		seen := make(map[string]bool, len(table.Rows))
		duplicates := 0
		for _, row := range table.Rows {
			value := strings.TrimSpace(row[column])
			if value == "" {
				continue
			}
			if seen[value] {
				duplicates++
			}
			seen[value] = true
		}
		if duplicates > 0 {
			result.addWarning("%d duplicate %s(s) found", duplicates, what)
		}
	}

	countDuplicates(idColumn, "identifier")
	countDuplicates(titleColumn, "title")
}

// ValidateOutput checks mapped records for import compliance: non-empty
// required cells and the Jira length limits on summary and description.
func ValidateOutput(records []OutputRecord, cfg ProjectConfig) *ValidationResult {
	result := &ValidationResult{Valid: true, RowCount: len(records), ColumnCount: len(OutputColumns)}

	longSummaries, longDescriptions := 0, 0
	for _, record := range records {
		if cfg.MaxSummary > 0 && len(record.Summary) > cfg.MaxSummary {
			longSummaries++
		}
		if cfg.MaxDescribe > 0 && len(record.Description) > cfg.MaxDescribe {
			longDescriptions++
		}
	}
	if longSummaries > 0 {
		result.addError("%d summaries exceed %d characters", longSummaries, cfg.MaxSummary)
	}
	if longDescriptions > 0 {
		result.addError("%d descriptions exceed %d characters", longDescriptions, cfg.MaxDescribe)
	}
	return result
}
