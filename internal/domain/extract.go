package domain

import "strings"

// Logical field names used by the row mapper. Source column names vary per
// TestRail project; these do not.
const (
	FieldIdentifier = "identifier"
	FieldTitle      = "title"
	FieldType       = "type"
	FieldAutomation = "automation"
	FieldOverview   = "overview"
	FieldPrecond    = "preconditions"
	FieldSteps      = "steps"
	FieldExpected   = "expected"
)

// FieldSpec binds one logical field to its source column.
type FieldSpec struct {
	Logical  string
	Column   string
	Required bool
	Default  string
}

// DefaultFieldSpecs maps logical fields to the column names of a stock
// TestRail CSV export. Overridable via the columns section of the config.
func DefaultFieldSpecs() []FieldSpec {
	return []FieldSpec{
		{Logical: FieldIdentifier, Column: "ID", Required: true},
		{Logical: FieldTitle, Column: "Title", Required: true},
		{Logical: FieldType, Column: "Type", Required: true},
		{Logical: FieldAutomation, Column: "Automation Type", Required: true},
		{Logical: FieldOverview, Column: "Overview", Required: true},
		{Logical: FieldPrecond, Column: "Preconditions", Required: true},
		{Logical: FieldSteps, Column: "Steps", Required: true},
		{Logical: FieldExpected, Column: "Expected Result", Required: true},
	}
}

// ExtractFields resolves every spec against one row. Values are trimmed at
// the edges only; interior whitespace and newlines (multi-line step text)
// pass through untouched. A required column that is absent or blank yields
// a MissingFieldError naming the record and the column.
func ExtractFields(row Row, specs []FieldSpec) (map[string]string, error) {
	// Resolve the identifier first so errors on other fields can name it.
	identifier := ""
	for _, spec := range specs {
		if spec.Logical == FieldIdentifier {
			identifier = strings.TrimSpace(row[spec.Column])
		}
	}

	fields := make(map[string]string, len(specs))
	for _, spec := range specs {
		value := strings.TrimSpace(row[spec.Column])
		if value == "" {
			if spec.Required {
				return nil, &MissingFieldError{Identifier: identifier, Column: spec.Column}
			}
			value = spec.Default
		}
		fields[spec.Logical] = value
	}
	return fields, nil
}

// CheckColumns verifies that every required source column exists in the
// table header, surfacing all missing columns at once before any row is
// processed. Absence of a required column is structural, not row-local.
func CheckColumns(headers []string, specs []FieldSpec) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, spec := range specs {
		if spec.Required && !present[spec.Column] {
			missing = append(missing, spec.Column)
		}
	}
	if len(missing) > 0 {
		return &StructuralError{
			Reason: "required columns not found in header: " + strings.Join(missing, ", "),
		}
	}
	return nil
}
