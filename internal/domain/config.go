package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidLogicalFields enumerates the logical field names the mapper consumes.
var ValidLogicalFields = []string{
	FieldIdentifier, FieldTitle, FieldType, FieldAutomation,
	FieldOverview, FieldPrecond, FieldSteps, FieldExpected,
}

// ProjectConfig holds a run's configuration: source column overrides, the
// static values stamped into every output row, and the label derivation
// rules. Loaded from .railport.yaml; zero value means stock TestRail
// columns with no static values.
type ProjectConfig struct {
	Columns      map[string]string `yaml:"columns"       json:"columns,omitempty"`
	Static       StaticConfig      `yaml:"static_values" json:"static_values"`
	TypeLabels   LabelRules        `yaml:"type_labels"   json:"type_labels,omitempty"`
	AutoLabels   LabelRules        `yaml:"automation_labels" json:"automation_labels,omitempty"`
	Optional     []string          `yaml:"optional_fields"   json:"optional_fields,omitempty"`
	MaxSummary   int               `yaml:"max_summary_length"     json:"max_summary_length,omitempty"`
	MaxDescribe  int               `yaml:"max_description_length" json:"max_description_length,omitempty"`
}

// DefaultConfig returns a config that maps a stock TestRail export.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		MaxSummary:  255,
		MaxDescribe: 32767,
	}
}

// Validate checks the config for typos and contradictions before any row
// is touched.
func (c ProjectConfig) Validate() error {
	for logical, column := range c.Columns {
		if !isLogicalField(logical) {
			return fmt.Errorf("unknown logical field %q in columns (valid: %s)",
				logical, strings.Join(ValidLogicalFields, ", "))
		}
		if strings.TrimSpace(column) == "" {
			return fmt.Errorf("columns.%s maps to an empty column name", logical)
		}
	}

	for _, logical := range c.Optional {
		if !isLogicalField(logical) {
			return fmt.Errorf("unknown logical field %q in optional_fields", logical)
		}
		// The summary and the failure reports cannot be built without these.
		if logical == FieldIdentifier || logical == FieldTitle {
			return fmt.Errorf("%s cannot be optional", logical)
		}
	}

	if c.MaxSummary < 0 {
		return fmt.Errorf("max_summary_length must be >= 0 (got %d)", c.MaxSummary)
	}
	if c.MaxDescribe < 0 {
		return fmt.Errorf("max_description_length must be >= 0 (got %d)", c.MaxDescribe)
	}
	return nil
}

// FieldSpecs resolves the effective field-spec table: stock TestRail
// columns, overlaid with the config's column overrides and optional list.
func (c ProjectConfig) FieldSpecs() []FieldSpec {
	optional := make(map[string]bool, len(c.Optional))
	for _, logical := range c.Optional {
		optional[logical] = true
	}

	specs := DefaultFieldSpecs()
	for i, spec := range specs {
		if column, ok := c.Columns[spec.Logical]; ok {
			specs[i].Column = column
		}
		if optional[spec.Logical] {
			specs[i].Required = false
		}
	}
	return specs
}

// Mapper builds the row mapper for this config.
func (c ProjectConfig) Mapper() *Mapper {
	return NewMapper(c.FieldSpecs(), c.Static, c.TypeLabels, c.AutoLabels)
}

// SourceColumns lists the effective source column names, sorted, for
// diagnostics.
func (c ProjectConfig) SourceColumns() []string {
	specs := c.FieldSpecs()
	columns := make([]string, 0, len(specs))
	for _, spec := range specs {
		columns = append(columns, spec.Column)
	}
	sort.Strings(columns)
	return columns
}

func isLogicalField(name string) bool {
	for _, f := range ValidLogicalFields {
		if f == name {
			return true
		}
	}
	return false
}
