package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// summarySeparator joins title and identifier in the Summary column.
const summarySeparator = " - "

// DefaultUnknownLabel is applied when a label source value slugs to nothing.
const DefaultUnknownLabel = "other"

// LabelRules controls how the two derived label columns are produced from
// the type and automation-status fields. The default rule slugs the raw
// value; Overrides pins specific raw values to fixed labels; Unknown is
// substituted when a value yields an empty slug.
type LabelRules struct {
	Overrides map[string]string `yaml:"overrides" json:"overrides,omitempty"`
	Unknown   string            `yaml:"unknown"   json:"unknown,omitempty"`
}

// DeriveLabel turns a raw field value into a Jira label.
func (r LabelRules) DeriveLabel(value string) string {
	if label, ok := r.Overrides[value]; ok {
		return label
	}
	if slug := labelSlug(value); slug != "" {
		return slug
	}
	if r.Unknown != "" {
		return r.Unknown
	}
	return DefaultUnknownLabel
}

// labelSlug lower-cases a value into a hyphenated label: camel-case words
// are split and runs of whitespace collapse to single hyphens, so both
// "SmokeTest" and "Smoke Test" become "smoke-test".
func labelSlug(value string) string {
	var words []string
	for _, field := range strings.Fields(value) {
		for _, word := range camelcase.Split(field) {
			word = strings.ToLower(strings.TrimSpace(word))
			if word != "" {
				words = append(words, word)
			}
		}
	}
	return strings.Join(words, "-")
}

// Mapper converts one extracted input row into one output record. It is a
// pure value: the same row and config always map to the same record.
type Mapper struct {
	Specs     []FieldSpec
	Static    StaticConfig
	TypeRules LabelRules
	AutoRules LabelRules
}

// NewMapper builds a Mapper from the resolved project config.
func NewMapper(specs []FieldSpec, static StaticConfig, typeRules, autoRules LabelRules) *Mapper {
	return &Mapper{Specs: specs, Static: static, TypeRules: typeRules, AutoRules: autoRules}
}

// MapRow extracts the row's fields and assembles the full output record:
// the fixed issue type, the derived summary, the static columns, the
// composed description and the label columns. The third label column is
// left empty for manual post-import tagging.
func (m *Mapper) MapRow(row Row) (OutputRecord, error) {
	fields, err := ExtractFields(row, m.Specs)
	if err != nil {
		return OutputRecord{}, err
	}

	identifier := fields[FieldIdentifier]
	title := fields[FieldTitle]

	return OutputRecord{
		IssueType:       IssueTypeTest,
		Summary:         title + summarySeparator + identifier,
		Product:         m.Static.Product,
		Parent:          m.Static.Parent,
		EngineeringTeam: m.Static.EngineeringTeam,
		Description: ComposeDescription(
			identifier,
			fields[FieldOverview],
			fields[FieldPrecond],
			fields[FieldSteps],
			fields[FieldExpected],
		),
		TypeLabel:       m.TypeRules.DeriveLabel(fields[FieldType]),
		AutomationLabel: m.AutoRules.DeriveLabel(fields[FieldAutomation]),
		ExtraLabel:      "",
	}, nil
}
