package domain

import "strings"

// sectionSeparator is Jira wiki markup for a horizontal rule.
const sectionSeparator = "----"

// section is one labeled block of the composed description.
type section struct {
	header string
	body   string
}

// ComposeDescription assembles the multi-section Jira description for one
// test case. The section headers are Jira wiki bold markup and must reach
// the importer verbatim; bodies pass through with no escaping, reformatting
// or truncation. Empty bodies still get their section. Deterministic: the
// same five inputs always produce the same string.
func ComposeDescription(identifier, overview, preconditions, steps, expected string) string {
	sections := []section{
		{header: "Overview", body: overview},
		{header: "Preconditions", body: preconditions},
		{header: "Steps", body: steps},
		{header: "Expected Result", body: expected},
	}

	var b strings.Builder
	b.WriteString(identifier)
	b.WriteString("\n")
	for i, s := range sections {
		b.WriteString("\n*")
		b.WriteString(s.header)
		b.WriteString("*\n")
		b.WriteString(s.body)
		if i < len(sections)-1 {
			b.WriteString("\n")
			b.WriteString(sectionSeparator)
			b.WriteString("\n")
		}
	}
	return b.String()
}
