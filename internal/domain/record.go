package domain

// Row is one input record: source column name to raw cell value.
type Row map[string]string

// Table is a parsed delimited input file: a header plus one Row per line.
type Table struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// OutputColumns is the fixed Jira/Zephyr import header. Three label columns
// share the same name, so output records are structs rather than maps.
var OutputColumns = []string{
	"Issue Type", "Summary", "Product(s) Affected", "Parent",
	"Engineering Team", "Description", "Labels", "Labels", "Labels",
}

// IssueTypeTest is the issue type written into every output record.
const IssueTypeTest = "Test"

// OutputRecord is one Jira/Zephyr import row. Column order is fixed and
// identical across all records of a run.
type OutputRecord struct {
	IssueType       string `json:"issue_type"`
	Summary         string `json:"summary"`
	Product         string `json:"product"`
	Parent          string `json:"parent"`
	EngineeringTeam string `json:"engineering_team"`
	Description     string `json:"description"`
	TypeLabel       string `json:"type_label"`
	AutomationLabel string `json:"automation_label"`
	ExtraLabel      string `json:"extra_label"`
}

// Values returns the record's cells in OutputColumns order.
func (r OutputRecord) Values() []string {
	return []string{
		r.IssueType, r.Summary, r.Product, r.Parent,
		r.EngineeringTeam, r.Description,
		r.TypeLabel, r.AutomationLabel, r.ExtraLabel,
	}
}

// StaticConfig holds the per-run constants copied verbatim into every
// output record. Supplied by configuration, never derived from input.
type StaticConfig struct {
	Product         string `yaml:"product"          json:"product"`
	Parent          string `yaml:"parent"           json:"parent"`
	EngineeringTeam string `yaml:"engineering_team" json:"engineering_team"`
}

// RowFailure records one row-local mapping failure.
type RowFailure struct {
	Identifier string `json:"identifier,omitempty"`
	RowIndex   int    `json:"row_index"`
	Reason     string `json:"reason"`
}

// TransformResult pairs the successfully mapped records of a batch with
// the failures accumulated along the way.
type TransformResult struct {
	Records   []OutputRecord `json:"records,omitempty"`
	Failures  []RowFailure   `json:"failures,omitempty"`
	Attempted int            `json:"attempted"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
}
