package domain

// TableReader parses one delimited input file into a Table.
type TableReader interface {
	Read(path string) (*Table, error)
}

// TableWriter serializes mapped records, header first, in column order.
type TableWriter interface {
	Write(path string, records []OutputRecord) error
}

// ConfigLoader resolves the project configuration for a run.
type ConfigLoader interface {
	Load(path string) (ProjectConfig, error)
}

// ReportWriter persists a validation report.
type ReportWriter interface {
	Write(path string, input, output *ValidationResult) error
}
