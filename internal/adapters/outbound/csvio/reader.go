package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/railport/railport/internal/domain"
)

// Reader implements domain.TableReader for comma-separated files.
type Reader struct{}

// NewReader creates a Reader.
func NewReader() *Reader { return &Reader{} }

// Read parses the file at path into a header plus rows. Rows are allowed
// to vary in length: short rows leave trailing columns empty, extra cells
// beyond the header are dropped. A file with no usable header is a
// structural failure.
func (r *Reader) Read(path string) (*domain.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, &domain.StructuralError{Reason: "input file is empty"}
	}

	headers := records[0]
	if len(headers) == 0 || (len(headers) == 1 && strings.TrimSpace(headers[0]) == "") {
		return nil, &domain.StructuralError{Reason: "input has no columns"}
	}

	table := &domain.Table{
		Headers: headers,
		Rows:    make([]domain.Row, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make(domain.Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
