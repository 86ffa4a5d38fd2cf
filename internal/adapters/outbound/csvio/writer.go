package csvio

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/railport/railport/internal/domain"
)

// Writer implements domain.TableWriter for the Jira import format.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer { return &Writer{} }

// Write serializes the records to path, fixed header first, one line per
// record in the order given.
func (w *Writer) Write(path string, records []domain.OutputRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.OutputColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record.Values()); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
