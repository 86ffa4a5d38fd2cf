package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railport/railport/internal/adapters/outbound/report"
	"github.com/railport/railport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_RendersBothHalves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	input := &domain.ValidationResult{
		Valid:    false,
		Errors:   []string{"duplicate columns found: Title"},
		Warnings: []string{"2 row(s) have empty Steps"},
		RowCount: 10, ColumnCount: 8,
	}
	output := &domain.ValidationResult{Valid: true, RowCount: 8, ColumnCount: 9}

	require.NoError(t, report.New().Write(path, input, output))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "CSV TRANSFORMATION VALIDATION REPORT")
	assert.Contains(t, text, "INPUT DATA VALIDATION:")
	assert.Contains(t, text, "Status: FAIL")
	assert.Contains(t, text, "- duplicate columns found: Title")
	assert.Contains(t, text, "- 2 row(s) have empty Steps")
	assert.Contains(t, text, "OUTPUT DATA VALIDATION:")
	assert.Contains(t, text, "Import Ready: YES")
	assert.Contains(t, text, "Rows: 10")
}

func TestWriter_CleanResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	clean := &domain.ValidationResult{Valid: true}

	require.NoError(t, report.New().Write(path, clean, clean))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Errors:")
	assert.NotContains(t, string(data), "Warnings:")
}
