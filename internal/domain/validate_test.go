package domain_test

import (
	"strings"
	"testing"

	"github.com/railport/railport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTable_CleanInput(t *testing.T) {
	table := tableOf(numberedRow(1), numberedRow(2))

	result := domain.ValidateTable(table, domain.DefaultConfig())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 2, result.RowCount)
	assert.Equal(t, 8, result.ColumnCount)
}

func TestValidateTable_NoHeader(t *testing.T) {
	result := domain.ValidateTable(&domain.Table{}, domain.DefaultConfig())
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "header")
}

func TestValidateTable_NoDataRows(t *testing.T) {
	result := domain.ValidateTable(tableOf(), domain.DefaultConfig())
	assert.False(t, result.Valid)
}

func TestValidateTable_DuplicateColumns(t *testing.T) {
	table := tableOf(numberedRow(1))
	table.Headers = append(table.Headers, "Title")

	result := domain.ValidateTable(table, domain.DefaultConfig())

	assert.False(t, result.Valid)
	assert.Contains(t, strings.Join(result.Errors, "\n"), "duplicate columns")
}

func TestValidateTable_MissingExpectedColumnsWarns(t *testing.T) {
	table := &domain.Table{
		Headers: []string{"ID", "Title"},
		Rows:    []domain.Row{{"ID": "C1", "Title": "x"}},
	}

	result := domain.ValidateTable(table, domain.DefaultConfig())

	assert.True(t, result.Valid, "missing columns are a warning at validate time")
	assert.Contains(t, strings.Join(result.Warnings, "\n"), "Steps")
}

func TestValidateTable_EmptyRequiredCellsWarn(t *testing.T) {
	bad := numberedRow(2)
	bad["Steps"] = ""
	table := tableOf(numberedRow(1), bad)

	result := domain.ValidateTable(table, domain.DefaultConfig())

	assert.Contains(t, strings.Join(result.Warnings, "\n"), "1 row(s) have empty Steps")
}

func TestValidateTable_DuplicateIdentifiers(t *testing.T) {
	dup := numberedRow(1)
	dup["Title"] = "Different title"
	table := tableOf(numberedRow(1), dup)

	result := domain.ValidateTable(table, domain.DefaultConfig())

	assert.Contains(t, strings.Join(result.Warnings, "\n"), "duplicate identifier")
}

func TestValidateTable_CompletelyEmptyColumn(t *testing.T) {
	row := numberedRow(1)
	table := tableOf(row)
	table.Headers = append(table.Headers, "References")

	result := domain.ValidateTable(table, domain.DefaultConfig())

	assert.Contains(t, strings.Join(result.Warnings, "\n"), `"References" is completely empty`)
}

func TestValidateOutput_LengthLimits(t *testing.T) {
	records := []domain.OutputRecord{
		{Summary: strings.Repeat("x", 300), Description: "ok"},
		{Summary: "ok", Description: strings.Repeat("y", 40000)},
	}

	result := domain.ValidateOutput(records, domain.DefaultConfig())

	assert.False(t, result.Valid)
	joined := strings.Join(result.Errors, "\n")
	assert.Contains(t, joined, "1 summaries exceed 255")
	assert.Contains(t, joined, "1 descriptions exceed 32767")
}

func TestValidateOutput_ZeroDisablesChecks(t *testing.T) {
	records := []domain.OutputRecord{{Summary: strings.Repeat("x", 300)}}
	cfg := domain.ProjectConfig{}

	result := domain.ValidateOutput(records, cfg)
	assert.True(t, result.Valid)
}
