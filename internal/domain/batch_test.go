package domain_test

import (
	"fmt"
	"testing"

	"github.com/railport/railport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(rows ...domain.Row) *domain.Table {
	return &domain.Table{
		Headers: []string{
			"ID", "Title", "Type", "Automation Type",
			"Overview", "Preconditions", "Steps", "Expected Result",
		},
		Rows: rows,
	}
}

func numberedRow(n int) domain.Row {
	row := fullRow()
	row["ID"] = fmt.Sprintf("C%d", n)
	row["Title"] = fmt.Sprintf("Case %d", n)
	return row
}

func TestMapTable_AllRowsSucceed(t *testing.T) {
	table := tableOf(numberedRow(1), numberedRow(2), numberedRow(3))

	result, err := domain.MapTable(table, testMapper())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Failures)
}

func TestMapTable_PreservesInputOrder(t *testing.T) {
	table := tableOf(numberedRow(3), numberedRow(1), numberedRow(2))

	result, err := domain.MapTable(table, testMapper())
	require.NoError(t, err)

	require.Len(t, result.Records, 3)
	assert.Equal(t, "Case 3 - C3", result.Records[0].Summary)
	assert.Equal(t, "Case 1 - C1", result.Records[1].Summary)
	assert.Equal(t, "Case 2 - C2", result.Records[2].Summary)
}

func TestMapTable_PartialFailureIsolation(t *testing.T) {
	bad := numberedRow(2)
	bad["Steps"] = ""
	table := tableOf(numberedRow(1), bad, numberedRow(3))

	result, err := domain.MapTable(table, testMapper())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)

	require.Len(t, result.Failures, 1)
	assert.Equal(t, "C2", result.Failures[0].Identifier)
	assert.Equal(t, 1, result.Failures[0].RowIndex)
	assert.Contains(t, result.Failures[0].Reason, "Steps")

	require.Len(t, result.Records, 2)
	assert.Equal(t, "Case 1 - C1", result.Records[0].Summary)
	assert.Equal(t, "Case 3 - C3", result.Records[1].Summary)
}

func TestMapTable_FailureWithoutIdentifierKeepsIndex(t *testing.T) {
	bad := numberedRow(1)
	bad["ID"] = ""
	table := tableOf(bad)

	result, err := domain.MapTable(table, testMapper())
	require.NoError(t, err)

	require.Len(t, result.Failures, 1)
	assert.Empty(t, result.Failures[0].Identifier)
	assert.Equal(t, 0, result.Failures[0].RowIndex)
}

func TestMapTable_NoHeaderIsStructural(t *testing.T) {
	_, err := domain.MapTable(&domain.Table{}, testMapper())

	var structural *domain.StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestMapTable_MissingRequiredColumnAbortsBeforeAnyRow(t *testing.T) {
	table := &domain.Table{
		Headers: []string{"ID", "Title"},
		Rows:    []domain.Row{fullRow()},
	}

	result, err := domain.MapTable(table, testMapper())

	var structural *domain.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Nil(t, result, "no partial output on structural failure")
}

func TestMapTable_Idempotent(t *testing.T) {
	table := tableOf(numberedRow(1), numberedRow(2))
	mapper := testMapper()

	first, err := domain.MapTable(table, mapper)
	require.NoError(t, err)
	second, err := domain.MapTable(table, mapper)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMapTable_EmptyTableYieldsEmptyResult(t *testing.T) {
	result, err := domain.MapTable(tableOf(), testMapper())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Attempted)
	assert.Empty(t, result.Records)
}
