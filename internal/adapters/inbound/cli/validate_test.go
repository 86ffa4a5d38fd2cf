package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/railport/railport/internal/adapters/inbound/cli"
	"github.com/railport/railport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", fixtureCSV, "--config", fixtureConfig})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "PASS")
}

func TestValidateCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", fixtureCSV, "--config", fixtureConfig, "--json"})
	require.NoError(t, cmd.Execute())

	var result domain.ValidationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, 3, result.RowCount)
}

func TestValidateCommand_WritesReport(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.txt")
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", fixtureCSV, "--config", fixtureConfig, "--report", reportPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "VALIDATION REPORT")
}

func TestValidateCommand_FailsOnBrokenInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "broken.csv")
	require.NoError(t, os.WriteFile(input, []byte("ID,Title,Title\nC1,a,b\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", input})
	assert.Error(t, cmd.Execute())
}
