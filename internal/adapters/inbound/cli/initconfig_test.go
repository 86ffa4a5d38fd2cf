package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/railport/railport/internal/adapters/inbound/cli"
	appconfig "github.com/railport/railport/internal/adapters/outbound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railport.yaml")
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"init-config", path})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Configuration file created")

	// The generated sample must load cleanly.
	cfg, err := appconfig.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Platform", cfg.Static.Product)
	assert.Equal(t, "ID", cfg.Columns["identifier"])
}

func TestInitConfigCommand_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "railport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"init-config", path})
	assert.Error(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "railport")
}
