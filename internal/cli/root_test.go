package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notebook-labs/nblint/internal/cli/commands"
	"github.com/notebook-labs/nblint/internal/cli/config"
	"github.com/notebook-labs/nblint/internal/cli/output"
)

const rootTestDocument = `version: 1
project:
  name: Metrics
  notebooks:
    - id: nb-1
      name: Daily
      blocks:
        - id: sql-1
          type: sql
          content: "SELECT 1"
          metadata:
            integrationId: warehouse
            variableName: _df
`

func executeRoot(t *testing.T, args ...string) (*bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	config.ResetConfig()
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out, errOut, err
}

func writeRootDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rootTestDocument), 0o644))
	return path
}

func TestRootCommand_LintExitsWithIssues(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeRootDocument(t)

	out, _, err := executeRoot(t, "lint", path, "-o", "json")
	assert.ErrorIs(t, err, commands.ErrIssuesFound)

	var res output.LintOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.False(t, res.Success)
}

func TestRootCommand_OutputFlagFlowsToCommands(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeRootDocument(t)

	t.Setenv("SQL_WAREHOUSE", "postgres://analytics")
	out, _, err := executeRoot(t, "lint", path, "--output", "json")
	require.NoError(t, err)

	var res output.LintOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.True(t, res.Success)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nblint.yaml"), []byte("output: json\n"), 0o644))
	path := writeRootDocument(t)

	t.Setenv("SQL_WAREHOUSE", "postgres://analytics")
	out, _, err := executeRoot(t, "lint", path)
	require.NoError(t, err)

	// The config file's output mode was picked up without any flag.
	var res output.LintOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.True(t, res.Success)
}

func TestRootCommand_Version(t *testing.T) {
	chdir(t, t.TempDir())
	out, _, err := executeRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "nblint")
	assert.Contains(t, out.String(), Version)
}

func TestRootCommand_UnknownCommand(t *testing.T) {
	chdir(t, t.TempDir())
	_, _, err := executeRoot(t, "frobnicate")
	assert.Error(t, err)
}

func TestGetConfigFallback(t *testing.T) {
	cfg := GetConfig(context.Background())
	require.NotNil(t, cfg)
	assert.Equal(t, config.DefaultInterpreter, cfg.Interpreter)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
}

func TestGetRendererFallback(t *testing.T) {
	r := GetRenderer(context.Background())
	require.NotNil(t, r)
}
