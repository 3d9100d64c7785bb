package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundtrack/runcheck/internal/adapters/inbound/cli"
)

func TestValidateCommand_ValidConfig(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "testdata/valid_runconfig.yaml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "PASS")
}

func TestValidateCommand_BadConfigFails(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "testdata/bad_runconfig.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 violation(s)")
	assert.Contains(t, buf.String(), "runconfig.groups.primary_executable.product_type")
	assert.Contains(t, buf.String(), "runconfig.groups.product_path_group.output_dir")
}

func TestValidateCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "testdata/bad_runconfig.yaml", "--json"})

	err := cmd.Execute()
	require.Error(t, err, "violations should make the command fail")

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report), "output should be valid JSON")
	assert.Equal(t, "fail", report["status"])
	assert.Contains(t, report, "violations")
}

func TestValidateCommand_BrokenYAMLIsFatal(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "testdata/broken_runconfig.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
	assert.Empty(t, buf.String(), "no partial report on parse errors")
}

func TestValidateCommand_StrictFlag(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile("testdata/valid_runconfig.yaml")
	require.NoError(t, err)
	path := filepath.Join(dir, "runconfig.yaml")
	require.NoError(t, os.WriteFile(path, append(data, []byte("    mystery_group:\n      x: 1\n")...), 0644))

	lenient := cli.NewRootCmdForTest()
	lenient.SetOut(new(bytes.Buffer))
	lenient.SetArgs([]string{"validate", path})
	assert.NoError(t, lenient.Execute())

	strict := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	strict.SetOut(buf)
	strict.SetArgs([]string{"validate", path, "--strict"})
	err = strict.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "unknown key")
}

func TestValidateCommand_WritesJobLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "job.log")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "testdata/valid_runconfig.yaml", "--log", logPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "validation complete")
}

func TestValidateCommand_NoArgs(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"validate"})
	assert.Error(t, cmd.Execute())
}
