package joblog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groundtrack/runcheck/internal/adapters/outbound/joblog"
	"github.com/groundtrack/runcheck/internal/domain"
)

func TestLogReport_WritesViolationsAndSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.log")

	w, err := joblog.New(path, "DSWX_HLS_PGE")
	require.NoError(t, err)

	report := &domain.Report{
		Status:     domain.StatusFail,
		ConfigFile: "runconfig.yaml",
		Violations: []domain.Violation{
			{Path: "runconfig.groups.product_path_group.output_dir", Reason: domain.ReasonMissingRequired},
			{
				Path:    "runconfig.groups.primary_executable.product_type",
				Reason:  domain.ReasonInvalidEnum,
				Allowed: []string{"DSWX_HLS"},
				Actual:  "DSWX_FOO",
			},
		},
	}
	require.NoError(t, w.LogReport(report))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "missing required key", first["msg"])
	assert.Equal(t, "DSWX_HLS_PGE", first["workflow"])
	assert.Equal(t, "runconfig.groups.product_path_group.output_dir", first["path"])

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &summary))
	assert.Equal(t, "validation complete", summary["msg"])
	assert.Equal(t, "fail", summary["status"])
	assert.Equal(t, float64(2), summary["violations"])
}

func TestLogReport_PassOnlyWritesSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.log")

	w, err := joblog.New(path, "DSWX_HLS_PGE")
	require.NoError(t, err)

	report := &domain.Report{Status: domain.StatusPass, ConfigFile: "runconfig.yaml"}
	require.NoError(t, w.LogReport(report))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "validation complete")
}
