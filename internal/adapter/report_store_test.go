package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

func sampleSnapshot() m.Snapshot {
	api := m.Category("API Tests")
	web := m.Category("Web Tests")

	return m.Snapshot{
		Records: []m.ResultRecord{
			{Name: "Create User", SourceFile: "users.robot", Status: m.StatusPass, Message: m.NoMessage, DurationMillis: 1500, Category: api},
			{Name: "Delete User", SourceFile: "users.robot", Status: m.StatusFail, Message: "404 != 204", DurationMillis: 250, Category: api},
			{Name: "Valid Login", SourceFile: "login.robot", Status: m.StatusPass, Message: m.NoMessage, DurationMillis: 1250, Category: web},
		},
		Categories: []m.Category{api, web},
		Counts: map[m.Category]m.AggregateCounts{
			api: {Total: 2, Passed: 1, Failed: 1, TotalDurationMillis: 1750},
			web: {Total: 1, Passed: 1, TotalDurationMillis: 1250},
		},
	}
}

func TestLocalReportStore_SaveMetrics(t *testing.T) {
	store := NewReportStore()
	path := filepath.Join(t.TempDir(), "metrics", "robot.prom")

	require.NoError(t, store.SaveMetrics(m.Path(path), sampleSnapshot()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `robot_tests{category="API Tests",status="FAIL"} 1`)
	assert.Contains(t, text, `robot_tests{category="API Tests",status="PASS"} 1`)
	assert.Contains(t, text, `robot_tests{category="Web Tests",status="PASS"} 1`)
	assert.Contains(t, text, `robot_tests_duration_seconds{category="API Tests"} 1.75`)

	// A second write must not fail on duplicate registration.
	require.NoError(t, store.SaveMetrics(m.Path(path), sampleSnapshot()))
}

func TestLocalReportStore_Manifest(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "merged-results", "merge.yaml"))

	outcome := m.MergeOutcome{
		RunName:     "Web Tests",
		Directories: []m.Path{"robot-test-results/robot-test-results-1"},
		Start:       time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 1, 10, 12, 10, 0, 0, time.UTC),
		Inputs:      []m.Path{"/ci/robot-test-results-1/output.xml"},
		Output:      "merged-results/output.xml",
		Log:         "merged-results/log.html",
		Report:      "merged-results/report.html",
		Manifest:    path,
	}

	require.NoError(t, store.SaveManifest(path, outcome))

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), "run_name: Web Tests")
	assert.False(t, strings.Contains(string(data), "manifest"))

	var loaded m.MergeOutcome
	require.NoError(t, yaml.Unmarshal(data, &loaded))

	assert.Equal(t, outcome.RunName, loaded.RunName)
	assert.Equal(t, outcome.Inputs, loaded.Inputs)
	assert.True(t, outcome.Start.Equal(loaded.Start))
	assert.True(t, outcome.End.Equal(loaded.End))
	assert.Equal(t, outcome.Report, loaded.Report)
	assert.Empty(t, loaded.Manifest)
}

func TestLocalReportStore_SaveWorkbook(t *testing.T) {
	store := NewReportStore()
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, store.SaveWorkbook(m.Path(path), sampleSnapshot()))

	book, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer func() { _ = book.Close() }()

	assert.Equal(t, []string{"Summary", "API Tests", "Web Tests"}, book.GetSheetList())

	rows, err := book.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Overall", "3", "2", "1", "3000"}, rows[3])

	apiRows, err := book.GetRows("API Tests")
	require.NoError(t, err)
	require.Len(t, apiRows, 3)
	assert.Equal(t, []string{"Delete User", "users.robot", "FAIL", "404 != 204", "250"}, apiRows[2])
}

func TestUniqueSheetName(t *testing.T) {
	used := map[string]struct{}{"summary": {}}

	assert.Equal(t, "Summary (2)", uniqueSheetName("Summary", used))
	assert.Equal(t, "API_Tests", uniqueSheetName("API/Tests", used))
	assert.Equal(t, "Test Results", uniqueSheetName("  ", used))

	long := strings.Repeat("x", 40)
	first := uniqueSheetName(long, used)
	second := uniqueSheetName(long, used)

	assert.Len(t, first, 31)
	assert.Len(t, second, 31)
	assert.NotEqual(t, first, second)
}
