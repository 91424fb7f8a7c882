package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

func newTestUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd, false), out
}

func testSnapshot() m.Snapshot {
	web := m.Category("Web Tests")
	records := []m.ResultRecord{
		{Name: "Valid Login", Status: m.StatusPass, DurationMillis: 1250, Category: web},
		{Name: "Invalid Login", Status: m.StatusFail, DurationMillis: 700, Category: web},
	}

	return m.Snapshot{
		Records:    records,
		Categories: []m.Category{web},
		Counts:     map[m.Category]m.AggregateCounts{web: m.CountsFor(records)},
		Skipped:    1,
	}
}

func TestSimpleUI_DisplayReportSummary(t *testing.T) {
	ui, out := newTestUI()

	ui.DisplayReportSummary(context.Background(), testSnapshot(), "report.md")

	text := out.String()
	assert.Contains(t, text, "CATEGORY")
	assert.Contains(t, text, "Web Tests")
	assert.Contains(t, text, "OVERALL")
	assert.Contains(t, text, "1.95s")
	assert.Contains(t, text, "Test duration median")
	assert.Contains(t, text, "Skipped (not reported): 1")
	assert.Contains(t, text, "1 of 2 tests failed")
	assert.Contains(t, text, "Report written to report.md")
}

func TestSimpleUI_AllPassed(t *testing.T) {
	ui, out := newTestUI()

	snapshot := testSnapshot()
	snapshot.Records = snapshot.Records[:1]
	snapshot.Counts["Web Tests"] = m.CountsFor(snapshot.Records)
	snapshot.Skipped = 0

	ui.DisplayReportSummary(context.Background(), snapshot, "")

	assert.Contains(t, out.String(), "All 1 tests passed")
	assert.NotContains(t, out.String(), "Skipped")
	assert.NotContains(t, out.String(), "Report written")
}

func TestSimpleUI_NoRecords(t *testing.T) {
	ui, out := newTestUI()

	snapshot := m.Snapshot{
		Categories: []m.Category{"API Tests"},
		Counts:     map[m.Category]m.AggregateCounts{"API Tests": {}},
		Skipped:    3,
	}

	ui.DisplayReportSummary(context.Background(), snapshot, "report.md")

	assert.Contains(t, out.String(), "No passed or failed tests found")
	assert.NotContains(t, out.String(), "All 0 tests passed")
}

func TestSimpleUI_CancelledContextPrintsNothing(t *testing.T) {
	ui, out := newTestUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayReportSummary(ctx, testSnapshot(), "report.md")
	ui.DisplayUploadResult(ctx, []string{"s3://b/k"})

	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayMergeOutcome(t *testing.T) {
	ui, out := newTestUI()

	ui.DisplayMergeOutcome(context.Background(), m.MergeOutcome{
		Directories: []m.Path{"robot-test-results/robot-test-results-1"},
		Start:       time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
		Inputs:      []m.Path{"robot-test-results/robot-test-results-1/output.xml"},
		Output:      "merged-results/output.xml",
		Log:         "merged-results/log.html",
		Report:      "merged-results/report.html",
		Manifest:    "merged-results/merge.yaml",
	}, "rebot --name 'Web Tests' a.xml")

	text := out.String()
	assert.Contains(t, text, "Found 1 results directories:")
	assert.Contains(t, text, "- robot-test-results/robot-test-results-1\n")
	assert.Contains(t, text, "rebot --name 'Web Tests' a.xml")
	assert.Contains(t, text, "Successfully created:")
	assert.Contains(t, text, "- merged-results/report.html\n")
	assert.Contains(t, text, "- merged-results/merge.yaml\n")
}

func TestSimpleUI_DisplayMergeOutcomeListsExcludedFiles(t *testing.T) {
	ui, out := newTestUI()

	ui.DisplayMergeOutcome(context.Background(), m.MergeOutcome{
		Inputs:   []m.Path{"robot-test-results-1/output.xml"},
		Excluded: []m.Path{"robot-test-results-2/output.xml"},
	}, "")

	text := out.String()
	assert.Contains(t, text, "Excluded 1 result files:\n  - robot-test-results-2/output.xml\n")
}

func TestSimpleUI_DisplayMergeOutcomeWithoutExclusions(t *testing.T) {
	ui, out := newTestUI()

	ui.DisplayMergeOutcome(context.Background(), m.MergeOutcome{
		Inputs: []m.Path{"robot-test-results-1/output.xml"},
	}, "")

	assert.NotContains(t, out.String(), "Excluded")
}

func TestSimpleUI_DisplayPublishResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"posted", nil, `GitHub check "Test Results - Smoke" posted successfully`},
		{"rejected", &adapter.RejectedError{StatusCode: 401, Body: "Bad credentials"}, "Failed to post GitHub check: 401 - Bad credentials"},
		{"other", errors.New("missing check run credentials"), "GitHub check not posted: missing check run credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, out := newTestUI()

			ui.DisplayPublishResult(context.Background(), "Test Results - Smoke", tt.err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestSimpleUI_DisplaySourceErrorsAndUploads(t *testing.T) {
	ui, out := newTestUI()

	ui.DisplaySourceErrors(context.Background(), []error{errors.New("result source not found: a.xml")})
	ui.DisplayUploadResult(context.Background(), []string{"s3://bucket/report.md"})

	assert.Contains(t, out.String(), "skipped: result source not found: a.xml")
	assert.Contains(t, out.String(), "Uploaded s3://bucket/report.md")
}

func TestDurationLine(t *testing.T) {
	assert.Equal(t, "", durationLine(m.Snapshot{}))

	line := durationLine(testSnapshot())
	assert.Contains(t, line, "median 975ms")
	assert.Contains(t, line, "slowest 1.25s")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
}
