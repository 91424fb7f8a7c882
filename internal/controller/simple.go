package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayReportSummary prints per-category counts and duration statistics.
func (s *SimpleUI) DisplayReportSummary(ctx context.Context, snapshot m.Snapshot, reportPath m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(snapshot))

	if line := durationLine(snapshot); line != "" {
		s.printf("%s\n", s.dim(line))
	}

	if snapshot.Skipped > 0 {
		s.printf("%s\n", s.dim(fmt.Sprintf("Skipped (not reported): %d", snapshot.Skipped)))
	}

	overall := snapshot.Overall()

	switch {
	case snapshot.Empty():
		s.printf("%s\n", s.dim("No passed or failed tests found"))
	case overall.Failed == 0:
		s.printf("%s\n", s.pass(fmt.Sprintf("All %d tests passed", overall.Total)))
	default:
		s.printf("%s\n", s.fail(fmt.Sprintf("%d of %d tests failed", overall.Failed, overall.Total)))
	}

	if reportPath != "" {
		s.printf("Report written to %s\n", reportPath)
	}
}

func renderSummaryTable(snapshot m.Snapshot) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Total", "Passed", "Failed", "Duration"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, category := range snapshot.Categories {
		counts := snapshot.Counts[category]
		table.Append([]string{
			string(category),
			fmt.Sprintf("%d", counts.Total),
			fmt.Sprintf("%d", counts.Passed),
			fmt.Sprintf("%d", counts.Failed),
			formatMillis(counts.TotalDurationMillis),
		})
	}

	overall := snapshot.Overall()
	table.SetFooter([]string{
		"Overall",
		fmt.Sprintf("%d", overall.Total),
		fmt.Sprintf("%d", overall.Passed),
		fmt.Sprintf("%d", overall.Failed),
		formatMillis(overall.TotalDurationMillis),
	})

	table.Render()

	return tableBuffer.String()
}

// durationLine summarizes per-test durations; empty when nothing was collected.
func durationLine(snapshot m.Snapshot) string {
	durations := stats.Float64Data(snapshot.Durations())
	if durations.Len() == 0 {
		return ""
	}

	median, err := durations.Median()
	if err != nil {
		return ""
	}

	p95, err := durations.Percentile(95)
	if err != nil {
		// Percentile needs enough samples; fall back to the maximum.
		p95, _ = durations.Max()
	}

	slowest, _ := durations.Max()

	return fmt.Sprintf("Test duration median %s, p95 %s, slowest %s",
		formatMillis(int64(median)), formatMillis(int64(p95)), formatMillis(int64(slowest)))
}

// DisplaySourceErrors lists the result sources that were skipped.
func (s *SimpleUI) DisplaySourceErrors(ctx context.Context, errs []error) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, err := range errs {
		s.printf("%s %v\n", s.fail("skipped:"), err)
	}
}

// DisplayMergeOutcome prints the merge inputs, command and created artifacts.
func (s *SimpleUI) DisplayMergeOutcome(ctx context.Context, outcome m.MergeOutcome, command string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Found %d results directories:\n", len(outcome.Directories))

	for _, dir := range outcome.Directories {
		s.printf("- %s\n", dir)
	}

	s.printf("\nMerged %d result files:\n", len(outcome.Inputs))

	for _, input := range outcome.Inputs {
		s.printf("  - %s\n", input)
	}

	if len(outcome.Excluded) > 0 {
		s.printf("\n%s\n", s.fail(fmt.Sprintf("Excluded %d result files:", len(outcome.Excluded))))

		for _, excluded := range outcome.Excluded {
			s.printf("  - %s\n", excluded)
		}
	}

	if command != "" {
		s.printf("\nExecuted merge command:\n%s\n", s.dim(command))
	}

	s.printf("\n%s\n", s.pass("Successfully created:"))
	s.printf("- %s\n- %s\n- %s\n", outcome.Output, outcome.Log, outcome.Report)

	if outcome.Manifest != "" {
		s.printf("- %s\n", outcome.Manifest)
	}
}

// DisplayPublishResult reports the outcome of posting a check run.
func (s *SimpleUI) DisplayPublishResult(ctx context.Context, name string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if err == nil {
		s.printf("%s\n", s.pass(fmt.Sprintf("✅ GitHub check %q posted successfully", name)))
		return
	}

	var rejected *adapter.RejectedError
	if errors.As(err, &rejected) {
		s.printf("%s\n", s.fail(fmt.Sprintf("❌ Failed to post GitHub check: %d - %s", rejected.StatusCode, rejected.Body)))
		return
	}

	s.printf("%s\n", s.fail(fmt.Sprintf("❌ GitHub check not posted: %v", err)))
}

// DisplayUploadResult lists uploaded artifact URIs.
func (s *SimpleUI) DisplayUploadResult(ctx context.Context, uris []string) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, uri := range uris {
		s.printf("Uploaded %s\n", uri)
	}
}

func (s *SimpleUI) pass(text string) string {
	if !s.styled {
		return text
	}

	return passStyle.Render(text)
}

func (s *SimpleUI) fail(text string) string {
	if !s.styled {
		return text
	}

	return failStyle.Render(text)
}

func (s *SimpleUI) dim(text string) string {
	if !s.styled {
		return text
	}

	return dimStyle.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatMillis(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).Round(time.Millisecond).String()
}
