// Package controller provides console output for the robotreport commands.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

// UI defines how command results are shown to the user.
// Diagnostics go to slog; UI output is what a CI log reader needs.
type UI interface {
	DisplayReportSummary(ctx context.Context, snapshot m.Snapshot, reportPath m.Path)
	DisplaySourceErrors(ctx context.Context, errs []error)
	DisplayMergeOutcome(ctx context.Context, outcome m.MergeOutcome, command string)
	DisplayPublishResult(ctx context.Context, name string, err error)
	DisplayUploadResult(ctx context.Context, uris []string)
}

// NewUI returns the console UI, styled when writing to a terminal.
func NewUI(cmd *cobra.Command, styled bool) UI {
	return NewSimpleUI(cmd, styled)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
