package adapter

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

func sampleMergeArgs() MergeToolArgs {
	return MergeToolArgs{
		StartTime: "20240110 12:00:00",
		EndTime:   "20240110 12:10:00",
		Name:      "Web Tests",
		Output:    "merged-results/output.xml",
		Log:       "merged-results/log.html",
		Report:    "merged-results/report.html",
		Inputs:    []m.Path{"/ci/robot-test-results-1/output.xml", "/ci/robot-test-results-2/sub/output.xml"},
	}
}

func TestLocalMergeToolAdapter_CommandLine(t *testing.T) {
	adapter := NewLocalMergeToolAdapter("", time.Minute)

	argv := adapter.CommandLine(sampleMergeArgs())

	assert.Equal(t, []string{
		"rebot",
		"--starttime", "20240110 12:00:00",
		"--endtime", "20240110 12:10:00",
		"--name", "Web Tests",
		"--output", "merged-results/output.xml",
		"--log", "merged-results/log.html",
		"--report", "merged-results/report.html",
		"/ci/robot-test-results-1/output.xml",
		"/ci/robot-test-results-2/sub/output.xml",
	}, argv)
}

func TestLocalMergeToolAdapter_CommandLineNoStatusRC(t *testing.T) {
	adapter := NewLocalMergeToolAdapter("", time.Minute)

	args := sampleMergeArgs()
	args.NoStatusRC = true

	argv := adapter.CommandLine(args)

	assert.Equal(t, "--nostatusrc", argv[13])
	assert.Equal(t, "/ci/robot-test-results-1/output.xml", argv[14])
	assert.NotContains(t, adapter.CommandLine(sampleMergeArgs()), "--nostatusrc")
}

func TestQuoteCommand(t *testing.T) {
	quoted := QuoteCommand([]string{"rebot", "--name", "Web Tests", "out put.xml"})
	assert.Equal(t, "rebot --name 'Web Tests' 'out put.xml'", quoted)
}

func TestLocalMergeToolAdapter_Run(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	t.Run("success returns tool output", func(t *testing.T) {
		adapter := NewLocalMergeToolAdapter("echo", time.Minute)

		out, err := adapter.Run(context.Background(), sampleMergeArgs())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "--starttime 20240110 12:00:00"), "output: %q", out)
		assert.Contains(t, out, "/ci/robot-test-results-2/sub/output.xml")
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		if _, err := exec.LookPath("false"); err != nil {
			t.Skip("false not available")
		}

		adapter := NewLocalMergeToolAdapter("false", time.Minute)

		_, err := adapter.Run(context.Background(), sampleMergeArgs())
		require.Error(t, err)

		var exitErr *exec.ExitError
		assert.True(t, errors.As(err, &exitErr))
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		adapter := NewLocalMergeToolAdapter("robotreport-no-such-rebot", time.Minute)

		_, err := adapter.Run(context.Background(), sampleMergeArgs())
		require.Error(t, err)
	})
}
