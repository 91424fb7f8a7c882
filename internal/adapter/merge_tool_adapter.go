package adapter

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"

	"al.essio.dev/pkg/shellescape"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

// DefaultMergeTool is the Robot Framework post-processing tool used to merge outputs.
const DefaultMergeTool = "rebot"

// MergeToolArgs are the parameters passed to the external merge tool.
type MergeToolArgs struct {
	StartTime string // YYYYMMDD HH:MM:SS
	EndTime   string
	Name      string
	Output    m.Path
	Log       m.Path
	Report    m.Path
	Inputs    []m.Path

	// NoStatusRC passes --nostatusrc so failed tests do not produce a non-zero exit.
	NoStatusRC bool
}

// MergeToolAdapter abstracts the external report merging executable.
type MergeToolAdapter interface {
	// CommandLine renders the command that Run would execute.
	CommandLine(args MergeToolArgs) []string

	// Run executes the merge tool and returns its combined stdout/stderr output.
	Run(ctx context.Context, args MergeToolArgs) (output string, err error)
}

// LocalMergeToolAdapter runs the merge tool through os/exec.
type LocalMergeToolAdapter struct {
	binary  string
	timeout time.Duration
}

// NewLocalMergeToolAdapter constructs a LocalMergeToolAdapter. An empty binary
// falls back to DefaultMergeTool.
func NewLocalMergeToolAdapter(binary string, timeout time.Duration) *LocalMergeToolAdapter {
	if binary == "" {
		binary = DefaultMergeTool
	}

	return &LocalMergeToolAdapter{
		binary:  binary,
		timeout: timeout,
	}
}

// CommandLine builds the argv for the merge tool.
func (a *LocalMergeToolAdapter) CommandLine(args MergeToolArgs) []string {
	argv := []string{
		a.binary,
		"--starttime", args.StartTime,
		"--endtime", args.EndTime,
		"--name", args.Name,
		"--output", string(args.Output),
		"--log", string(args.Log),
		"--report", string(args.Report),
	}

	if args.NoStatusRC {
		argv = append(argv, "--nostatusrc")
	}

	for _, input := range args.Inputs {
		argv = append(argv, string(input))
	}

	return argv
}

// Run executes the merge tool. A non-zero exit status is returned as an *exec.ExitError;
// rebot exits with the number of failed tests unless NoStatusRC is set.
func (a *LocalMergeToolAdapter) Run(ctx context.Context, args MergeToolArgs) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	argv := a.CommandLine(args)
	slog.Info("running merge tool", "command", shellescape.QuoteCommand(argv))

	// #nosec G204 - the binary is operator configured and arguments are not shell-interpreted
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}

// QuoteCommand renders argv as a copy-pasteable shell command.
func QuoteCommand(argv []string) string {
	return shellescape.QuoteCommand(argv)
}
