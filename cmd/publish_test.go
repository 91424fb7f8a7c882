package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

func TestPublishCmd_UsesEnvironment(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_REPOSITORY", "acme/webapp")
	t.Setenv("GITHUB_SHA", "abc123")
	t.Setenv("CONCLUSION", "Failure")
	t.Setenv("SUMMARY", "2 tests failed")

	cmd := newRootCmd()
	cmd.AddCommand(newPublishCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(args domain.PublishArgs) bool {
		return args.Credentials == domain.Credentials{Token: "tok", Repository: "acme/webapp", Commit: "abc123"} &&
			args.Name == domain.DefaultCheckName &&
			args.Title == domain.DefaultCheckTitle &&
			args.Summary == "2 tests failed" &&
			args.Conclusion == m.ConclusionFailure
	})).Return(nil)

	cmd.SetArgs([]string{"publish"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestPublishCmd_DefaultsWithoutEnvironment(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	t.Setenv("CONCLUSION", "")
	t.Setenv("SUMMARY", "")

	cmd := newRootCmd()
	cmd.AddCommand(newPublishCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(args domain.PublishArgs) bool {
		return args.Summary == domain.DefaultSummary &&
			args.Conclusion == m.ConclusionNeutral
	})).Return(nil)

	cmd.SetArgs([]string{"publish"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestPublishCmd_FlagsOverrideEnvironment(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	t.Setenv("CONCLUSION", "failure")

	cmd := newRootCmd()
	cmd.AddCommand(newPublishCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(args domain.PublishArgs) bool {
		return args.Name == "Nightly" &&
			args.Title == "Nightly results" &&
			args.SummaryFile == m.Path("report.md") &&
			args.Conclusion == m.ConclusionSuccess
	})).Return(nil)

	cmd.SetArgs([]string{
		"publish",
		"--name", "Nightly",
		"--title", "Nightly results",
		"--summary-file", "report.md",
		"--conclusion", "success",
	})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestPublishCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPublishCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Publish(mock.Anything, mock.Anything).Return(domain.ErrMissingCredentials)

	cmd.SetArgs([]string{"publish"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestPublishCmd_FlagDefaults(t *testing.T) {
	flags := publishCmd.Flags()

	assert.Equal(t, "neutral", flags.Lookup(conclusionFlagName).DefValue)
	assert.Equal(t, domain.DefaultSummary, flags.Lookup(summaryFlagName).DefValue)
}
