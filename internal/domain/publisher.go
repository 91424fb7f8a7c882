package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	// DefaultJobName is used when neither JOB_NAME nor GITHUB_JOB is set.
	DefaultJobName = "Unknown Job"
	// DefaultCheckName names check runs published in simple mode.
	DefaultCheckName = "Robot Framework Test Run"
	// DefaultCheckTitle titles check runs published in simple mode.
	DefaultCheckTitle = "Test Results Summary"
	// DefaultSummary is posted when simple mode has no summary.
	DefaultSummary = "No summary provided."

	// maxSummaryLen is GitHub's limit for output.summary.
	maxSummaryLen   = 65535
	truncatedMarker = "\n\n_Summary truncated._\n"
)

// Credentials identify where and as whom a check run is created.
type Credentials struct {
	Token      string
	Repository string // owner/repo
	Commit     string
}

// PublishRequest is one check run to create.
type PublishRequest struct {
	Name         string
	Conclusion   m.Conclusion
	Title        string
	Summary      string
	TargetCommit string // overrides Credentials.Commit when set
}

// Publisher posts check runs.
type Publisher interface {
	Publish(ctx context.Context, creds Credentials, req PublishRequest) error
}

type publisher struct {
	adapter.CheckRunAdapter
}

// NewPublisher creates a Publisher backed by client.
func NewPublisher(client adapter.CheckRunAdapter) Publisher {
	return &publisher{CheckRunAdapter: client}
}

// Publish validates credentials, logging one warning per missing field, and
// returns ErrMissingCredentials without calling the API when any is missing.
func (p *publisher) Publish(ctx context.Context, creds Credentials, req PublishRequest) error {
	commit := creds.Commit
	if req.TargetCommit != "" {
		commit = req.TargetCommit
	}

	if missing := missingCredentials(creds.Token, creds.Repository, commit); len(missing) > 0 {
		for _, name := range missing {
			slog.Warn("missing environment variable", "name", name)
		}

		return fmt.Errorf("%w: %v", ErrMissingCredentials, missing)
	}

	name := req.Name
	if name == "" {
		name = DefaultCheckName
	}

	run := adapter.CheckRun{
		Name:       name,
		HeadSHA:    commit,
		Status:     "completed",
		Conclusion: string(req.Conclusion),
		ExternalID: uuid.NewString(),
		Output: adapter.CheckRunOutput{
			Title:   req.Title,
			Summary: TruncateSummary(req.Summary),
		},
	}

	if err := p.CreateCheckRun(ctx, creds.Repository, creds.Token, run); err != nil {
		slog.Error("failed to post check run", "repository", creds.Repository, "error", err)
		return err
	}

	slog.Info("check run posted", "repository", creds.Repository, "name", name, "conclusion", req.Conclusion, "external_id", run.ExternalID)

	return nil
}

func missingCredentials(token, repository, commit string) []string {
	var missing []string

	if token == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}

	if repository == "" {
		missing = append(missing, "GITHUB_REPOSITORY")
	}

	if commit == "" {
		missing = append(missing, "GITHUB_SHA")
	}

	return missing
}

// CheckName builds the title-cased check name for a job.
func CheckName(job string) string {
	if job == "" {
		job = DefaultJobName
	}

	return cases.Title(language.English).String("Test Results - " + job)
}

// CheckTitle builds the check output title, e.g. "Test Results - e2e executed in 1m 5s".
func CheckTitle(job string, durationMillis int64) string {
	if job == "" {
		job = DefaultJobName
	}

	seconds := durationMillis / 1000
	minutes, seconds := seconds/60, seconds%60

	return fmt.Sprintf("Test Results - %s executed in %dm %ds", job, minutes, seconds)
}

// TruncateSummary keeps summary within GitHub's size limit.
func TruncateSummary(summary string) string {
	if len(summary) <= maxSummaryLen {
		return summary
	}

	cut := maxSummaryLen - len(truncatedMarker)

	// Step back to a rune boundary.
	for cut > 0 && (summary[cut]&0xC0) == 0x80 {
		cut--
	}

	return summary[:cut] + truncatedMarker
}
