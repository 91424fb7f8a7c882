package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultGitHubAPIURL is the public GitHub REST endpoint.
	DefaultGitHubAPIURL = "https://api.github.com"

	checkRunAcceptHeader = "application/vnd.github.v3+json"
	checkRunUserAgent    = "robotreport/1.0"
	checkRunTimeout      = 30 * time.Second
	maxErrorBodyBytes    = 64 * 1024
)

// CheckRunOutput is the rendered content of a check run.
type CheckRunOutput struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// CheckRun is the payload of a completed check run.
type CheckRun struct {
	Name       string         `json:"name"`
	HeadSHA    string         `json:"head_sha"`
	Status     string         `json:"status"`
	Conclusion string         `json:"conclusion"`
	ExternalID string         `json:"external_id,omitempty"`
	Output     CheckRunOutput `json:"output"`
}

// RejectedError is returned when the platform answers with an unexpected status.
type RejectedError struct {
	StatusCode int
	Body       string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("check run rejected: HTTP %d: %s", e.StatusCode, e.Body)
}

// CheckRunAdapter creates check runs on the source-control platform.
type CheckRunAdapter interface {
	CreateCheckRun(ctx context.Context, repository, token string, run CheckRun) error
}

// GitHubCheckRunOption configures a GitHubCheckRunAdapter.
type GitHubCheckRunOption func(*GitHubCheckRunAdapter)

// WithBaseURL points the adapter at a different API root (GitHub Enterprise, tests).
func WithBaseURL(baseURL string) GitHubCheckRunOption {
	return func(a *GitHubCheckRunAdapter) {
		if baseURL != "" {
			a.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(client *http.Client) GitHubCheckRunOption {
	return func(a *GitHubCheckRunAdapter) {
		if client != nil {
			a.client = client
		}
	}
}

// GitHubCheckRunAdapter posts check runs to the GitHub REST API.
type GitHubCheckRunAdapter struct {
	baseURL string
	client  *http.Client
}

// NewGitHubCheckRunAdapter creates an adapter with a 30s timeout client.
func NewGitHubCheckRunAdapter(options ...GitHubCheckRunOption) *GitHubCheckRunAdapter {
	a := &GitHubCheckRunAdapter{
		baseURL: DefaultGitHubAPIURL,
		client:  &http.Client{Timeout: checkRunTimeout},
	}

	for _, opt := range options {
		opt(a)
	}

	return a
}

// CreateCheckRun posts the run to /repos/{owner}/{repo}/check-runs. Only
// HTTP 201 counts as success.
func (a *GitHubCheckRunAdapter) CreateCheckRun(ctx context.Context, repository, token string, run CheckRun) error {
	payload, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode check run: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/check-runs", a.baseURL, repository)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", checkRunAcceptHeader)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", checkRunUserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("post check run: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if readErr != nil {
		slog.Warn("failed to read check run response", "error", readErr)
	}

	slog.Debug("check run response", "status", resp.StatusCode, "repository", repository)

	if resp.StatusCode != http.StatusCreated {
		return &RejectedError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return nil
}
