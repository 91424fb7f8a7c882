package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	"github.com/sinesipho-jacobs/test-workflow/internal/controller"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

// ReportArgs contains the arguments for building a report.
type ReportArgs struct {
	Sources     []m.Path
	Category    m.Category
	Output      m.Path
	StepSummary m.Path

	MachineOutput m.Path
	XLSX          m.Path
	MetricsFile   m.Path

	Publish            bool
	FailOnPublishError bool
	Credentials        Credentials
	JobName            string
}

// PublishArgs contains the arguments for posting a pre-rendered check run.
type PublishArgs struct {
	Credentials Credentials
	Name        string
	Title       string
	Summary     string
	SummaryFile m.Path // read instead of Summary when set
	Conclusion  m.Conclusion
}

// UploadArgs contains the arguments for uploading report artifacts.
type UploadArgs struct {
	Files    []m.Path
	Region   string
	Endpoint string
	Bucket   string
	Prefix   string
	Threads  uint
	Metadata map[string]string
}

// Workflow defines the robotreport commands.
type Workflow interface {
	Report(ctx context.Context, args ReportArgs) (m.Snapshot, error)
	Merge(ctx context.Context, args MergeArgs) (m.MergeOutcome, error)
	Publish(ctx context.Context, args PublishArgs) error
	Upload(ctx context.Context, args UploadArgs) ([]string, error)
}

type workflow struct {
	adapter.RobotResultAdapter
	adapter.SourceFSAdapter
	adapter.ReportStore
	adapter.ArtifactUploader
	adapter.MergeToolAdapter
	controller.UI
	Renderer
	Merger
	Publisher
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	parser adapter.RobotResultAdapter,
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	uploader adapter.ArtifactUploader,
	tool adapter.MergeToolAdapter,
	ui controller.UI,
	renderer Renderer,
	merger Merger,
	publisher Publisher,
) Workflow {
	return &workflow{
		RobotResultAdapter: parser,
		SourceFSAdapter:    fsAdapter,
		ReportStore:        reportStore,
		ArtifactUploader:   uploader,
		MergeToolAdapter:   tool,
		UI:                 ui,
		Renderer:           renderer,
		Merger:             merger,
		Publisher:          publisher,
	}
}

// Report ingests every source, appends the Markdown report and writes the
// optional artifacts. Publishing never fails the report unless
// FailOnPublishError is set.
func (w *workflow) Report(ctx context.Context, args ReportArgs) (m.Snapshot, error) {
	collector := NewCollector(w.RobotResultAdapter, w.SourceFSAdapter)

	sources, err := collector.ExpandSources(args.Sources)
	if err != nil {
		return m.Snapshot{}, fmt.Errorf("expand sources: %w", err)
	}

	ingested, errs := collector.IngestAll(ctx, sources, args.Category)
	if len(errs) > 0 {
		w.DisplaySourceErrors(ctx, errs)
	}

	if err := ctx.Err(); err != nil {
		return m.Snapshot{}, err
	}

	if ingested == 0 {
		return m.Snapshot{}, fmt.Errorf("%w: %d source(s) given", ErrNoResults, len(args.Sources))
	}

	snapshot := collector.Snapshot()

	content, err := w.AppendReport(args.Output, snapshot, args.StepSummary)
	if err != nil {
		return snapshot, fmt.Errorf("append report: %w", err)
	}

	if err := w.writeArtifacts(args, snapshot); err != nil {
		return snapshot, err
	}

	w.DisplayReportSummary(ctx, snapshot, args.Output)

	if !args.Publish {
		return snapshot, nil
	}

	name := CheckName(args.JobName)
	overall := snapshot.Overall()

	err = w.Publisher.Publish(ctx, args.Credentials, PublishRequest{
		Name:       name,
		Conclusion: m.ConclusionFor(overall),
		Title:      CheckTitle(args.JobName, overall.TotalDurationMillis),
		Summary:    content,
	})
	w.DisplayPublishResult(ctx, name, err)

	if err != nil {
		slog.Error("publishing skipped or failed; report files are kept", "error", err)

		if args.FailOnPublishError {
			return snapshot, fmt.Errorf("publish: %w", err)
		}
	}

	return snapshot, nil
}

func (w *workflow) writeArtifacts(args ReportArgs, snapshot m.Snapshot) error {
	if args.MachineOutput != "" {
		data, err := w.RenderMachineReadable(snapshot.Records)
		if err != nil {
			return err
		}

		if err := w.WriteFile(args.MachineOutput, data); err != nil {
			return fmt.Errorf("write %s: %w", args.MachineOutput, err)
		}
	}

	if args.XLSX != "" {
		if err := w.SaveWorkbook(args.XLSX, snapshot); err != nil {
			return fmt.Errorf("save workbook: %w", err)
		}
	}

	if args.MetricsFile != "" {
		if err := w.SaveMetrics(args.MetricsFile, snapshot); err != nil {
			return fmt.Errorf("save metrics: %w", err)
		}
	}

	return nil
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) (m.MergeOutcome, error) {
	outcome, err := w.Merger.Merge(ctx, args)
	if err != nil {
		return m.MergeOutcome{}, err
	}

	command := adapter.QuoteCommand(w.CommandLine(toolArgs(outcome, args.NoStatusRC)))

	base := withMergeDefaults(args).BaseDir

	shown := outcome
	shown.Inputs = w.relativeTo(base, outcome.Inputs)
	shown.Excluded = w.relativeTo(base, outcome.Excluded)

	w.DisplayMergeOutcome(ctx, shown, command)

	return outcome, nil
}

// relativeTo shortens paths under base for display; others are kept as is.
func (w *workflow) relativeTo(base m.Path, paths []m.Path) []m.Path {
	if len(paths) == 0 {
		return nil
	}

	absBase, err := w.AbsPath(base)
	if err != nil {
		return paths
	}

	shown := make([]m.Path, 0, len(paths))

	for _, path := range paths {
		rel, err := w.RelPath(absBase, path)
		if err != nil || strings.HasPrefix(string(rel), "..") {
			shown = append(shown, path)
			continue
		}

		shown = append(shown, rel)
	}

	return shown
}

func (w *workflow) Publish(ctx context.Context, args PublishArgs) error {
	summary := args.Summary

	if args.SummaryFile != "" {
		data, err := w.ReadFile(args.SummaryFile)
		if err != nil {
			return fmt.Errorf("read summary %s: %w", args.SummaryFile, err)
		}

		summary = string(data)
	}

	if strings.TrimSpace(summary) == "" {
		summary = DefaultSummary
	}

	title := args.Title
	if title == "" {
		title = DefaultCheckTitle
	}

	name := args.Name
	if name == "" {
		name = DefaultCheckName
	}

	err := w.Publisher.Publish(ctx, args.Credentials, PublishRequest{
		Name:       name,
		Conclusion: args.Conclusion,
		Title:      title,
		Summary:    summary,
	})
	w.DisplayPublishResult(ctx, name, err)

	return err
}

// Upload pushes each file to bucket under prefix, at most Threads at a time.
func (w *workflow) Upload(ctx context.Context, args UploadArgs) ([]string, error) {
	if args.Bucket == "" {
		return nil, errors.New("bucket is required")
	}

	uris := make([]string, len(args.Files))

	var (
		errs   []error
		errsMu sync.Mutex
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(int(args.Threads))
	}

	for i, file := range args.Files {
		index, path := i, file

		group.Go(func() error {
			uri, err := w.uploadOne(groupCtx, args, path)
			if err != nil {
				errsMu.Lock()
				errs = append(errs, err)
				errsMu.Unlock()

				return nil
			}

			uris[index] = uri

			return nil
		})
	}

	_ = group.Wait()

	uploaded := make([]string, 0, len(uris))

	for _, uri := range uris {
		if uri != "" {
			uploaded = append(uploaded, uri)
		}
	}

	w.DisplayUploadResult(ctx, uploaded)

	if len(errs) > 0 {
		return uploaded, errors.Join(errs...)
	}

	return uploaded, nil
}

func (w *workflow) uploadOne(ctx context.Context, args UploadArgs, path m.Path) (string, error) {
	file, err := w.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	key := filepath.Base(string(path))
	if prefix := strings.Trim(args.Prefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}

	uri, err := w.ArtifactUploader.Upload(ctx, adapter.ObjectDestination{
		Region:   args.Region,
		Endpoint: args.Endpoint,
		Bucket:   args.Bucket,
		Key:      key,
	}, file, args.Metadata)
	if err != nil {
		return "", err
	}

	slog.Info("artifact uploaded", "path", path, "uri", uri)

	return uri, nil
}
