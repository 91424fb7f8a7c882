package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	// DefaultResultsBaseDir is scanned for per-run result directories.
	DefaultResultsBaseDir = "robot-test-results"
	// DefaultResultsPattern matches the per-run result directories.
	DefaultResultsPattern = "robot-test-results-*"
	// DefaultMergeOutputDir receives the merged artifacts.
	DefaultMergeOutputDir = "merged-results"
	// DefaultMergeRunName names the merged top-level suite.
	DefaultMergeRunName = "Web Tests"
	// ManifestFileName describes a merge inside its output directory.
	ManifestFileName = "merge.yaml"

	mergeTimestampLayout = "20060102 15:04:05"
)

// MergeArgs contains the arguments for merging several result runs.
type MergeArgs struct {
	BaseDir   m.Path
	Pattern   string
	OutputDir m.Path
	RunName   string

	// NoStatusRC makes the merge tool exit zero even when the merged run has failed tests.
	NoStatusRC bool
}

// MergeWindow is the [earliest start, latest end] range of a set of result files.
type MergeWindow struct {
	Start    time.Time
	End      time.Time
	Files    []m.Path // files that contributed a timestamp pair
	Excluded []m.Path // files whose timestamps did not parse
}

// Merger discovers independent result runs and consolidates them through the
// external merge tool.
type Merger interface {
	// DiscoverSources lists the directories directly under baseDir matching
	// pattern. Every call rescans the filesystem.
	DiscoverSources(baseDir m.Path, pattern string) ([]m.Path, error)
	// CollectValidResultFiles returns the parseable output.xml files under dir.
	CollectValidResultFiles(dir m.Path) []m.Path
	// FindResultFiles combines discovery and validation.
	FindResultFiles(baseDir m.Path, pattern string) ([]m.Path, []m.Path, error)
	// ComputeWindow reduces the root suite timestamps of files.
	ComputeWindow(files []m.Path) (MergeWindow, error)
	// Merge runs discovery, validation and the merge tool.
	Merge(ctx context.Context, args MergeArgs) (m.MergeOutcome, error)
}

type merger struct {
	adapter.RobotResultAdapter
	adapter.SourceFSAdapter
	adapter.MergeToolAdapter
	adapter.ReportStore
}

// NewMerger creates a Merger from its adapters.
func NewMerger(
	parser adapter.RobotResultAdapter,
	fsAdapter adapter.SourceFSAdapter,
	tool adapter.MergeToolAdapter,
	store adapter.ReportStore,
) Merger {
	return &merger{
		RobotResultAdapter: parser,
		SourceFSAdapter:    fsAdapter,
		MergeToolAdapter:   tool,
		ReportStore:        store,
	}
}

func (mg *merger) DiscoverSources(baseDir m.Path, pattern string) ([]m.Path, error) {
	if pattern == "" {
		pattern = DefaultResultsPattern
	}

	matches, err := mg.Glob(filepath.Join(string(baseDir), pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	dirs := make([]m.Path, 0, len(matches))

	for _, match := range matches {
		info, err := mg.FileInfo(match)
		if err != nil || !info.IsDir() {
			continue
		}

		dirs = append(dirs, match)
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i] < dirs[j] })

	return dirs, nil
}

func (mg *merger) CollectValidResultFiles(dir m.Path) []m.Path {
	valid, _ := mg.collect(dir)
	return valid
}

// collect returns the valid and the rejected output.xml files under dir.
func (mg *merger) collect(dir m.Path) ([]m.Path, []m.Path) {
	seen := make(map[m.Path]struct{})

	var valid, rejected []m.Path

	err := mg.Walk(dir, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("cannot read path while searching for results", "path", path, "error", err)
			return nil
		}

		if info.IsDir() || filepath.Base(path) != ResultFileName {
			return nil
		}

		abs, absErr := mg.AbsPath(m.Path(path))
		if absErr != nil {
			abs = m.Path(path)
		}

		if _, dup := seen[abs]; dup {
			return nil
		}

		seen[abs] = struct{}{}

		if !mg.isValid(abs) {
			rejected = append(rejected, abs)
			return nil
		}

		valid = append(valid, abs)

		return nil
	})
	if err != nil {
		slog.Warn("failed to walk result directory", "path", dir, "error", err)
	}

	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })
	sort.Slice(rejected, func(i, j int) bool { return rejected[i] < rejected[j] })

	return valid, rejected
}

func (mg *merger) isValid(path m.Path) bool {
	if _, err := mg.Parse(path); err != nil {
		slog.Warn("excluding unparseable result file", "path", path, "error", err)
		return false
	}

	return true
}

func (mg *merger) FindResultFiles(baseDir m.Path, pattern string) ([]m.Path, []m.Path, error) {
	found, err := mg.findResultFiles(baseDir, pattern)
	return found.dirs, found.files, err
}

type resultFiles struct {
	dirs     []m.Path
	files    []m.Path
	rejected []m.Path
}

func (mg *merger) findResultFiles(baseDir m.Path, pattern string) (resultFiles, error) {
	dirs, err := mg.DiscoverSources(baseDir, pattern)
	if err != nil {
		return resultFiles{}, err
	}

	if len(dirs) == 0 {
		return resultFiles{}, fmt.Errorf("%w: %s", ErrNoSourceDirectories, filepath.Join(string(baseDir), pattern))
	}

	result := resultFiles{dirs: dirs}

	for _, dir := range dirs {
		found, rejected := mg.collect(dir)
		result.rejected = append(result.rejected, rejected...)

		if len(found) == 0 {
			slog.Warn("no valid result files in directory", "path", dir)
			continue
		}

		slog.Info("found result files", "path", dir, "count", len(found))
		result.files = append(result.files, found...)
	}

	if len(result.files) == 0 {
		return result, fmt.Errorf("%w in %d director(ies)%s", ErrNoValidFiles, len(dirs), excludedSuffix(result.rejected))
	}

	return result, nil
}

// excludedSuffix lists dropped files for error messages shown in CI logs.
func excludedSuffix(excluded []m.Path) string {
	if len(excluded) == 0 {
		return ""
	}

	names := make([]string, 0, len(excluded))
	for _, path := range excluded {
		names = append(names, string(path))
	}

	return "; excluded: " + strings.Join(names, ", ")
}

// ComputeWindow excludes files whose timestamps do not parse; they are also
// left out of the merge.
func (mg *merger) ComputeWindow(files []m.Path) (MergeWindow, error) {
	var window MergeWindow

	for _, file := range files {
		start, end, err := mg.suiteTimes(file)
		if err != nil {
			slog.Warn("excluding result file without valid timestamps", "path", file, "error", err)
			window.Excluded = append(window.Excluded, file)

			continue
		}

		if len(window.Files) == 0 || start.Before(window.Start) {
			window.Start = start
		}

		if len(window.Files) == 0 || end.After(window.End) {
			window.End = end
		}

		window.Files = append(window.Files, file)
	}

	if len(window.Files) == 0 {
		return MergeWindow{Excluded: window.Excluded}, fmt.Errorf("%w%s", ErrNoTimestampedFiles, excludedSuffix(window.Excluded))
	}

	return window, nil
}

func (mg *merger) suiteTimes(file m.Path) (time.Time, time.Time, error) {
	parsed, err := mg.Parse(file)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := adapter.ParseRobotTimestamp(parsed.Suite.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}

	end, err := adapter.ParseRobotTimestamp(parsed.Suite.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}

	return start, end, nil
}

func (mg *merger) Merge(ctx context.Context, args MergeArgs) (m.MergeOutcome, error) {
	args = withMergeDefaults(args)

	found, err := mg.findResultFiles(args.BaseDir, args.Pattern)
	if err != nil {
		return m.MergeOutcome{}, err
	}

	window, err := mg.ComputeWindow(found.files)
	if err != nil {
		return m.MergeOutcome{}, err
	}

	if err := mg.MkdirAll(args.OutputDir); err != nil {
		return m.MergeOutcome{}, fmt.Errorf("create output dir %s: %w", args.OutputDir, err)
	}

	outcome := m.MergeOutcome{
		RunName:     args.RunName,
		Directories: found.dirs,
		Start:       window.Start,
		End:         window.End,
		Inputs:      window.Files,
		Excluded:    append(append([]m.Path(nil), found.rejected...), window.Excluded...),
		Output:      mg.JoinPath(string(args.OutputDir), "output.xml"),
		Log:         mg.JoinPath(string(args.OutputDir), "log.html"),
		Report:      mg.JoinPath(string(args.OutputDir), "report.html"),
		Manifest:    mg.JoinPath(string(args.OutputDir), ManifestFileName),
	}

	output, err := mg.Run(ctx, toolArgs(outcome, args.NoStatusRC))
	if err != nil {
		slog.Error("merge tool failed", "error", err, "output", strings.TrimSpace(output))
		return m.MergeOutcome{}, fmt.Errorf("%w: %v", ErrExternalToolFailure, err)
	}

	slog.Debug("merge tool output", "output", output)

	if err := mg.SaveManifest(outcome.Manifest, outcome); err != nil {
		slog.Warn("failed to write merge manifest", "path", outcome.Manifest, "error", err)
		outcome.Manifest = ""
	}

	return outcome, nil
}

func toolArgs(outcome m.MergeOutcome, noStatusRC bool) adapter.MergeToolArgs {
	return adapter.MergeToolArgs{
		StartTime:  outcome.Start.Format(mergeTimestampLayout),
		EndTime:    outcome.End.Format(mergeTimestampLayout),
		Name:       outcome.RunName,
		Output:     outcome.Output,
		Log:        outcome.Log,
		Report:     outcome.Report,
		Inputs:     outcome.Inputs,
		NoStatusRC: noStatusRC,
	}
}

func withMergeDefaults(args MergeArgs) MergeArgs {
	if args.BaseDir == "" {
		args.BaseDir = DefaultResultsBaseDir
	}

	if args.Pattern == "" {
		args.Pattern = DefaultResultsPattern
	}

	if args.OutputDir == "" {
		args.OutputDir = DefaultMergeOutputDir
	}

	if args.RunName == "" {
		args.RunName = DefaultMergeRunName
	}

	return args
}
