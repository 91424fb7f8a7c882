// Package domain contains the result collection, rendering, merge and publish logic.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

// ResultFileName is the file Robot Framework writes its results to.
const ResultFileName = "output.xml"

// Collector accumulates result records from one or more result files.
type Collector interface {
	// Ingest parses source and adds its tests under category. It never resets
	// previously ingested sources; a failing source contributes nothing.
	Ingest(ctx context.Context, source m.Path, category m.Category) error
	// IngestAll ingests every source, skipping the ones that fail.
	IngestAll(ctx context.Context, sources []m.Path, category m.Category) (int, []error)
	// ExpandSources replaces directories by the result files found beneath them.
	ExpandSources(paths []m.Path) ([]m.Path, error)
	// Snapshot returns a copy of everything collected so far.
	Snapshot() m.Snapshot
}

type collector struct {
	adapter.RobotResultAdapter
	adapter.SourceFSAdapter

	acc accumulation
}

// NewCollector creates a Collector backed by the given parser and filesystem adapters.
func NewCollector(parser adapter.RobotResultAdapter, fsAdapter adapter.SourceFSAdapter) Collector {
	return &collector{
		RobotResultAdapter: parser,
		SourceFSAdapter:    fsAdapter,
		acc:                newAccumulation(),
	}
}

func (c *collector) Ingest(ctx context.Context, source m.Path, category m.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	exists, err := c.Exists(source)
	if err != nil {
		return fmt.Errorf("stat %s: %w", source, err)
	}

	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, source)
	}

	parsed, err := c.Parse(source)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnparseable, source, err)
	}

	records, skipped := RecordsFrom(parsed, category)
	c.acc = c.acc.with(category, records, skipped)

	slog.Info("ingested result file",
		"path", source,
		"category", category,
		"records", len(records),
		"skipped", skipped,
		"generator", parsed.Generator,
		"generated", parsed.Generated,
	)

	return nil
}

func (c *collector) IngestAll(ctx context.Context, sources []m.Path, category m.Category) (int, []error) {
	ingested := 0

	var errs []error

	for _, source := range sources {
		if err := c.Ingest(ctx, source, category); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				errs = append(errs, err)
				return ingested, errs
			}

			slog.Warn("skipping result source", "path", source, "error", err)
			errs = append(errs, err)

			continue
		}

		ingested++
	}

	return ingested, errs
}

func (c *collector) ExpandSources(paths []m.Path) ([]m.Path, error) {
	var expanded []m.Path

	for _, path := range paths {
		info, err := c.FileInfo(path)
		if err != nil || !info.IsDir() {
			// Missing files are kept so Ingest reports them as not found.
			expanded = append(expanded, path)
			continue
		}

		var found []m.Path

		walkErr := c.Walk(path, true, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !fi.IsDir() && filepath.Base(p) == ResultFileName {
				found = append(found, m.Path(p))
			}

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk %s: %w", path, walkErr)
		}

		sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

		if len(found) == 0 {
			slog.Warn("no result files found in directory", "path", path)
		}

		expanded = append(expanded, found...)
	}

	return expanded, nil
}

func (c *collector) Snapshot() m.Snapshot {
	return c.acc.snapshot()
}

// RecordsFrom folds the tests of a parsed result into records. Tests that are
// neither PASS nor FAIL are counted as skipped and produce no record.
func RecordsFrom(parsed *m.ParsedResult, category m.Category) ([]m.ResultRecord, int) {
	if parsed == nil {
		return nil, 0
	}

	records := make([]m.ResultRecord, 0, len(parsed.Suite.Tests))
	skipped := 0

	for _, test := range parsed.Suite.Tests {
		status := m.Status(test.Status)
		if status != m.StatusPass && status != m.StatusFail {
			skipped++
			continue
		}

		records = append(records, recordFrom(test, status, category))
	}

	return records, skipped
}

func recordFrom(test m.ParsedTest, status m.Status, category m.Category) m.ResultRecord {
	source := m.UnknownFile
	if test.Source != "" {
		source = filepath.Base(test.Source)
	}

	message := m.NoMessage
	if status == m.StatusFail && test.Message != "" {
		message = test.Message
	}

	duration := test.ElapsedMillis
	if duration < 0 {
		duration = 0
	}

	return m.ResultRecord{
		Name:           test.Name,
		SourceFile:     source,
		Status:         status,
		Message:        message,
		DurationMillis: duration,
		Category:       category,
	}
}

// accumulation is the explicit state threaded through ingestion.
type accumulation struct {
	records    []m.ResultRecord
	categories []m.Category
	counts     map[m.Category]m.AggregateCounts
	skipped    int
}

func newAccumulation() accumulation {
	return accumulation{counts: make(map[m.Category]m.AggregateCounts)}
}

// with returns the accumulation extended by records. The category is
// registered even when records is empty so it still gets a report section.
func (a accumulation) with(category m.Category, records []m.ResultRecord, skipped int) accumulation {
	next := accumulation{
		records:    append(append([]m.ResultRecord(nil), a.records...), records...),
		categories: append([]m.Category(nil), a.categories...),
		counts:     make(map[m.Category]m.AggregateCounts, len(a.counts)+1),
		skipped:    a.skipped + skipped,
	}

	for k, v := range a.counts {
		next.counts[k] = v
	}

	if _, seen := next.counts[category]; !seen {
		next.categories = append(next.categories, category)
		next.counts[category] = m.AggregateCounts{}
	}

	counts := next.counts[category]
	counts.Merge(m.CountsFor(records))
	next.counts[category] = counts

	return next
}

func (a accumulation) snapshot() m.Snapshot {
	counts := make(map[m.Category]m.AggregateCounts, len(a.counts))
	for k, v := range a.counts {
		counts[k] = v
	}

	return m.Snapshot{
		Records:    append([]m.ResultRecord(nil), a.records...),
		Categories: append([]m.Category(nil), a.categories...),
		Counts:     counts,
		Skipped:    a.skipped,
	}
}
