package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const metricsNamespace = "robot"

// ReportStore persists report artifacts that are not Markdown.
type ReportStore interface {
	// SaveWorkbook writes an XLSX workbook with one sheet per category.
	SaveWorkbook(path m.Path, snapshot m.Snapshot) error
	// SaveMetrics writes the counts in the Prometheus text exposition format.
	SaveMetrics(path m.Path, snapshot m.Snapshot) error
	// SaveManifest records the outcome of a merge next to the merged output.
	SaveManifest(path m.Path, outcome m.MergeOutcome) error
}

// LocalReportStore writes artifacts to the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveMetrics builds a private registry so repeated calls never collide with
// collectors registered elsewhere, then writes it atomically.
func (s *LocalReportStore) SaveMetrics(path m.Path, snapshot m.Snapshot) error {
	registry := prometheus.NewRegistry()

	tests := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "tests",
		Help:      "Number of Robot Framework tests by category and status",
	}, []string{"category", "status"})

	duration := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "tests_duration_seconds",
		Help:      "Summed duration of Robot Framework tests by category",
	}, []string{"category"})

	if err := registry.Register(tests); err != nil {
		return fmt.Errorf("register tests gauge: %w", err)
	}

	if err := registry.Register(duration); err != nil {
		return fmt.Errorf("register duration gauge: %w", err)
	}

	for _, category := range snapshot.Categories {
		counts := snapshot.Counts[category]
		tests.WithLabelValues(string(category), string(m.StatusPass)).Set(float64(counts.Passed))
		tests.WithLabelValues(string(category), string(m.StatusFail)).Set(float64(counts.Failed))
		duration.WithLabelValues(string(category)).Set(float64(counts.TotalDurationMillis) / 1000)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), reportDirPerm); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}

	if err := prometheus.WriteToTextfile(string(path), registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}

// SaveManifest writes the merge outcome as YAML.
func (s *LocalReportStore) SaveManifest(path m.Path, outcome m.MergeOutcome) error {
	data, err := yaml.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), reportDirPerm); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	if err := os.WriteFile(string(path), data, reportFilePerm); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}
