package domain

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	// ReportTitle heads a report file the first time it is written.
	ReportTitle = "# 🏆 Robot Framework Report"

	passLabel = "✅ PASS"
	failLabel = "❌ FAIL"
)

// Renderer turns collected results into report documents.
type Renderer interface {
	// Render produces the Markdown sections for every category of snapshot.
	Render(snapshot m.Snapshot, withTitle bool) string
	// RenderMachineReadable produces an XML document listing every record.
	RenderMachineReadable(records []m.ResultRecord) ([]byte, error)
	// AppendReport appends the rendered sections to dest, keeping any prior
	// content as an exact prefix, and mirrors the new sections into
	// stepSummary when it is set. It returns the full report content.
	AppendReport(dest m.Path, snapshot m.Snapshot, stepSummary m.Path) (string, error)
}

type renderer struct {
	adapter.SourceFSAdapter
}

// NewRenderer creates a Renderer writing through fsAdapter.
func NewRenderer(fsAdapter adapter.SourceFSAdapter) Renderer {
	return &renderer{SourceFSAdapter: fsAdapter}
}

func (r *renderer) Render(snapshot m.Snapshot, withTitle bool) string {
	var b strings.Builder

	if withTitle {
		b.WriteString(ReportTitle)
		b.WriteString("\n\n")
	}

	for _, category := range snapshot.Categories {
		writeCategorySection(&b, category, snapshot.Counts[category], snapshot.RecordsFor(category))
	}

	return b.String()
}

func writeCategorySection(b *strings.Builder, category m.Category, counts m.AggregateCounts, records []m.ResultRecord) {
	fmt.Fprintf(b, "## %s\n\n", category)
	b.WriteString("### 📊 Summary\n")
	fmt.Fprintf(b, "- **Total Tests:** %d\n", counts.Total)
	fmt.Fprintf(b, "- ✅ **Passed:** %d\n", counts.Passed)
	fmt.Fprintf(b, "- ❌ **Failed:** %d\n\n", counts.Failed)

	if counts.Total == 0 {
		return
	}

	b.WriteString("| Test Name | File | Status | Message |\n")
	b.WriteString("|-----------|------|--------|---------|\n")

	for _, record := range records {
		if record.Passed() {
			fmt.Fprintf(b, "| %s | %s | %s | |\n", record.Name, record.SourceFile, passLabel)
			continue
		}

		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", record.Name, record.SourceFile, failLabel, tableCell(record.Message))
	}

	b.WriteString("\n")
}

// tableCell keeps multi-line failure messages on a single table row.
func tableCell(message string) string {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	return strings.ReplaceAll(message, "\n", "<br>")
}

type machineResults struct {
	XMLName xml.Name      `xml:"testResults"`
	Tests   []machineTest `xml:"test"`
}

type machineTest struct {
	Name     string `xml:"name,attr"`
	File     string `xml:"file,attr"`
	Status   string `xml:"status,attr"`
	Category string `xml:"category,attr,omitempty"`
	Duration int64  `xml:"duration,attr"`
	Message  string `xml:"message,omitempty"`
}

func (r *renderer) RenderMachineReadable(records []m.ResultRecord) ([]byte, error) {
	doc := machineResults{Tests: make([]machineTest, 0, len(records))}

	for _, record := range records {
		test := machineTest{
			Name:     record.Name,
			File:     record.SourceFile,
			Status:   string(record.Status),
			Category: string(record.Category),
			Duration: record.DurationMillis,
		}

		if !record.Passed() {
			test.Message = record.Message
		}

		doc.Tests = append(doc.Tests, test)
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode results xml: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')

	return out, nil
}

func (r *renderer) AppendReport(dest m.Path, snapshot m.Snapshot, stepSummary m.Path) (string, error) {
	prior, err := r.existingContent(dest)
	if err != nil {
		return "", err
	}

	withTitle := strings.TrimSpace(prior) == ""
	section := r.Render(snapshot, withTitle)

	addition := section
	if prior != "" && !strings.HasSuffix(prior, "\n") {
		addition = "\n" + section
	}

	if err := r.AppendFile(dest, []byte(addition)); err != nil {
		return "", fmt.Errorf("write report %s: %w", dest, err)
	}

	slog.Info("report written", "path", dest, "categories", len(snapshot.Categories), "title", withTitle)

	if stepSummary != "" {
		if err := r.AppendFile(stepSummary, []byte("\n"+section+"\n")); err != nil {
			return "", fmt.Errorf("write step summary %s: %w", stepSummary, err)
		}
	}

	return prior + addition, nil
}

func (r *renderer) existingContent(dest m.Path) (string, error) {
	exists, err := r.Exists(dest)
	if err != nil {
		return "", fmt.Errorf("stat report %s: %w", dest, err)
	}

	if !exists {
		return "", nil
	}

	data, err := r.ReadFile(dest)
	if err != nil {
		return "", fmt.Errorf("read report %s: %w", dest, err)
	}

	return string(data), nil
}
