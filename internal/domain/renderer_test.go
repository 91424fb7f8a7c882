package domain_test

import (
	"encoding/xml"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinesipho-jacobs/test-workflow/internal/adapter"
	"github.com/sinesipho-jacobs/test-workflow/internal/domain"
	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

func webSnapshot() m.Snapshot {
	web := m.Category("Web Tests")
	records := []m.ResultRecord{
		{Name: "Valid Login", SourceFile: "login.robot", Status: m.StatusPass, Message: m.NoMessage, DurationMillis: 1250, Category: web},
		{Name: "Invalid Login", SourceFile: "login.robot", Status: m.StatusFail, Message: "Expected 'Welcome' but got 'Error'", DurationMillis: 700, Category: web},
	}

	return m.Snapshot{
		Records:    records,
		Categories: []m.Category{web},
		Counts:     map[m.Category]m.AggregateCounts{web: m.CountsFor(records)},
	}
}

const webSection = "## Web Tests\n\n" +
	"### 📊 Summary\n" +
	"- **Total Tests:** 2\n" +
	"- ✅ **Passed:** 1\n" +
	"- ❌ **Failed:** 1\n\n" +
	"| Test Name | File | Status | Message |\n" +
	"|-----------|------|--------|---------|\n" +
	"| Valid Login | login.robot | ✅ PASS | |\n" +
	"| Invalid Login | login.robot | ❌ FAIL | Expected 'Welcome' but got 'Error' |\n\n"

func TestRenderer_Render(t *testing.T) {
	renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())

	assert.Equal(t, webSection, renderer.Render(webSnapshot(), false))
	assert.Equal(t, domain.ReportTitle+"\n\n"+webSection, renderer.Render(webSnapshot(), true))
}

func TestRenderer_RenderIsDeterministic(t *testing.T) {
	renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())

	first := renderer.Render(webSnapshot(), true)
	second := renderer.Render(webSnapshot(), true)

	assert.Equal(t, first, second)
}

func TestRenderer_RowsFollowRecordStatus(t *testing.T) {
	renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())

	records := []m.ResultRecord{
		{Name: "Login works", SourceFile: "login.robot", Status: m.StatusPass, Message: m.NoMessage, Category: m.DefaultCategory},
		{Name: "Logout fails", SourceFile: "logout.robot", Status: m.StatusFail, Message: "assert failed", Category: m.DefaultCategory},
	}
	snapshot := m.Snapshot{
		Records:    records,
		Categories: []m.Category{m.DefaultCategory},
		Counts:     map[m.Category]m.AggregateCounts{m.DefaultCategory: m.CountsFor(records)},
	}

	out := renderer.Render(snapshot, false)

	assert.Contains(t, out, "| Login works | login.robot | ✅ PASS | |\n")
	assert.Contains(t, out, "| Logout fails | logout.robot | ❌ FAIL | assert failed |\n")
	assert.Contains(t, out, "- **Total Tests:** 2\n- ✅ **Passed:** 1\n- ❌ **Failed:** 1\n")
}

func TestRenderer_EmptyCategoryHasNoTable(t *testing.T) {
	renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())

	snapshot := m.Snapshot{
		Categories: []m.Category{"API Tests"},
		Counts:     map[m.Category]m.AggregateCounts{"API Tests": {}},
	}

	out := renderer.Render(snapshot, false)
	assert.Equal(t, "## API Tests\n\n### 📊 Summary\n- **Total Tests:** 0\n- ✅ **Passed:** 0\n- ❌ **Failed:** 0\n\n", out)
	assert.NotContains(t, out, "| Test Name")
}

func TestRenderer_MultiLineMessageStaysOnOneRow(t *testing.T) {
	renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())

	snapshot := webSnapshot()
	snapshot.Records[1].Message = "line one\nline two"

	out := renderer.Render(snapshot, false)
	assert.Contains(t, out, "| Invalid Login | login.robot | ❌ FAIL | line one<br>line two |\n")
}

func TestRenderer_AppendReport(t *testing.T) {
	t.Run("new file gets the title", func(t *testing.T) {
		renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())
		dest := filepath.Join(t.TempDir(), "report.md")

		content, err := renderer.AppendReport(m.Path(dest), webSnapshot(), "")
		require.NoError(t, err)

		assert.Equal(t, domain.ReportTitle+"\n\n"+webSection, content)
		assert.Equal(t, content, readFile(t, dest))
	})

	t.Run("prior content is kept as an exact prefix", func(t *testing.T) {
		renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())
		dest := filepath.Join(t.TempDir(), "report.md")
		prior := "# 🏆 Robot Framework Report\n\n## API Tests\n\nsomething"
		writeFile(t, dest, prior)

		content, err := renderer.AppendReport(m.Path(dest), webSnapshot(), "")
		require.NoError(t, err)

		onDisk := readFile(t, dest)
		assert.True(t, strings.HasPrefix(onDisk, prior))
		assert.Equal(t, prior+"\n"+webSection, onDisk)
		assert.Equal(t, onDisk, content)
		assert.Equal(t, 1, strings.Count(onDisk, domain.ReportTitle))
	})

	t.Run("blank file still gets the title", func(t *testing.T) {
		renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())
		dest := filepath.Join(t.TempDir(), "report.md")
		writeFile(t, dest, "\n")

		content, err := renderer.AppendReport(m.Path(dest), webSnapshot(), "")
		require.NoError(t, err)
		assert.Equal(t, "\n"+domain.ReportTitle+"\n\n"+webSection, content)
	})

	t.Run("step summary mirrors the new section", func(t *testing.T) {
		renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())
		dir := t.TempDir()
		dest := filepath.Join(dir, "report.md")
		summary := filepath.Join(dir, "step_summary.md")
		writeFile(t, summary, "existing\n")

		_, err := renderer.AppendReport(m.Path(dest), webSnapshot(), m.Path(summary))
		require.NoError(t, err)

		assert.Equal(t, "existing\n\n"+domain.ReportTitle+"\n\n"+webSection+"\n", readFile(t, summary))
	})
}

func TestRenderer_RenderMachineReadable(t *testing.T) {
	renderer := domain.NewRenderer(adapter.NewLocalSourceFSAdapter())

	data, err := renderer.RenderMachineReadable(webSnapshot().Records)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))

	var doc struct {
		Tests []struct {
			Name    string  `xml:"name,attr"`
			File    string  `xml:"file,attr"`
			Status  string  `xml:"status,attr"`
			Message *string `xml:"message"`
		} `xml:"test"`
	}
	require.NoError(t, xml.Unmarshal(data, &doc))
	require.Len(t, doc.Tests, 2)

	assert.Equal(t, "Valid Login", doc.Tests[0].Name)
	assert.Equal(t, "login.robot", doc.Tests[0].File)
	assert.Equal(t, "PASS", doc.Tests[0].Status)
	assert.Nil(t, doc.Tests[0].Message)

	assert.Equal(t, "FAIL", doc.Tests[1].Status)
	require.NotNil(t, doc.Tests[1].Message)
	assert.Equal(t, "Expected 'Welcome' but got 'Error'", *doc.Tests[1].Message)
}
