package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

const (
	summarySheetName = "Summary"
	maxSheetNameLen  = 31
)

var workbookHeader = []interface{}{"Test Name", "File", "Status", "Message", "Duration (ms)"}

// SaveWorkbook writes a Summary sheet followed by one sheet per category.
func (s *LocalReportStore) SaveWorkbook(path m.Path, snapshot m.Snapshot) error {
	book := excelize.NewFile()

	defer func() {
		_ = book.Close()
	}()

	if err := book.SetSheetName("Sheet1", summarySheetName); err != nil {
		return fmt.Errorf("rename summary sheet: %w", err)
	}

	if err := writeSummarySheet(book, snapshot); err != nil {
		return err
	}

	used := map[string]struct{}{strings.ToLower(summarySheetName): {}}

	for _, category := range snapshot.Categories {
		name := uniqueSheetName(string(category), used)

		if _, err := book.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := writeRecordSheet(book, name, snapshot.RecordsFor(category)); err != nil {
			return err
		}
	}

	book.SetActiveSheet(0)

	if err := os.MkdirAll(filepath.Dir(string(path)), reportDirPerm); err != nil {
		return fmt.Errorf("create workbook dir: %w", err)
	}

	if err := book.SaveAs(string(path)); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

func writeSummarySheet(book *excelize.File, snapshot m.Snapshot) error {
	rows := [][]interface{}{{"Category", "Total", "Passed", "Failed", "Duration (ms)"}}

	for _, category := range snapshot.Categories {
		counts := snapshot.Counts[category]
		rows = append(rows, []interface{}{string(category), counts.Total, counts.Passed, counts.Failed, counts.TotalDurationMillis})
	}

	overall := snapshot.Overall()
	rows = append(rows, []interface{}{"Overall", overall.Total, overall.Passed, overall.Failed, overall.TotalDurationMillis})

	return setRows(book, summarySheetName, rows)
}

func writeRecordSheet(book *excelize.File, sheet string, records []m.ResultRecord) error {
	rows := make([][]interface{}, 0, len(records)+1)
	rows = append(rows, workbookHeader)

	for _, record := range records {
		rows = append(rows, []interface{}{
			record.Name,
			record.SourceFile,
			string(record.Status),
			record.Message,
			record.DurationMillis,
		})
	}

	if err := setRows(book, sheet, rows); err != nil {
		return err
	}

	return book.SetColWidth(sheet, "A", "A", 48)
}

func setRows(book *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := row
		if err := book.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
		}
	}

	return nil
}

// uniqueSheetName strips characters Excel rejects and keeps names unique
// within the 31 character limit. Excel compares sheet names case-insensitively.
func uniqueSheetName(name string, used map[string]struct{}) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}

		return r
	}, strings.TrimSpace(name))

	if clean == "" {
		clean = string(m.DefaultCategory)
	}

	if len([]rune(clean)) > maxSheetNameLen {
		clean = string([]rune(clean)[:maxSheetNameLen])
	}

	candidate := clean

	for i := 2; ; i++ {
		if _, taken := used[strings.ToLower(candidate)]; !taken {
			break
		}

		suffix := fmt.Sprintf(" (%d)", i)
		base := []rune(clean)

		if len(base)+len(suffix) > maxSheetNameLen {
			base = base[:maxSheetNameLen-len(suffix)]
		}

		candidate = string(base) + suffix
	}

	used[strings.ToLower(candidate)] = struct{}{}

	return candidate
}
