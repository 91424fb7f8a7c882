package adapter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

// ErrNotRobotResult is returned when a file parses as XML but is not a
// Robot Framework result document.
var ErrNotRobotResult = errors.New("not a robot framework result file")

const (
	legacyTimestampLayout = "20060102 15:04:05"
	isoTimestampLayout    = "2006-01-02T15:04:05"
	isoTimestampOutLayout = "2006-01-02T15:04:05.000000"
)

// RobotResultAdapter reads Robot Framework output.xml files so the domain
// layer never touches the XML schema directly.
type RobotResultAdapter interface {
	// Parse decodes the result file at path.
	Parse(path m.Path) (*m.ParsedResult, error)
}

// LocalRobotResultAdapter parses result files from the local filesystem.
type LocalRobotResultAdapter struct{}

// NewLocalRobotResultAdapter constructs a LocalRobotResultAdapter.
func NewLocalRobotResultAdapter() *LocalRobotResultAdapter {
	return &LocalRobotResultAdapter{}
}

type robotXML struct {
	XMLName   xml.Name  `xml:"robot"`
	Generator string    `xml:"generator,attr"`
	Generated string    `xml:"generated,attr"`
	Suite     *suiteXML `xml:"suite"`
}

type suiteXML struct {
	Name   string     `xml:"name,attr"`
	Source string     `xml:"source,attr"`
	Suites []suiteXML `xml:"suite"`
	Tests  []testXML  `xml:"test"`
	Status statusXML  `xml:"status"`
}

type testXML struct {
	Name   string    `xml:"name,attr"`
	Status statusXML `xml:"status"`
}

// statusXML covers both the RF <= 6 (starttime/endtime/elapsedtime) and the
// RF 7 (start/elapsed) attribute sets.
type statusXML struct {
	Status      string `xml:"status,attr"`
	StartTime   string `xml:"starttime,attr"`
	EndTime     string `xml:"endtime,attr"`
	ElapsedTime string `xml:"elapsedtime,attr"`
	Start       string `xml:"start,attr"`
	Elapsed     string `xml:"elapsed,attr"`
	Message     string `xml:",chardata"`
}

// Parse reads and decodes a Robot Framework output.xml file.
func (a *LocalRobotResultAdapter) Parse(path m.Path) (*m.ParsedResult, error) {
	// #nosec G304 - result files are discovered by the tool itself
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return ParseRobotResult(data)
}

// ParseRobotResult decodes an in-memory output.xml document.
func ParseRobotResult(data []byte) (*m.ParsedResult, error) {
	var doc robotXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		var unexpected xml.UnmarshalError
		if errors.As(err, &unexpected) {
			return nil, fmt.Errorf("%w: %v", ErrNotRobotResult, err)
		}

		return nil, fmt.Errorf("decode xml: %w", err)
	}

	if doc.Suite == nil {
		return nil, fmt.Errorf("%w: missing root suite", ErrNotRobotResult)
	}

	start, end := suiteWindow(doc.Suite.Status)

	result := &m.ParsedResult{
		Generator: doc.Generator,
		Generated: doc.Generated,
		Suite: m.ParsedSuite{
			Name:   doc.Suite.Name,
			Source: doc.Suite.Source,
			Start:  start,
			End:    end,
		},
	}

	result.Suite.Tests = flattenTests(doc.Suite, "", result.Suite.Tests)

	return result, nil
}

func flattenTests(suite *suiteXML, inherited string, tests []m.ParsedTest) []m.ParsedTest {
	source := suite.Source
	if source == "" {
		source = inherited
	}

	for _, test := range suite.Tests {
		tests = append(tests, m.ParsedTest{
			Name:          test.Name,
			Source:        source,
			Status:        strings.ToUpper(strings.TrimSpace(test.Status.Status)),
			Message:       strings.TrimSpace(test.Status.Message),
			ElapsedMillis: elapsedMillis(test.Status),
		})
	}

	for i := range suite.Suites {
		tests = flattenTests(&suite.Suites[i], source, tests)
	}

	return tests
}

// suiteWindow returns the raw start/end timestamps of a suite. RF 7 only
// records a start and an elapsed time, so the end is derived from both.
func suiteWindow(status statusXML) (string, string) {
	if status.StartTime != "" || status.EndTime != "" {
		return status.StartTime, status.EndTime
	}

	if status.Start == "" {
		return "", ""
	}

	start, err := ParseRobotTimestamp(status.Start)
	if err != nil {
		return status.Start, ""
	}

	seconds, err := strconv.ParseFloat(status.Elapsed, 64)
	if err != nil {
		return status.Start, ""
	}

	end := start.Add(time.Duration(math.Round(seconds*1000)) * time.Millisecond)

	return status.Start, end.Format(isoTimestampOutLayout)
}

func elapsedMillis(status statusXML) int64 {
	if status.ElapsedTime != "" {
		if ms, err := strconv.ParseInt(status.ElapsedTime, 10, 64); err == nil && ms >= 0 {
			return ms
		}
	}

	if status.Elapsed != "" {
		if seconds, err := strconv.ParseFloat(status.Elapsed, 64); err == nil && seconds >= 0 {
			return int64(math.Round(seconds * 1000))
		}
	}

	start, err := parsePreciseTimestamp(status.StartTime)
	if err != nil {
		return -1
	}

	end, err := parsePreciseTimestamp(status.EndTime)
	if err != nil || end.Before(start) {
		return -1
	}

	return end.Sub(start).Milliseconds()
}

// ParseRobotTimestamp parses the timestamps written by Robot Framework:
// "YYYYMMDD HH:MM:SS[.ffffff]" and the RF 7 ISO-8601 form. The fractional
// part is discarded.
func ParseRobotTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	clean, _, _ := strings.Cut(trimmed, ".")

	layout := legacyTimestampLayout
	if strings.Contains(clean, "T") {
		layout = isoTimestampLayout
	}

	ts, err := time.Parse(layout, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}

	return ts, nil
}

// parsePreciseTimestamp keeps the milliseconds so per-test durations stay accurate.
func parsePreciseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	// time.Parse accepts a trailing fractional second the layout does not mention.
	return time.Parse(legacyTimestampLayout, trimmed)
}
