// Package model defines the data structures for test result reporting.
package model

import "strings"

// Status is the outcome of a single test case.
type Status string

const (
	// StatusPass marks a test that passed.
	StatusPass Status = "PASS"
	// StatusFail marks a test that failed.
	StatusFail Status = "FAIL"
)

const (
	// NoMessage is recorded as the message of passed tests and of failures without detail.
	NoMessage = "N/A"
	// UnknownFile is recorded when the originating suite has no source attribute.
	UnknownFile = "Unknown File"
)

// Category groups records into report sections (e.g. "API Tests").
type Category string

// DefaultCategory is used when no grouping is requested.
const DefaultCategory Category = "Test Results"

var categoryAliases = map[string]Category{
	"api": "API Tests",
	"web": "Web Tests",
}

// CategoryFromName resolves a user supplied category name. The shorthands
// "api" and "web" expand to their section titles, an empty name yields
// DefaultCategory and anything else is used verbatim.
func CategoryFromName(name string) Category {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return DefaultCategory
	}

	if alias, ok := categoryAliases[strings.ToLower(trimmed)]; ok {
		return alias
	}

	return Category(trimmed)
}

// ResultRecord is the normalized outcome of one test case.
type ResultRecord struct {
	Name           string
	SourceFile     string // basename of the originating .robot file
	Status         Status
	Message        string
	DurationMillis int64
	Category       Category
}

// Passed reports whether the record is a passing test.
func (r ResultRecord) Passed() bool {
	return r.Status == StatusPass
}

// AggregateCounts summarizes a set of records.
type AggregateCounts struct {
	Total               int
	Passed              int
	Failed              int
	TotalDurationMillis int64
}

// Add folds a record into the counts keeping Total == Passed + Failed.
func (c *AggregateCounts) Add(record ResultRecord) {
	switch record.Status {
	case StatusPass:
		c.Passed++
	case StatusFail:
		c.Failed++
	default:
		return
	}

	c.Total++
	c.TotalDurationMillis += record.DurationMillis
}

// Merge adds other into c.
func (c *AggregateCounts) Merge(other AggregateCounts) {
	c.Total += other.Total
	c.Passed += other.Passed
	c.Failed += other.Failed
	c.TotalDurationMillis += other.TotalDurationMillis
}

// CountsFor computes counts over records.
func CountsFor(records []ResultRecord) AggregateCounts {
	var counts AggregateCounts
	for _, record := range records {
		counts.Add(record)
	}

	return counts
}
