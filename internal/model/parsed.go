package model

// ParsedResult is the subset of a Robot Framework output.xml used for reporting.
type ParsedResult struct {
	Generator string
	Generated string
	Suite     ParsedSuite
}

// ParsedSuite is the root suite with every nested test flattened into Tests.
type ParsedSuite struct {
	Name   string
	Source string
	Start  string // raw timestamp as written by Robot Framework
	End    string
	Tests  []ParsedTest
}

// ParsedTest is a single test entry.
type ParsedTest struct {
	Name          string
	Source        string // source of the nearest enclosing suite
	Status        string
	Message       string
	ElapsedMillis int64 // -1 when unknown
}
