package domain

import "errors"

var (
	// ErrNotFound is returned when an expected result source does not exist.
	ErrNotFound = errors.New("result source not found")
	// ErrUnparseable is returned when a source is not a valid result file.
	ErrUnparseable = errors.New("result source is not a parseable result file")
	// ErrNoResults is returned when no source could be ingested at all.
	ErrNoResults = errors.New("no test results collected")

	// ErrNoSourceDirectories is returned when no directory matches the merge pattern.
	ErrNoSourceDirectories = errors.New("no result directories found")
	// ErrNoValidFiles is returned when no discovered file passes validation.
	ErrNoValidFiles = errors.New("no valid result files found")
	// ErrNoTimestampedFiles is returned when no valid file carries usable timestamps.
	ErrNoTimestampedFiles = errors.New("no result files with valid timestamps found")
	// ErrExternalToolFailure is returned when the merge tool exits unsuccessfully.
	ErrExternalToolFailure = errors.New("merge tool failed")

	// ErrMissingCredentials is returned when publishing lacks a token, repository or commit.
	ErrMissingCredentials = errors.New("missing check run credentials")
)
