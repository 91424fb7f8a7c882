// Package main is the entry point for the robotreport CLI.
package main

import "github.com/sinesipho-jacobs/test-workflow/cmd"

func main() {
	cmd.Execute()
}
