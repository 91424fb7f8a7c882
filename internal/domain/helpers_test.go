package domain_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fixtureTest struct {
	name    string
	status  string
	message string
	start   string
	end     string
}

// robotOutput renders a minimal RF 6 style output.xml.
func robotOutput(suiteSource, suiteStart, suiteEnd string, tests ...fixtureTest) string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<robot generator="Robot 6.1.1 (Python 3.11.4 on linux)" generated="20240110 12:00:05.500">` + "\n")
	fmt.Fprintf(&b, `<suite id="s1" name="Suite" source=%q>`+"\n", suiteSource)

	for i, test := range tests {
		fmt.Fprintf(&b, `<test id="s1-t%d" name=%q>`+"\n", i+1, test.name)

		if test.message != "" {
			fmt.Fprintf(&b, `<status status=%q starttime=%q endtime=%q>%s</status>`+"\n", test.status, test.start, test.end, test.message)
		} else {
			fmt.Fprintf(&b, `<status status=%q starttime=%q endtime=%q/>`+"\n", test.status, test.start, test.end)
		}

		b.WriteString("</test>\n")
	}

	fmt.Fprintf(&b, `<status status="PASS" starttime=%q endtime=%q/>`+"\n", suiteStart, suiteEnd)
	b.WriteString("</suite>\n</robot>\n")

	return b.String()
}

func loginOutput() string {
	return robotOutput("/work/webapp_tests/login.robot", "20240110 12:00:00.000", "20240110 12:00:05.000",
		fixtureTest{name: "Valid Login", status: "PASS", start: "20240110 12:00:00.000", end: "20240110 12:00:01.250"},
		fixtureTest{name: "Invalid Login", status: "FAIL", message: "Expected 'Welcome' but got 'Error'", start: "20240110 12:00:01.300", end: "20240110 12:00:02.000"},
		fixtureTest{name: "Search Later", status: "SKIP", start: "20240110 12:00:02.000", end: "20240110 12:00:02.000"},
	)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return string(data)
}
