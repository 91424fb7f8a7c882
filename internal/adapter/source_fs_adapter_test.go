package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/sinesipho-jacobs/test-workflow/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "output.xml"), "<robot/>")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "output.xml"), "<robot/>")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(nestedDir, "output.xml")) {
			t.Fatalf("Walk() unexpectedly visited nested file when recursive is false")
		}

		if !containsPath(visited, filepath.Join(root, "output.xml")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		child := filepath.Join(root, "a", "b", "output.xml")
		mustMkdir(t, filepath.Dir(child))
		writeTestFile(t, child, "<robot/>")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file %s", child)
		}
	})
}

func TestLocalSourceFSAdapter_Glob(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "robot-test-results-2"))
	mustMkdir(t, filepath.Join(root, "robot-test-results-1"))
	mustMkdir(t, filepath.Join(root, "unrelated"))

	matches, err := adapter.Glob(filepath.Join(root, "robot-test-results-*"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}

	want := []m.Path{
		m.Path(filepath.Join(root, "robot-test-results-1")),
		m.Path(filepath.Join(root, "robot-test-results-2")),
	}

	if len(matches) != len(want) {
		t.Fatalf("Glob() = %v, want %v", matches, want)
	}

	for i := range want {
		if matches[i] != want[i] {
			t.Fatalf("Glob()[%d] = %s, want %s", i, matches[i], want[i])
		}
	}

	if _, err := adapter.Glob("["); err == nil {
		t.Fatalf("Glob() expected error for malformed pattern")
	}
}

func TestLocalSourceFSAdapter_Exists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	file := filepath.Join(root, "report.md")
	writeTestFile(t, file, "# report\n")

	exists, err := adapter.Exists(m.Path(file))
	if err != nil || !exists {
		t.Fatalf("Exists(%s) = %v, %v; want true, nil", file, exists, err)
	}

	exists, err = adapter.Exists(m.Path(filepath.Join(root, "missing.md")))
	if err != nil || exists {
		t.Fatalf("Exists(missing) = %v, %v; want false, nil", exists, err)
	}
}

func TestLocalSourceFSAdapter_AppendFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := m.Path(filepath.Join(t.TempDir(), "nested", "report.md"))

	if err := adapter.AppendFile(path, []byte("first\n")); err != nil {
		t.Fatalf("AppendFile() error = %v", err)
	}

	if err := adapter.AppendFile(path, []byte("second\n")); err != nil {
		t.Fatalf("AppendFile() error = %v", err)
	}

	data, err := adapter.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(data) != "first\nsecond\n" {
		t.Fatalf("ReadFile() = %q, want %q", data, "first\nsecond\n")
	}
}

func TestLocalSourceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := m.Path(filepath.Join(t.TempDir(), "a", "b", "results.xml"))

	if err := adapter.WriteFile(path, []byte("<testResults/>")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := adapter.WriteFile(path, []byte("<x/>")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := adapter.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(data) != "<x/>" {
		t.Fatalf("WriteFile() did not replace content, got %q", data)
	}
}

func TestLocalSourceFSAdapter_Paths(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	joined := adapter.JoinPath("merged-results", "output.xml")
	if joined != m.Path(filepath.Join("merged-results", "output.xml")) {
		t.Fatalf("JoinPath() = %s", joined)
	}

	abs, err := adapter.AbsPath("output.xml")
	if err != nil || !filepath.IsAbs(string(abs)) {
		t.Fatalf("AbsPath() = %s, %v", abs, err)
	}

	rel, err := adapter.RelPath("/work", "/work/results/output.xml")
	if err != nil || rel != m.Path(filepath.Join("results", "output.xml")) {
		t.Fatalf("RelPath() = %s, %v", rel, err)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, path := range paths {
		if path == target {
			return true
		}
	}

	return false
}
