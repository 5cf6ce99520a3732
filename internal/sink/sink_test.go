package sink

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenConsoleAndFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "sub", "b.txt")

	var console bytes.Buffer
	s, err := Open(&console, a, "", b)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	fmt.Fprint(s, "    };\n")
	if err := s.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close after Commit returned %v", err)
	}

	if console.String() != "    };\n" {
		t.Errorf("console got %q", console.String())
	}
	for _, p := range []string{a, b} {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("failed to read %s: %v", p, err)
		}
		if string(data) != "    };\n" {
			t.Errorf("%s got %q", p, data)
		}
	}
	if len(s.Paths()) != 2 {
		t.Errorf("expected 2 paths, got %v", s.Paths())
	}
}

func TestCommitReplaces(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(p, []byte("old contents that are longer"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(nil, p)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	fmt.Fprint(s, "new")
	if err := s.Commit(); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	data, _ := os.ReadFile(p)
	if string(data) != "new" {
		t.Errorf("expected replaced file, got %q", data)
	}
}

func TestCloseWithoutCommitKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "expected.txt")
	if err := os.WriteFile(p, []byte("previous fixture\n"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(nil, p)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	fmt.Fprint(s, "partial")
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}

	data, _ := os.ReadFile(p)
	if string(data) != "previous fixture\n" {
		t.Errorf("file changed without Commit: %q", data)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("staging files left behind: %v", entries)
	}
}

func TestOpenFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// A path below a regular file cannot be created.
	_, err := Open(nil, filepath.Join(dir, "ok.txt"), filepath.Join(blocker, "x.txt"))
	if err == nil {
		t.Fatal("expected error")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("staging files left behind: %v", entries)
	}
}
