package sink

import (
	"os"
	"path/filepath"
	"testing"

	"dummygen/internal/randsrc"
	"dummygen/internal/sizing"
)

func TestFileNameFormat(t *testing.T) {
	cases := []struct {
		index int64
		ext   sizing.FileType
		want  string
	}{
		{1, "txt", "file_000001.txt"},
		{42, "png", "file_000042.png"},
		{999999, "zip", "file_999999.zip"},
		{1000000, "pdf", "file_1000000.pdf"},
	}
	for _, c := range cases {
		if got := FileName(c.index, c.ext); got != c.want {
			t.Fatalf("index %d: expected %s, got %s", c.index, c.want, got)
		}
	}
}

func TestMaterializeWritesExactSize(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	source, err := randsrc.Payload(42)
	if err != nil {
		t.Fatalf("failed to build payload source: %v", err)
	}
	s := New(dir, source, false, 0)

	actual, err := s.Materialize(1, "txt", 12345)
	if err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	if actual != 12345 {
		t.Fatalf("expected 12345 bytes on disk, got %d", actual)
	}

	stat, err := os.Stat(filepath.Join(dir, "file_000001.txt"))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if stat.Size() != 12345 {
		t.Fatalf("stat reports %d bytes", stat.Size())
	}
}

func TestMaterializeCreatesParentDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "out")
	source, _ := randsrc.Payload(1)
	s := New(dir, source, false, 0)

	if _, err := s.Materialize(1, "log", 2048); err != nil {
		t.Fatalf("materialize failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "file_000001.log")); err != nil {
		t.Fatalf("expected file in nested directory: %v", err)
	}
}

func TestMaterializeDryRunTouchesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := New(dir, nil, true, 0)

	actual, err := s.Materialize(1, "txt", 5000)
	if err != nil {
		t.Fatalf("dry-run materialize failed: %v", err)
	}
	if actual != 5000 {
		t.Fatalf("dry run must echo the planned size, got %d", actual)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("dry run created the output directory")
	}
}

func TestCleanRemovesOnlyGeneratedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"file_000001.txt", "file_000002.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}
	// Foreign files must survive a clean.
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("keep"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	s := New(dir, nil, false, 0)
	removed, err := s.Clean()
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removals, got %d", removed)
	}
	if _, err := os.Stat(filepath.Join(dir, "notes.md")); err != nil {
		t.Fatalf("clean removed a foreign file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "file_000001.txt")); !os.IsNotExist(err) {
		t.Fatalf("generated file survived clean")
	}
}

func TestCleanMissingDirectory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "never-created"), nil, false, 0)
	removed, err := s.Clean()
	if err != nil {
		t.Fatalf("clean of missing directory failed: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 removals, got %d", removed)
	}
}
