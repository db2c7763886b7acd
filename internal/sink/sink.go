package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"dummygen/internal/sizing"
)

// generatedNameGlob matches the files this tool creates and nothing else, so
// cleaning an output directory leaves foreign files alone.
const generatedNameGlob = "file_*.*"

// Sink materializes planned files inside a single output directory. Payload
// bytes come from an injected reader; in dry-run mode no I/O happens at all.
type Sink struct {
	dir        string
	source     io.Reader
	dryRun     bool
	bufferSize int
}

func New(dir string, source io.Reader, dryRun bool, bufferSize int) *Sink {
	if bufferSize <= 0 {
		bufferSize = 64 * 1024 // Default 64KB
	}
	return &Sink{
		dir:        dir,
		source:     source,
		dryRun:     dryRun,
		bufferSize: bufferSize,
	}
}

// FileName computes the deterministic name for a file index and extension.
// Indexes are unique and monotonic within a run, so collisions cannot occur.
func FileName(index int64, ext sizing.FileType) string {
	return fmt.Sprintf("file_%06d.%s", index, ext)
}

// Materialize creates one file of the planned size and reports the size that
// actually landed on disk. The size is queried back from the filesystem so
// the run total reflects what storage really persisted. In dry-run mode the
// planned size is returned unchanged.
func (s *Sink) Materialize(index int64, ext sizing.FileType, planned int64) (int64, error) {
	if s.dryRun {
		return planned, nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, FileName(index, ext))
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file %s: %w", path, err)
	}

	writer := bufio.NewWriterSize(file, s.bufferSize)
	if _, err := io.CopyN(writer, s.source, planned); err != nil {
		file.Close()
		return 0, fmt.Errorf("failed to write %d bytes to %s: %w", planned, path, err)
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return 0, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s after write: %w", path, err)
	}
	return stat.Size(), nil
}

// Clean removes previously generated files from the output directory and
// returns how many were deleted. Only entries matching the generator's own
// naming pattern are touched. A missing directory is not an error.
func (s *Sink) Clean() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read output directory %s: %w", s.dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(generatedNameGlob, entry.Name())
		if err != nil || !ok {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}

// Dir returns the sink's output directory.
func (s *Sink) Dir() string {
	return s.dir
}
