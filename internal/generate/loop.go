package generate

import (
	"errors"
	"fmt"
	"time"

	"dummygen/internal/sizing"
)

// Plan is the resolved configuration for one run. It is immutable for the
// run's duration; nothing in it survives the run.
type Plan struct {
	TargetBytes int64
	Types       []sizing.FileType
	Ranges      sizing.Table
	DryRun      bool
}

// Materializer turns a planned file into bytes on disk (or pretends to) and
// reports the size that actually persisted.
type Materializer interface {
	Materialize(index int64, ext sizing.FileType, planned int64) (int64, error)
}

// Progress observes the loop from the outside. It is invoked after a file
// lands whenever completion advanced by at least five percentage points, and
// has no influence on control flow.
type Progress func(percent int, files int64, totalBytes int64)

// Result summarizes a completed run.
type Result struct {
	Files        int64
	TotalBytes   int64
	Elapsed      time.Duration
	CountsByType map[sizing.FileType]int64
	BytesPerSec  float64
}

// minElapsed floors the measured wall time when computing throughput so a
// sub-millisecond run cannot divide by zero.
const minElapsed = time.Millisecond

var (
	ErrNoTarget = errors.New("target size must be positive")
	ErrNoTypes  = errors.New("at least one file type must be enabled")
)

// Run drives the generation loop: rotate a type, allocate a size, hand the
// file to the materializer, and accumulate the actual size until the budget
// is spent. Files are numbered from 1 and each is fully written before the
// next is considered. Any materializer error aborts the run immediately,
// leaving already-created files in place.
func Run(plan Plan, alloc *sizing.Allocator, m Materializer, progress Progress) (*Result, error) {
	if plan.TargetBytes <= 0 {
		return nil, ErrNoTarget
	}
	if len(plan.Types) == 0 {
		return nil, ErrNoTypes
	}

	counts := make(map[sizing.FileType]int64, len(plan.Types))
	for _, ext := range plan.Types {
		counts[ext] = 0
	}

	var (
		totalBytes  int64
		fileIndex   int64
		lastPercent = -5 // forces an initial progress emission
	)
	start := time.Now()

	for totalBytes < plan.TargetBytes {
		fileIndex++
		remaining := plan.TargetBytes - totalBytes

		ext := sizing.RotateType(fileIndex, plan.Types)
		planned := alloc.NextSize(remaining, plan.Ranges.Lookup(ext))

		actual, err := m.Materialize(fileIndex, ext, planned)
		if err != nil {
			return nil, fmt.Errorf("generation aborted at file %d: %w", fileIndex, err)
		}

		totalBytes += actual
		counts[ext]++

		if progress != nil {
			percent := int(totalBytes * 100 / plan.TargetBytes)
			if percent-lastPercent >= 5 {
				lastPercent = percent
				progress(percent, fileIndex, totalBytes)
			}
		}
	}

	elapsed := time.Since(start)
	floored := elapsed
	if floored < minElapsed {
		floored = minElapsed
	}

	return &Result{
		Files:        fileIndex,
		TotalBytes:   totalBytes,
		Elapsed:      elapsed,
		CountsByType: counts,
		BytesPerSec:  float64(totalBytes) / floored.Seconds(),
	}, nil
}
