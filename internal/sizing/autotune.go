package sizing

import "fmt"

// EstimateRange derives a single global size range from a total byte budget
// and a desired approximate file count, centering a 50% window around the
// average file size. The result is meant to override the per-type table
// wholesale before generation starts.
func EstimateRange(targetBytes int64, approxFiles int64) (SizeRange, error) {
	if approxFiles <= 0 {
		return SizeRange{}, fmt.Errorf("approx file count must be a positive integer, got %d", approxFiles)
	}

	avg := targetBytes / approxFiles

	min := avg / 2
	if min < GlobalMinFileSize {
		min = GlobalMinFileSize
	}
	max := avg + avg/2
	if max < min {
		max = min
	}

	return SizeRange{Min: min, Max: max}, nil
}
