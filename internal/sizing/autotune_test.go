package sizing

import "testing"

func TestEstimateRangeExactValues(t *testing.T) {
	// 1 GiB over 1024 files averages 1 MiB per file, giving a 512 KB min
	// and a 1.5 MB max.
	r, err := EstimateRange(1073741824, 1024)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if r.Min != 524288 {
		t.Fatalf("expected min 524288, got %d", r.Min)
	}
	if r.Max != 1572864 {
		t.Fatalf("expected max 1572864, got %d", r.Max)
	}
}

func TestEstimateRangeAppliesGlobalFloor(t *testing.T) {
	// Tiny average: min must not drop below the global 2 KB floor, and max
	// must not drop below min.
	r, err := EstimateRange(4096, 100)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if r.Min != GlobalMinFileSize {
		t.Fatalf("expected floored min %d, got %d", GlobalMinFileSize, r.Min)
	}
	if r.Max < r.Min {
		t.Fatalf("max %d fell below min %d", r.Max, r.Min)
	}
}

func TestEstimateRangeRejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int64{0, -1, -1000} {
		if _, err := EstimateRange(1 << 30, n); err == nil {
			t.Fatalf("expected error for approx file count %d", n)
		}
	}
}
