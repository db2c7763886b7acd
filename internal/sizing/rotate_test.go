package sizing

import "testing"

func TestRotateTypeCycles(t *testing.T) {
	types := []FileType{"txt", "png", "zip"}

	want := []FileType{"txt", "png", "zip", "txt", "png", "zip", "txt"}
	for i, expected := range want {
		got := RotateType(int64(i+1), types)
		if got != expected {
			t.Fatalf("index %d: expected %s, got %s", i+1, expected, got)
		}
	}
}

func TestRotateTypePeriodic(t *testing.T) {
	types := []FileType{"txt", "log", "csv", "json", "xml"}
	period := int64(len(types))

	for i := int64(1); i <= 100; i++ {
		if RotateType(i, types) != RotateType(i+period, types) {
			t.Fatalf("rotation not periodic at index %d", i)
		}
	}
}

func TestRotateTypeSingleType(t *testing.T) {
	types := []FileType{"txt"}
	for i := int64(1); i <= 10; i++ {
		if RotateType(i, types) != "txt" {
			t.Fatalf("single-type rotation broke at index %d", i)
		}
	}
}
