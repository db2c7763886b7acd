package sizing

// FileType is a file extension tag such as "txt" or "png". It carries no
// behavior; it keys the range table and participates in rotation.
type FileType string

// SizeRange is an inclusive (Min, Max) byte interval. Ranges are built once
// per run and never mutated afterwards.
type SizeRange struct {
	Min int64
	Max int64
}

const (
	// GlobalMinFileSize is the floor below which the remaining budget is
	// written out as a single terminal file.
	GlobalMinFileSize = 2 * 1024

	fallbackMin = 4 * 1024
	fallbackMax = 64 * 1024
)

// DefaultFileTypes lists every supported extension in rotation order.
var DefaultFileTypes = []FileType{
	"txt", "log", "csv",
	"json", "xml",
	"png", "pdf",
	"zip",
}

// DefaultSizeRanges holds the built-in per-type size windows.
var DefaultSizeRanges = map[FileType]SizeRange{
	"txt":  {Min: 4 * 1024, Max: 64 * 1024},
	"log":  {Min: 4 * 1024, Max: 64 * 1024},
	"csv":  {Min: 4 * 1024, Max: 64 * 1024},
	"json": {Min: 2 * 1024, Max: 32 * 1024},
	"xml":  {Min: 2 * 1024, Max: 32 * 1024},
	"png":  {Min: 32 * 1024, Max: 256 * 1024},
	"pdf":  {Min: 32 * 1024, Max: 256 * 1024},
	"zip":  {Min: 64 * 1024, Max: 512 * 1024},
}

// FallbackRange covers types that have no entry in the defaults table.
func FallbackRange() SizeRange {
	return SizeRange{Min: fallbackMin, Max: fallbackMax}
}

// Table maps enabled file types to their size ranges for one run.
type Table map[FileType]SizeRange

// BuildTable resolves a range for each enabled type, starting from the given
// defaults (or the fallback range for types missing from them) and applying
// the optional global min/max overrides in KB. An override that would invert
// a range is repaired by raising Max to Min, so every produced range
// satisfies Min <= Max. A nil defaults map uses the built-in table.
func BuildTable(enabled []FileType, defaults map[FileType]SizeRange, minSizeKB, maxSizeKB int64) Table {
	if defaults == nil {
		defaults = DefaultSizeRanges
	}
	table := make(Table, len(enabled))
	for _, ext := range enabled {
		r, ok := defaults[ext]
		if !ok {
			r = FallbackRange()
		}
		if minSizeKB > 0 {
			if floor := minSizeKB * 1024; floor > r.Min {
				r.Min = floor
			}
		}
		if maxSizeKB > 0 {
			if ceil := maxSizeKB * 1024; ceil < r.Max {
				r.Max = ceil
			}
		}
		if r.Max < r.Min {
			r.Max = r.Min
		}
		table[ext] = r
	}
	return table
}

// Lookup returns the range for ext, falling back to the built-in default
// window when the type is missing. The loop should never hit the fallback
// given how tables are built, but it keeps a missing entry from producing a
// zero-sized file.
func (t Table) Lookup(ext FileType) SizeRange {
	if r, ok := t[ext]; ok {
		return r
	}
	return SizeRange{Min: GlobalMinFileSize, Max: fallbackMax}
}

// Override replaces every entry with the same range, preserving the set of
// enabled types. Used by the auto-tuner before generation starts.
func (t Table) Override(r SizeRange) Table {
	out := make(Table, len(t))
	for ext := range t {
		out[ext] = r
	}
	return out
}
