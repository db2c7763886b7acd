package sizing

import "math/rand"

// Allocator decides how many bytes the next file gets. It owns the run's
// size RNG so that seeded runs reproduce the same sequence of decisions.
type Allocator struct {
	rng   *rand.Rand
	floor int64
}

// NewAllocator builds an allocator around rng. A floor of 0 or less falls
// back to GlobalMinFileSize.
func NewAllocator(rng *rand.Rand, floor int64) *Allocator {
	if floor <= 0 {
		floor = GlobalMinFileSize
	}
	return &Allocator{rng: rng, floor: floor}
}

// Floor returns the terminal-remainder threshold in bytes.
func (a *Allocator) Floor() int64 {
	return a.floor
}

// NextSize picks the planned size for the next file given the remaining
// budget and the chosen type's range.
//
// When the remainder drops to the floor or below, the file is terminal and
// absorbs the remainder exactly, which is what makes the loop converge on
// the target without overshooting. Otherwise the range max is clamped to
// the remainder and a uniform size is drawn. If the clamp pushes max below
// the range min the allocator writes max(min, remaining); with a min-size
// override larger than the remainder this branch overshoots the target, a
// boundary case callers accept rather than truncate.
func (a *Allocator) NextSize(remaining int64, r SizeRange) int64 {
	if remaining <= a.floor {
		return remaining
	}

	hi := r.Max
	if remaining < hi {
		hi = remaining
	}
	if hi < r.Min {
		if r.Min > remaining {
			return r.Min
		}
		return remaining
	}
	return r.Min + a.rng.Int63n(hi-r.Min+1)
}
