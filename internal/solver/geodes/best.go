package geodes

import "sync/atomic"

// Best is the best geode count confirmed so far in one search.
// It only ever grows and is safe for concurrent use, so sibling subtrees,
// sequential or parallel, all prune against the latest value.
type Best struct {
	v atomic.Int64
}

// NewBest returns an accumulator starting at initial
func NewBest(initial int) *Best {
	b := &Best{}
	b.v.Store(int64(initial))
	return b
}

// Load returns the current value
func (b *Best) Load() int {
	return int(b.v.Load())
}

// Raise sets the value to max(current, n) and reports whether it changed
func (b *Best) Raise(n int) bool {
	for {
		cur := b.v.Load()
		if int64(n) <= cur {
			return false
		}
		if b.v.CompareAndSwap(cur, int64(n)) {
			return true
		}
	}
}
