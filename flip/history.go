// Package flip - per-instance prediction history.
//
// History keeps, for every instance of a dataset snapshot, the last
// predicted distribution and a cumulative average, keyed by content
// identity (class excluded, so flipped labels still resolve). The
// average damps oscillation in stochastic strategies; the last value
// detects abrupt disagreement between consecutive passes for
// confidence-gated flipping.
//
// Lifecycle: one History per optimizer restart, built from the combined
// pool right after label initialization; entries are updated in place on
// every Add and never deleted within a run.
package flip

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/colearn/dataset"
)

// historyEntry is the running record for one instance.
type historyEntry struct {
	last  []float64 // most recently added distribution
	sum   []float64 // cumulative sum of added distributions
	count int       // number of Add calls recorded
}

// History tracks prediction movement per instance of a dataset snapshot.
type History struct {
	index   *dataset.ContentIndex
	entries []historyEntry // parallel to the snapshot's original order
	classes int            // distribution dimensionality
	log     *zap.Logger
	misses  int // unmatched Add calls (non-fatal, counted)
}

// NewHistory builds one entry per instance of ds. last starts as a
// one-hot vector at the instance's current label (zero vector when
// unlabeled), so disagreement gating has a baseline before the first
// pass; sum and count start at zero, keeping Average the exact
// arithmetic mean of the distributions added so far.
//
// logger may be nil; unmatched Add calls are then only counted.
//
// Errors: ErrNilDataset.
//
// Complexity: O(n log n) construction (content index sort).
func NewHistory(ds *dataset.Dataset, logger *zap.Logger) (*History, error) {
	ix, err := dataset.NewContentIndex(ds, false)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &History{
		index:   ix,
		entries: make([]historyEntry, ds.Len()),
		classes: ds.Schema.NumClasses(),
		log:     logger,
	}

	var (
		i    int               // instance cursor
		inst *dataset.Instance // current instance
		e    *historyEntry     // entry under construction
	)
	for i = 0; i < ds.Len(); i++ {
		inst = ds.Instances[i]
		e = &h.entries[i]
		e.last = make([]float64, h.classes)
		e.sum = make([]float64, h.classes)
		if inst.Labeled() {
			e.last[inst.Label] = 1
		}
	}

	return h, nil
}

// Add records dist for inst: count++, last = dist, sum += dist.
//
// An instance that cannot be matched by content is a non-fatal
// condition: one unmatched instance must not abort a whole flipping
// pass. The miss is logged and counted, and Add returns nil.
func (h *History) Add(inst *dataset.Instance, dist []float64) error {
	pos := h.index.IndexOf(inst)
	if pos < 0 {
		h.misses++
		h.log.Warn("flip history: instance not found, skipping update",
			zap.Int("origin", inst.Origin),
			zap.Int("insertion", -pos-1))

		return nil
	}

	e := &h.entries[pos]
	e.count++
	copy(e.last, dist)
	floats.Add(e.sum, dist)

	return nil
}

// Last returns the most recently added distribution for inst, or a zero
// vector when the instance is unknown.
func (h *History) Last(inst *dataset.Instance) []float64 {
	pos := h.index.IndexOf(inst)
	if pos < 0 {
		return make([]float64, h.classes)
	}

	out := make([]float64, h.classes)
	copy(out, h.entries[pos].last)

	return out
}

// Average returns the arithmetic mean of all distributions added for
// inst, a zero vector when count==0 or the instance is unknown.
func (h *History) Average(inst *dataset.Instance) []float64 {
	out := make([]float64, h.classes)
	pos := h.index.IndexOf(inst)
	if pos < 0 || h.entries[pos].count == 0 {
		return out
	}

	copy(out, h.entries[pos].sum)
	floats.Scale(1/float64(h.entries[pos].count), out)

	return out
}

// Misses returns how many Add calls failed to match an instance.
func (h *History) Misses() int { return h.misses }
