// Package dataset - content index for instance relocation.
//
// ContentIndex answers "where inside the original dataset does this
// content live?" via binary search over a schema-sorted view. It exists
// because pseudo-labeled copies of unlabeled instances must be matched
// back to their originals across datasets that get filtered, reordered
// and partially relabeled; object identity is useless across copies, so
// the match is by content.
//
// Contracts:
//   - The index is a snapshot: instances appended to the dataset after
//     construction are invisible to lookups.
//   - Lookups return positions in the ORIGINAL dataset order, so callers
//     can address parallel arrays built over that order.
//   - When the indexed comparator excludes the class attribute, a
//     relabeled instance still resolves to its original position.
//
// Complexity: construction O(n log n); IndexOf O(m log n) for m
// attributes.
package dataset

import "sort"

// ContentIndex is a schema-sorted view over a dataset snapshot.
type ContentIndex struct {
	cmp    Comparator
	sorted []*Instance // instances in comparator order
	pos    []int       // pos[k] = original position of sorted[k]
}

// NewContentIndex builds a content index over a snapshot of d.
// includeClass selects whether the class label participates in ordering.
//
// Errors: ErrNilDataset.
func NewContentIndex(d *Dataset, includeClass bool) (*ContentIndex, error) {
	if d == nil {
		return nil, ErrNilDataset
	}

	n := d.Len()
	ix := &ContentIndex{
		cmp:    Comparator{Schema: d.Schema, IncludeClass: includeClass},
		sorted: make([]*Instance, n),
		pos:    make([]int, n),
	}

	// Snapshot instance contents: lookups must keep working even after
	// the live dataset relabels its instances in place.
	var i int
	for i = 0; i < n; i++ {
		ix.sorted[i] = d.Instances[i].Clone()
		ix.pos[i] = i
	}

	// Stable sort keeps the first-encountered original position in front
	// of duplicates, making duplicate resolution deterministic.
	sort.SliceStable(ix.pos, func(a, b int) bool {
		return ix.cmp.Compare(ix.sorted[ix.pos[a]], ix.sorted[ix.pos[b]]) < 0
	})
	// Reorder the snapshot to match pos so the binary search reads
	// contiguously.
	reordered := make([]*Instance, n)
	for i = 0; i < n; i++ {
		reordered[i] = ix.sorted[ix.pos[i]]
	}
	ix.sorted = reordered

	return ix, nil
}

// Len returns the number of indexed instances.
func (ix *ContentIndex) Len() int { return len(ix.sorted) }

// IndexOf locates inst by content and returns its position in the
// original dataset order. When absent it returns the negative sentinel
// -(insertion+1), mirroring the binary-search convention, so callers can
// both detect the miss and recover the insertion point.
func (ix *ContentIndex) IndexOf(inst *Instance) int {
	n := len(ix.sorted)
	// sort.Search finds the leftmost k with sorted[k] >= inst.
	k := sort.Search(n, func(k int) bool {
		return ix.cmp.Compare(ix.sorted[k], inst) >= 0
	})
	if k < n && ix.cmp.Compare(ix.sorted[k], inst) == 0 {
		return ix.pos[k]
	}

	return -(k + 1)
}

// MustIndexOf is IndexOf for paths where a miss is a programming error:
// the returned position indexes parallel arrays, so an absent instance
// must fail loudly rather than surface as a bogus -1.
//
// Errors: ErrInstanceNotFound.
func (ix *ContentIndex) MustIndexOf(inst *Instance) (int, error) {
	k := ix.IndexOf(inst)
	if k < 0 {
		return 0, ErrInstanceNotFound
	}

	return k, nil
}
