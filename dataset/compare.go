// Package dataset - deterministic content comparison.
//
// Comparator defines a total order over instances of one schema:
// attribute-by-attribute in schema order, with an optional final
// tie-break on the class label. The order is used to sort and
// binary-search datasets by content (see index.go).
//
// Design principles:
//   - Side-effect free; no allocations.
//   - NaN values sort before any finite value so the order stays total
//     even on malformed numeric data.
//
// Complexity: Compare is O(m) for m attributes.
package dataset

import "math"

// Comparator orders instances by content.
//
// IncludeClass selects whether the class label participates as the final
// tie-break. History and relabeling paths exclude the class so that a
// flipped pseudo-label does not change an instance's content identity.
type Comparator struct {
	Schema       *Schema
	IncludeClass bool
}

// Compare returns -1, 0 or +1 ordering a relative to b.
//
// Precondition: both instances conform to c.Schema (same arity); this is
// guaranteed for instances admitted through Dataset.Append.
func (c Comparator) Compare(a, b *Instance) int {
	var (
		i    int     // attribute cursor
		av   float64 // value of a at attribute i
		bv   float64 // value of b at attribute i
		sign int     // per-attribute comparison result
	)
	for i = 0; i < len(a.Values); i++ {
		av = a.Values[i]
		bv = b.Values[i]
		sign = compareFloat(av, bv)
		if sign != 0 {
			return sign
		}
	}

	if c.IncludeClass {
		if a.Label < b.Label {
			return -1
		}
		if a.Label > b.Label {
			return 1
		}
	}

	return 0
}

// compareFloat orders two float64 values totally: NaN < -Inf < … < +Inf,
// with NaN equal to NaN.
func compareFloat(a, b float64) int {
	aNaN := math.IsNaN(a)
	bNaN := math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
