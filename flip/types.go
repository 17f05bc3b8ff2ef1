// Package flip - strategy contract and sentinel errors.
package flip

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
)

// Sentinel errors returned by the flip package.
var (
	// ErrNotBinary indicates a strategy with binary-only semantics met a
	// distribution over != 2 classes. Multi-class toggle semantics are
	// deliberately not invented; use Simple for >2 classes.
	ErrNotBinary = errors.New("flip: strategy requires a binary class attribute")

	// ErrBadDelta indicates a Confident threshold outside the open
	// interval (0,1).
	ErrBadDelta = errors.New("flip: delta must lie in (0,1)")

	// ErrBadRegion indicates an instance index outside the flip region or
	// a non-positive region size.
	ErrBadRegion = errors.New("flip: index outside region or empty region")

	// ErrNilHistory indicates a nil *History argument.
	ErrNilHistory = errors.New("flip: history is nil")

	// ErrNilRNG indicates a nil *rand.Rand argument.
	ErrNilRNG = errors.New("flip: rng is nil")

	// ErrUnknownFlipper indicates an unrecognized strategy name passed to
	// the New factory.
	ErrUnknownFlipper = errors.New("flip: unknown flipper name")

	// ErrUnknownParam indicates a parameter name the selected strategy
	// does not accept. Unknown parameters fail fast instead of being
	// warned about and ignored.
	ErrUnknownParam = errors.New("flip: unknown flipper parameter")
)

// Flipper decides the new label for one instance of a dataset region.
//
// Contract:
//   - The instance lives at ds.Instances[index], with
//     from ≤ index < from+count describing the region under flipping.
//   - Implementations obtain one distribution from clf and record it into
//     hist exactly once per invocation, regardless of the decision.
//   - The returned label is the instance's next label; callers apply it
//     (implementations do not mutate the dataset).
//   - rng is the restart-local random source; implementations draw from
//     it only when their policy requires randomness, so gated "no flip"
//     branches stay deterministic no matter the RNG state.
type Flipper interface {
	FlipLabel(clf classify.Classifier, ds *dataset.Dataset, from, count, index int, hist *History, rng *rand.Rand) (int, error)
}

// checkFlipArgs validates the shared FlipLabel preconditions.
func checkFlipArgs(ds *dataset.Dataset, from, count, index int, hist *History, rng *rand.Rand) error {
	if hist == nil {
		return ErrNilHistory
	}
	if rng == nil {
		return ErrNilRNG
	}
	if ds == nil {
		return dataset.ErrNilDataset
	}
	if count <= 0 || from < 0 || index < from || index >= from+count || from+count > ds.Len() {
		return ErrBadRegion
	}

	return nil
}

// sampleLabel draws a class index from dist: label c is returned with
// probability dist[c]. Consumes exactly one rng.Float64(). Probability
// mass lost to rounding falls onto the last class.
func sampleLabel(dist []float64, rng *rand.Rand) int {
	var (
		u   = rng.Float64() // uniform draw in [0,1)
		acc float64         // cumulative mass
		c   int             // class cursor
	)
	for c = 0; c < len(dist)-1; c++ {
		acc += dist[c]
		if u < acc {
			return c
		}
	}

	return len(dist) - 1
}
