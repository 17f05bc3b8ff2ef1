// Package collective - label initialization and flip passes.
//
// InitializeLabels seeds pseudo-labels by drawing from the training
// class prior; FlipLabels applies the configured strategy to every
// instance of a contiguous region and reports the fraction of labels
// that actually changed. Both take the restart-local RNG explicitly.
//
// Contracts:
//   - The (from, count) region must lie inside target.
//   - The flipped-fraction accumulator is a per-call statistic: it is
//     reset at the start of each FlipLabels call, not cumulative.
package collective

import (
	"math/rand"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
	"github.com/katalvlaran/colearn/flip"
)

// InitializeLabels redraws the labels of target[from, from+count) from
// the empirical class prior of train's labeled instances. In the binary
// case this is exactly "label 0 with probability p0, else 1"; with more
// classes the draw uses the full prior. Consumes one rng draw per
// instance.
//
// Errors: ErrNoLabeled (no labeled training instance), ErrBadRegion via
// the flip package's region convention.
//
// Complexity: O(n_train + count).
func InitializeLabels(train, target *dataset.Dataset, from, count int, rng *rand.Rand) error {
	if target == nil {
		return dataset.ErrNilDataset
	}
	if from < 0 || count < 0 || from+count > target.Len() {
		return flip.ErrBadRegion
	}
	prior, err := train.ClassPrior()
	if err != nil {
		return err
	}

	var (
		i   int     // region cursor
		u   float64 // uniform draw
		acc float64 // cumulative prior mass
		c   int     // class cursor
	)
	for i = from; i < from+count; i++ {
		u = rng.Float64()
		acc = 0
		target.Instances[i].Label = len(prior) - 1 // rounding fallback
		for c = 0; c < len(prior)-1; c++ {
			acc += prior[c]
			if u < acc {
				target.Instances[i].Label = c

				break
			}
		}
	}

	return nil
}

// FlipLabels applies flipper to every instance of target[from,
// from+count) and writes the returned labels back. The returned fraction
// counts changed labels over the region size, starting from zero for
// this call.
//
// Learner failures propagate unchanged: a model that cannot predict is
// fatal for the pass (and for the restart that owns it).
//
// Complexity: O(count) strategy invocations.
func FlipLabels(clf classify.Classifier, target *dataset.Dataset, from, count int, hist *flip.History, flipper flip.Flipper, rng *rand.Rand) (float64, error) {
	if flipper == nil {
		return 0, ErrNilFlipper
	}

	var (
		flipped float64 // per-call changed-label fraction
		i       int     // region cursor
		prev    int     // label before the strategy call
		next    int     // label returned by the strategy
		err     error
	)
	for i = from; i < from+count; i++ {
		prev = target.Instances[i].Label
		next, err = flipper.FlipLabel(clf, target, from, count, i, hist, rng)
		if err != nil {
			return flipped, err
		}
		if next != prev {
			flipped += 1 / float64(count)
		}
		target.Instances[i].Label = next
	}

	return flipped, nil
}
