// Package flip - Triangle strategy.
//
// Triangle toggles the current binary label with a probability that
// decays linearly in the classifier's confidence:
//
//	threshold = max(5/count, 1 − 2·(p − 0.5))
//
// where p is the probability of the predicted class and count the size
// of the region under flipping. At p = 0.5 the threshold is exactly 1
// (maximal uncertainty ⇒ always reconsider); as p → 1 it decays to the
// floor 5/count, so even confident labels are revisited with a small,
// size-dependent probability and never lock in permanently.
package flip

import (
	"math/rand"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
)

// triangleFloorWeight is the numerator of the size-dependent flip floor.
const triangleFloorWeight = 5.0

// Triangle is the linear-decay toggle strategy. Binary classes only.
type Triangle struct{}

// NewTriangle returns the Triangle strategy.
func NewTriangle() *Triangle { return &Triangle{} }

// FlipLabel toggles the instance's label 0↔1 with the triangle
// threshold probability; otherwise the current label is kept.
// Consumes exactly one rng draw per invocation.
//
// Errors: ErrNotBinary for non-binary distributions; dataset.ErrBadLabel
// when the current label is neither 0 nor 1.
func (tr *Triangle) FlipLabel(clf classify.Classifier, ds *dataset.Dataset, from, count, index int, hist *History, rng *rand.Rand) (int, error) {
	if err := checkFlipArgs(ds, from, count, index, hist, rng); err != nil {
		return 0, err
	}

	inst := ds.Instances[index]
	dist, err := clf.PredictDistribution(inst)
	if err != nil {
		return 0, err
	}
	if err = hist.Add(inst, dist); err != nil {
		return 0, err
	}
	if len(dist) != 2 {
		return 0, ErrNotBinary
	}

	// p = confidence in the predicted class (≥ 0.5 in the binary case).
	p := dist[0]
	if dist[1] > p {
		p = dist[1]
	}

	// The 0↔1 toggle needs a binary label to start from.
	cur := inst.Label
	if cur != 0 && cur != 1 {
		return 0, dataset.ErrBadLabel
	}
	if rng.Float64() < triangleThreshold(p, count) {
		return 1 - cur, nil
	}

	return cur, nil
}

// triangleThreshold computes max(5/count, 1 − 2·(p − 0.5)).
func triangleThreshold(p float64, count int) float64 {
	var (
		floor = triangleFloorWeight / float64(count)
		decay = 1 - 2*(p-0.5)
	)
	if decay > floor {
		return decay
	}

	return floor
}
