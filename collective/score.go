// Package collective - labeling scores.
//
// Two score families rank a labeling/model pair:
//
//   - RMS: for the training region the error assumes the stored label is
//     correct and measures P(¬label)²; for the pool region no trusted
//     label exists, so the error is the mass assigned to the less
//     favored outcome, min over classes of P(c)². The ground-truth score
//     mirrors the training formula against real labels and is diagnostic
//     only — it never drives learning.
//   - Accuracy: fraction of exact argmax/label matches.
//
// Each sub-score normalizes by its region's instance count before the
// square root; the overall RMS pools the pre-root train and pool sums
// over their combined count.
//
// All outputs lie in [0,1] for probability-vector inputs summing to 1.
package collective

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
)

// RMSScores carries the RMS sub-scores of one labeling.
//
// GroundTruth is NaN when no ground truth was supplied.
type RMSScores struct {
	Overall     float64
	Train       float64
	Test        float64
	GroundTruth float64
}

// Accuracies carries exact-match fractions. Test is NaN without ground
// truth.
type Accuracies struct {
	Train float64
	Test  float64
}

// RMS scores the current labeling of pool under clf. truth, when
// non-nil, holds the real labels of the pool region (parallel to it) and
// only feeds the diagnostic GroundTruth sub-score.
//
// Learner prediction failures propagate unchanged.
//
// Complexity: O(n) predictions.
func RMS(clf classify.Classifier, pool *dataset.CombinedPool, truth *dataset.Dataset) (RMSScores, error) {
	var (
		sumTrain float64 // pre-root squared-error sum, training region
		sumPool  float64 // pre-root squared-error sum, pool region
		sumTruth float64 // pre-root squared-error sum vs ground truth
		dist     []float64
		err      error
		i        int
		inst     *dataset.Instance
		e        float64 // per-instance error term
	)

	from, count := pool.TrainRegion()
	for i = from; i < from+count; i++ {
		inst = pool.Data.Instances[i]
		dist, err = clf.PredictDistribution(inst)
		if err != nil {
			return RMSScores{}, err
		}
		// Error under the assumption the stored label is correct:
		// P(¬label)² = (1 − P(label))² in the binary case.
		e = 1 - dist[inst.Label]
		sumTrain += e * e
	}

	pfrom, pcount := pool.PoolRegion()
	for i = pfrom; i < pfrom+pcount; i++ {
		inst = pool.Data.Instances[i]
		dist, err = clf.PredictDistribution(inst)
		if err != nil {
			return RMSScores{}, err
		}
		// No trusted label: the error is the less favored mass.
		e = floats.Min(dist)
		sumPool += e * e

		if truth != nil {
			e = 1 - dist[truth.Instances[i-pfrom].Label]
			sumTruth += e * e
		}
	}

	out := RMSScores{GroundTruth: math.NaN()}
	if count > 0 {
		out.Train = math.Sqrt(sumTrain / float64(count))
	}
	if pcount > 0 {
		out.Test = math.Sqrt(sumPool / float64(pcount))
		if truth != nil {
			out.GroundTruth = math.Sqrt(sumTruth / float64(pcount))
		}
	}
	out.Overall = math.Sqrt((sumTrain + sumPool) / float64(count+pcount))

	return out, nil
}

// Accuracy computes exact-match fractions: the training region against
// its stored labels, the pool region against truth when supplied (NaN
// otherwise).
//
// Complexity: O(n) predictions.
func Accuracy(clf classify.Classifier, pool *dataset.CombinedPool, truth *dataset.Dataset) (Accuracies, error) {
	var (
		hitTrain float64
		hitTest  float64
		dist     []float64
		err      error
		i        int
	)

	from, count := pool.TrainRegion()
	for i = from; i < from+count; i++ {
		dist, err = clf.PredictDistribution(pool.Data.Instances[i])
		if err != nil {
			return Accuracies{}, err
		}
		if argmax(dist) == pool.Data.Instances[i].Label {
			hitTrain++
		}
	}

	out := Accuracies{Test: math.NaN()}
	if count > 0 {
		out.Train = hitTrain / float64(count)
	}

	pfrom, pcount := pool.PoolRegion()
	if truth == nil || pcount == 0 {
		return out, nil
	}
	for i = pfrom; i < pfrom+pcount; i++ {
		dist, err = clf.PredictDistribution(pool.Data.Instances[i])
		if err != nil {
			return Accuracies{}, err
		}
		if argmax(dist) == truth.Instances[i-pfrom].Label {
			hitTest++
		}
	}
	out.Test = hitTest / float64(pcount)

	return out, nil
}

// argmax returns the index of the largest element; first wins on ties.
func argmax(dist []float64) int {
	var (
		best = 0
		i    int
	)
	for i = 1; i < len(dist); i++ {
		if dist[i] > dist[best] {
			best = i
		}
	}

	return best
}
