// Package flip - Confident strategy.
//
// Confident only acts on instances whose belief changed substantially
// since the previous pass: it compares the current P(class=0) against
// the history's last recorded P(class=0) and resamples (à la Simple)
// only when the absolute disagreement reaches delta. Everything below
// the threshold keeps its label unchanged — and that branch consumes no
// randomness, so it is deterministic regardless of RNG state.
package flip

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
)

// DefaultConfidentDelta is the disagreement threshold used by the
// factory when no delta parameter is supplied.
const DefaultConfidentDelta = 0.75

// Confident is the disagreement-gated resampling strategy. Binary only.
type Confident struct {
	delta float64
}

// NewConfident validates delta ∈ (0,1) and returns the strategy.
//
// Errors: ErrBadDelta.
func NewConfident(delta float64) (*Confident, error) {
	if delta <= 0 || delta >= 1 {
		return nil, ErrBadDelta
	}

	return &Confident{delta: delta}, nil
}

// Delta returns the configured disagreement threshold.
func (c *Confident) Delta() float64 { return c.delta }

// FlipLabel resamples the label from the predicted distribution when
// |P(0) − lastP(0)| ≥ delta, and keeps the current label otherwise.
// The history's last value is read BEFORE it is overwritten by Add, so
// the gate compares consecutive iterations.
//
// Errors: ErrNotBinary for non-binary distributions.
func (c *Confident) FlipLabel(clf classify.Classifier, ds *dataset.Dataset, from, count, index int, hist *History, rng *rand.Rand) (int, error) {
	if err := checkFlipArgs(ds, from, count, index, hist, rng); err != nil {
		return 0, err
	}

	inst := ds.Instances[index]
	dist, err := clf.PredictDistribution(inst)
	if err != nil {
		return 0, err
	}

	// Read the previous belief before Add overwrites it.
	last := hist.Last(inst)
	if err = hist.Add(inst, dist); err != nil {
		return 0, err
	}
	if len(dist) != 2 {
		return 0, ErrNotBinary
	}

	if math.Abs(dist[0]-last[0]) < c.delta {
		return inst.Label, nil
	}

	return sampleLabel(dist, rng), nil
}
