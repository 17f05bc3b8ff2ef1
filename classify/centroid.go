// Package classify - nearest-centroid reference learner.
//
// Centroid fits one weighted mean vector per class and converts negative
// squared distances into a probability vector through a temperature
// softmax. It is deliberately simple: deterministic, cheap to retrain
// every optimizer iteration, and sensitive to label changes — exactly
// what the label-flipping loop needs from a base learner.
//
// Complexity:
//   - Train:   O(n·m) for n instances, m attributes.
//   - Predict: O(k·m) for k classes.
package classify

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/colearn/dataset"
)

// defaultTemperature controls softmax sharpness when the caller passes 0.
const defaultTemperature = 1.0

// Centroid is a nearest-centroid classifier with softmax scoring.
type Centroid struct {
	// Temperature divides squared distances before the softmax; larger
	// values flatten the distribution. Must be > 0 (0 ⇒ default).
	Temperature float64

	schema    *dataset.Schema
	centroids *mat.Dense // k×m class means; rows of untrained classes stay zero
	seen      []bool     // seen[c]: class c had at least one labeled instance
	trained   bool
}

// NewCentroid returns an untrained centroid learner.
func NewCentroid(temperature float64) *Centroid {
	if temperature <= 0 {
		temperature = defaultTemperature
	}

	return &Centroid{Temperature: temperature}
}

// Train fits per-class weighted mean vectors on the labeled instances
// of ds. Unlabeled instances are ignored.
//
// Errors: ErrEmptyTrainingSet, ErrNoLabeledTraining (both wrapping
// ErrTraining), and ctx.Err() when the context is already done.
func (c *Centroid) Train(ctx context.Context, ds *dataset.Dataset) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrTraining, err)
	}
	if ds == nil || ds.Len() == 0 {
		return fmt.Errorf("%w: %w", ErrTraining, ErrEmptyTrainingSet)
	}

	var (
		k = ds.Schema.NumClasses()
		m = ds.Schema.NumAttrs()
	)
	sums := mat.NewDense(k, m, nil)
	weights := make([]float64, k)
	seen := make([]bool, k)

	var (
		i    int               // instance cursor
		inst *dataset.Instance // current instance
		row  []float64         // running sum row for the instance's class
		j    int               // attribute cursor
	)
	for i = 0; i < ds.Len(); i++ {
		inst = ds.Instances[i]
		if !inst.Labeled() || inst.Weight == 0 {
			continue
		}
		row = sums.RawRowView(inst.Label)
		for j = 0; j < m; j++ {
			row[j] += inst.Weight * inst.Values[j]
		}
		weights[inst.Label] += inst.Weight
		seen[inst.Label] = true
	}

	var any bool
	for i = 0; i < k; i++ {
		if !seen[i] {
			continue
		}
		any = true
		floats.Scale(1/weights[i], sums.RawRowView(i))
	}
	if !any {
		return fmt.Errorf("%w: %w", ErrTraining, ErrNoLabeledTraining)
	}

	c.schema = ds.Schema
	c.centroids = sums
	c.seen = seen
	c.trained = true

	return nil
}

// PredictDistribution returns softmax(-d²/T) over the class centroids.
// Classes never seen during training receive probability 0.
//
// Errors: ErrNotTrained, ErrSchemaMismatch.
func (c *Centroid) PredictDistribution(inst *dataset.Instance) ([]float64, error) {
	if !c.trained {
		return nil, ErrNotTrained
	}
	if len(inst.Values) != c.schema.NumAttrs() {
		return nil, ErrSchemaMismatch
	}

	var (
		k      = c.schema.NumClasses()
		scores = make([]float64, k)
		maxS   = math.Inf(-1)
	)

	var (
		cls  int       // class cursor
		row  []float64 // centroid row for cls
		j    int       // attribute cursor
		d, s float64   // coordinate delta / squared distance
	)
	for cls = 0; cls < k; cls++ {
		if !c.seen[cls] {
			scores[cls] = math.Inf(-1)
			continue
		}
		row = c.centroids.RawRowView(cls)
		s = 0
		for j = 0; j < len(row); j++ {
			d = inst.Values[j] - row[j]
			s += d * d
		}
		scores[cls] = -s / c.Temperature
		if scores[cls] > maxS {
			maxS = scores[cls]
		}
	}

	// Stabilized softmax: subtract the max score before exponentiating.
	out := make([]float64, k)
	for cls = 0; cls < k; cls++ {
		if math.IsInf(scores[cls], -1) {
			out[cls] = 0
			continue
		}
		out[cls] = math.Exp(scores[cls] - maxS)
	}
	floats.Scale(1/floats.Sum(out), out)

	return out, nil
}

// Clone returns a deep, independent snapshot of the model.
func (c *Centroid) Clone() Classifier {
	cp := &Centroid{Temperature: c.Temperature, schema: c.schema, trained: c.trained}
	if c.centroids != nil {
		cp.centroids = mat.DenseCopyOf(c.centroids)
	}
	if c.seen != nil {
		cp.seen = append([]bool(nil), c.seen...)
	}

	return cp
}
