// Package flip - Simple strategy.
package flip

import (
	"math/rand"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/dataset"
)

// Simple resamples the label directly from the predicted distribution:
// label c is drawn with probability P(c). It keeps no memory beyond
// recording the prediction into the history, and it is the only shipped
// strategy that supports more than two classes.
type Simple struct{}

// NewSimple returns the Simple strategy.
func NewSimple() *Simple { return &Simple{} }

// FlipLabel draws the new label from clf's predicted distribution.
// Consumes exactly one rng draw per invocation.
func (s *Simple) FlipLabel(clf classify.Classifier, ds *dataset.Dataset, from, count, index int, hist *History, rng *rand.Rand) (int, error) {
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

	return sampleLabel(dist, rng), nil
}
