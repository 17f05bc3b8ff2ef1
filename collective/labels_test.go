// Package collective_test - label initialization and flip passes:
// prior adherence over many draws and per-call flip-fraction semantics.
package collective_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colearn/classify"
	"github.com/katalvlaran/colearn/collective"
	"github.com/katalvlaran/colearn/dataset"
	"github.com/katalvlaran/colearn/flip"
)

func binarySchema() *dataset.Schema {
	return &dataset.Schema{
		Attrs: []dataset.Attribute{
			{Name: "x", Kind: dataset.KindNumeric},
			{Name: "y", Kind: dataset.KindNumeric},
		},
		Class: dataset.Attribute{
			Name:   "class",
			Kind:   dataset.KindNominal,
			Values: []string{"neg", "pos"},
		},
	}
}

// labeledSet builds n instances labeled by label(i).
func labeledSet(t *testing.T, schema *dataset.Schema, n int, label func(int) int) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(schema)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, ds.Append(dataset.NewInstance([]float64{float64(i), float64(i % 7)}, label(i))))
	}

	return ds
}

// fixed is a classifier that always predicts the same distribution.
type fixed struct {
	dist []float64
}

func (f *fixed) Train(context.Context, *dataset.Dataset) error { return nil }

func (f *fixed) PredictDistribution(*dataset.Instance) ([]float64, error) {
	out := make([]float64, len(f.dist))
	copy(out, f.dist)

	return out, nil
}

func (f *fixed) Clone() classify.Classifier { return &fixed{dist: f.dist} }

// Over a large region the empirical label frequency must converge to the
// training prior.
func TestInitializeLabels_PriorAdherence(t *testing.T) {
	schema := binarySchema()
	// Training prior: 60% class 0.
	train := labeledSet(t, schema, 100, func(i int) int {
		if i < 60 {
			return 0
		}

		return 1
	})

	const n = 20000
	target := labeledSet(t, schema, n, func(int) int { return dataset.NoLabel })

	rng := rand.New(rand.NewSource(42))
	require.NoError(t, collective.InitializeLabels(train, target, 0, n, rng))

	var zeros float64
	for _, inst := range target.Instances {
		require.True(t, inst.Labeled(), "every instance must receive a label")
		if inst.Label == 0 {
			zeros++
		}
	}
	require.InDelta(t, 0.6, zeros/n, 0.02, "empirical frequency must track the prior")
}

func TestInitializeLabels_Errors(t *testing.T) {
	schema := binarySchema()
	unlabeledTrain := labeledSet(t, schema, 5, func(int) int { return dataset.NoLabel })
	target := labeledSet(t, schema, 5, func(int) int { return dataset.NoLabel })
	rng := rand.New(rand.NewSource(1))

	err := collective.InitializeLabels(unlabeledTrain, target, 0, 5, rng)
	require.ErrorIs(t, err, dataset.ErrNoLabeled)

	train := labeledSet(t, schema, 5, func(int) int { return 0 })
	err = collective.InitializeLabels(train, target, 0, 6, rng)
	require.ErrorIs(t, err, flip.ErrBadRegion)

	err = collective.InitializeLabels(train, nil, 0, 1, rng)
	require.ErrorIs(t, err, dataset.ErrNilDataset)
}

// The flipped fraction is a per-call statistic over the region size.
func TestFlipLabels_FractionSemantics(t *testing.T) {
	schema := binarySchema()
	// All labeled 0; a classifier certain of class 1 plus the Simple
	// strategy deterministically flips every label.
	ds := labeledSet(t, schema, 8, func(int) int { return 0 })
	hist, err := flip.NewHistory(ds, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	frac, err := collective.FlipLabels(&fixed{dist: []float64{0, 1}}, ds, 0, 8, hist, flip.NewSimple(), rng)
	require.NoError(t, err)
	require.InDelta(t, 1.0, frac, 1e-12, "all labels changed")
	for _, inst := range ds.Instances {
		require.Equal(t, 1, inst.Label)
	}

	// Second pass: labels already 1, same prediction ⇒ nothing changes,
	// and the accumulator restarts from zero.
	frac, err = collective.FlipLabels(&fixed{dist: []float64{0, 1}}, ds, 0, 8, hist, flip.NewSimple(), rng)
	require.NoError(t, err)
	require.Zero(t, frac, "fraction is per-call, not cumulative")
}

func TestFlipLabels_NilFlipper(t *testing.T) {
	schema := binarySchema()
	ds := labeledSet(t, schema, 2, func(int) int { return 0 })
	hist, err := flip.NewHistory(ds, nil)
	require.NoError(t, err)

	_, err = collective.FlipLabels(&fixed{dist: []float64{1, 0}}, ds, 0, 2, hist, nil, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, collective.ErrNilFlipper)
}
