// Package dataset_test exercises the data model via the public API:
// schema conformance on append, deep-copy independence, class priors,
// and the combined-pool region invariants.
package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colearn/dataset"
)

// binarySchema builds a small schema with two numeric features and a
// binary class. Shared by most tests in this package.
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

func TestAppend_Validation(t *testing.T) {
	ds, err := dataset.New(binarySchema())
	require.NoError(t, err)

	// Wrong arity.
	err = ds.Append(dataset.NewInstance([]float64{1}, 0))
	require.ErrorIs(t, err, dataset.ErrSchemaMismatch)

	// Negative weight.
	bad := dataset.NewInstance([]float64{1, 2}, 0)
	bad.Weight = -1
	err = ds.Append(bad)
	require.ErrorIs(t, err, dataset.ErrBadWeight)

	// Label out of range.
	err = ds.Append(dataset.NewInstance([]float64{1, 2}, 7))
	require.ErrorIs(t, err, dataset.ErrBadLabel)

	// Unlabeled is fine.
	require.NoError(t, ds.Append(dataset.NewInstance([]float64{1, 2}, dataset.NoLabel)))
	require.Equal(t, 1, ds.Len())
}

func TestNew_RejectsDegenerateClass(t *testing.T) {
	s := binarySchema()
	s.Class.Values = []string{"only"}
	_, err := dataset.New(s)
	require.ErrorIs(t, err, dataset.ErrSchemaMismatch)
}

func TestClone_Independence(t *testing.T) {
	ds, err := dataset.New(binarySchema())
	require.NoError(t, err)
	require.NoError(t, ds.Append(dataset.NewInstance([]float64{1, 2}, 0)))

	cp := ds.Clone()
	cp.Instances[0].Label = 1
	cp.Instances[0].Values[0] = 99

	require.Equal(t, 0, ds.Instances[0].Label, "clone must not alias labels")
	require.Equal(t, 1.0, ds.Instances[0].Values[0], "clone must not alias values")
}

func TestClassPrior(t *testing.T) {
	ds, err := dataset.New(binarySchema())
	require.NoError(t, err)

	// 3 of class 0, 1 of class 1, 1 unlabeled (ignored).
	for i := 0; i < 3; i++ {
		require.NoError(t, ds.Append(dataset.NewInstance([]float64{float64(i), 0}, 0)))
	}
	require.NoError(t, ds.Append(dataset.NewInstance([]float64{9, 9}, 1)))
	require.NoError(t, ds.Append(dataset.NewInstance([]float64{8, 8}, dataset.NoLabel)))

	prior, err := ds.ClassPrior()
	require.NoError(t, err)
	require.InDelta(t, 0.75, prior[0], 1e-12)
	require.InDelta(t, 0.25, prior[1], 1e-12)
}

func TestClassPrior_NoLabeled(t *testing.T) {
	ds, err := dataset.New(binarySchema())
	require.NoError(t, err)
	require.NoError(t, ds.Append(dataset.NewInstance([]float64{1, 1}, dataset.NoLabel)))

	_, err = ds.ClassPrior()
	require.ErrorIs(t, err, dataset.ErrNoLabeled)
}

func TestCombinedPool_Regions(t *testing.T) {
	schema := binarySchema()
	train, err := dataset.New(schema)
	require.NoError(t, err)
	pool, err := dataset.New(schema)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, train.Append(dataset.NewInstance([]float64{float64(i), 0}, i%2)))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, pool.Append(dataset.NewInstance([]float64{float64(i), 1}, dataset.NoLabel)))
	}

	cp, err := dataset.NewCombinedPool(train, pool)
	require.NoError(t, err)
	require.Equal(t, 7, cp.Data.Len())

	from, count := cp.TrainRegion()
	require.Equal(t, 0, from)
	require.Equal(t, 4, count)

	from, count = cp.PoolRegion()
	require.Equal(t, 4, from)
	require.Equal(t, 3, count)

	from, count = cp.FlipRegion(false)
	require.Equal(t, 4, from)
	require.Equal(t, 3, count)

	from, count = cp.FlipRegion(true)
	require.Equal(t, 0, from)
	require.Equal(t, 7, count)

	// Origin tags are the combined positions.
	for i, inst := range cp.Data.Instances {
		require.Equal(t, i, inst.Origin)
	}

	// The pool copies must not alias the source pool.
	cp.Data.Instances[4].Label = 0
	require.Equal(t, dataset.NoLabel, pool.Instances[0].Label)
}

func TestCombinedPool_Errors(t *testing.T) {
	schema := binarySchema()
	train, err := dataset.New(schema)
	require.NoError(t, err)
	pool, err := dataset.New(schema)
	require.NoError(t, err)

	_, err = dataset.NewCombinedPool(nil, pool)
	require.ErrorIs(t, err, dataset.ErrNilDataset)

	_, err = dataset.NewCombinedPool(train, pool)
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)

	other, err := dataset.New(binarySchema())
	require.NoError(t, err)
	require.NoError(t, train.Append(dataset.NewInstance([]float64{0, 0}, 0)))
	_, err = dataset.NewCombinedPool(train, other)
	require.ErrorIs(t, err, dataset.ErrSchemaMismatch)
}
