// Package dataset_test - content comparator and index behavior:
// total order, insertion-point sentinels, loud failure on required
// lookups, and identity stability under relabeling.
package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/colearn/dataset"
)

func TestComparator_TotalOrder(t *testing.T) {
	schema := binarySchema()
	cmp := dataset.Comparator{Schema: schema}

	a := dataset.NewInstance([]float64{1, 2}, 0)
	b := dataset.NewInstance([]float64{1, 3}, 0)
	c := dataset.NewInstance([]float64{1, 2}, 1)

	require.Equal(t, -1, cmp.Compare(a, b))
	require.Equal(t, 1, cmp.Compare(b, a))
	// Class excluded: a and c share content.
	require.Equal(t, 0, cmp.Compare(a, c))

	// Class included: label is the final tie-break.
	cmpC := dataset.Comparator{Schema: schema, IncludeClass: true}
	require.Equal(t, -1, cmpC.Compare(a, c))

	// NaN sorts below finite values and equals itself.
	nan := dataset.NewInstance([]float64{math.NaN(), 2}, 0)
	require.Equal(t, -1, cmp.Compare(nan, a))
	require.Equal(t, 0, cmp.Compare(nan, nan.Clone()))
}

func TestContentIndex_Lookup(t *testing.T) {
	ds, err := dataset.New(binarySchema())
	require.NoError(t, err)

	vals := [][2]float64{{3, 0}, {1, 0}, {2, 5}, {0, 9}}
	for i, v := range vals {
		require.NoError(t, ds.Append(dataset.NewInstance([]float64{v[0], v[1]}, i%2)))
	}

	ix, err := dataset.NewContentIndex(ds, false)
	require.NoError(t, err)
	require.Equal(t, 4, ix.Len())

	// Every instance resolves to its original position.
	for want, inst := range ds.Instances {
		got := ix.IndexOf(inst)
		require.Equal(t, want, got)
	}

	// A foreign instance yields the negative insertion sentinel.
	miss := dataset.NewInstance([]float64{1.5, 0}, 0)
	got := ix.IndexOf(miss)
	require.Negative(t, got)
	// Sorted content order is (0,9) (1,0) (1.5,·) (2,5) (3,0) ⇒ slot 2.
	require.Equal(t, -(2 + 1), got)

	_, err = ix.MustIndexOf(miss)
	require.ErrorIs(t, err, dataset.ErrInstanceNotFound)
}

// Relabeling an instance in the live dataset must not break class-excluded
// lookups: content identity ignores the label by construction.
func TestContentIndex_StableUnderRelabel(t *testing.T) {
	ds, err := dataset.New(binarySchema())
	require.NoError(t, err)
	require.NoError(t, ds.Append(dataset.NewInstance([]float64{1, 1}, 0)))
	require.NoError(t, ds.Append(dataset.NewInstance([]float64{2, 2}, 0)))

	ix, err := dataset.NewContentIndex(ds, false)
	require.NoError(t, err)

	ds.Instances[1].Label = 1 // simulate a flip
	pos, err := ix.MustIndexOf(ds.Instances[1])
	require.NoError(t, err)
	require.Equal(t, 1, pos)
}

func TestContentIndex_NilDataset(t *testing.T) {
	_, err := dataset.NewContentIndex(nil, false)
	require.ErrorIs(t, err, dataset.ErrNilDataset)
}
