package gbmatrix_test

import (
	"testing"

	"github.com/katalvlaran/graphblas-store/gbmatrix"
	"github.com/stretchr/testify/require"
)

func TestBoolMatrix_SetGetClear(t *testing.T) {
	m, err := gbmatrix.NewBoolMatrix(4)
	require.NoError(t, err)

	require.False(t, m.Get(1, 0))
	m.Set(1, 0)
	require.True(t, m.Get(1, 0))
	require.Equal(t, 1, m.NVals())

	m.Clear(1, 0)
	require.False(t, m.Get(1, 0))
	require.Equal(t, 0, m.NVals())
}

func TestBoolMatrix_ClearIsSingleEntry(t *testing.T) {
	m, err := gbmatrix.NewBoolMatrix(4)
	require.NoError(t, err)

	m.Set(1, 0)
	m.Set(2, 0)
	m.Clear(1, 0)

	require.False(t, m.Get(1, 0))
	require.True(t, m.Get(2, 0), "clearing one entry must not affect others")
}

func TestBoolMatrix_ColumnAndRow(t *testing.T) {
	m, err := gbmatrix.NewBoolMatrix(5)
	require.NoError(t, err)

	// edges: 0->1, 0->2, 3->1  (row=dest, col=src)
	m.Set(1, 0)
	m.Set(2, 0)
	m.Set(1, 3)

	require.ElementsMatch(t, []int{1, 2}, m.Column(0)) // out-neighbors of 0
	require.ElementsMatch(t, []int{0, 3}, m.Row(1))    // in-neighbors of 1
}

func TestBoolMatrix_ResizeShrinkEvictsOutOfBounds(t *testing.T) {
	m, err := gbmatrix.NewBoolMatrix(5)
	require.NoError(t, err)

	m.Set(4, 0)
	m.Set(0, 4)
	m.Resize(3)

	require.Empty(t, m.Column(0))
	require.Empty(t, m.Row(0))
	require.Equal(t, 0, m.NVals())
}

func TestBoolMatrix_ResizeToZeroThenGrowAgain(t *testing.T) {
	m, err := gbmatrix.NewBoolMatrix(4)
	require.NoError(t, err)

	m.Set(2, 1)
	require.NotPanics(t, func() { m.Resize(0) }, "shrinking to the empty graph must not panic")
	require.Equal(t, 0, m.Dim())
	require.Empty(t, m.Column(1))
	require.Empty(t, m.Row(2))

	require.NotPanics(t, func() { m.Resize(3) }, "growing back out of the empty state must not panic")
	require.Equal(t, 3, m.Dim())
	require.False(t, m.Get(2, 1), "an entry evicted by Resize(0) must not reappear on regrowth")
}

func TestBoolMatrix_MigrateRowCol(t *testing.T) {
	m, err := gbmatrix.NewBoolMatrix(5)
	require.NoError(t, err)

	// donor=4 has outgoing edge to 1, incoming edge from 2, and a self-loop.
	m.Set(1, 4)
	m.Set(4, 2)
	m.Set(4, 4)

	m.MigrateRowCol(4, 0)

	require.True(t, m.Get(1, 0), "outgoing edge must follow donor to dest")
	require.True(t, m.Get(0, 2), "incoming edge must follow donor to dest")
	require.True(t, m.Get(0, 0), "self-loop must land on (dest,dest)")
	// MigrateRowCol mirrors _Graph_MigrateRowCol: it leaves the donor's own
	// row/column untouched and relies on the caller's later Resize to evict
	// ids >= the new node count, so the donor's entries are still live here.
	require.True(t, m.Get(1, 4), "donor's row/column survives until Resize evicts it")
	require.True(t, m.Get(4, 2), "donor's row/column survives until Resize evicts it")

	m.Resize(1)
	require.False(t, m.Get(1, 4), "Resize must evict the donor's out-of-range entries")
	require.False(t, m.Get(4, 2), "Resize must evict the donor's out-of-range entries")
	require.True(t, m.Get(0, 0), "surviving self-loop must remain after Resize")
}

func TestBoolMatrix_ReconcileLabel(t *testing.T) {
	m, err := gbmatrix.NewBoolMatrix(3)
	require.NoError(t, err)

	m.Set(0, 0) // donor has label
	m.ReconcileLabel(0, 1)
	require.True(t, m.Get(1, 1))

	m2, err := gbmatrix.NewBoolMatrix(3)
	require.NoError(t, err)
	m2.Set(1, 1) // dest has label, donor doesn't
	m2.ReconcileLabel(0, 1)
	require.False(t, m2.Get(1, 1))
}
