package block_test

import (
	"testing"

	"github.com/katalvlaran/graphblas-store/block"
	"github.com/stretchr/testify/require"
)

func TestNewStore_MinimumOneBlock(t *testing.T) {
	s := block.NewStore(0)
	require.Equal(t, block.NodeBlockCap, s.NodeCap())
	require.Equal(t, 0, s.NodeCount())
}

func TestStore_AppendAndGet(t *testing.T) {
	s := block.NewStore(4)
	s.EnsureCapacity(3)
	s.Append(3, func(id block.NodeID, n *block.Node) {
		n.Payload = int(id) * 10
	})
	require.Equal(t, 3, s.NodeCount())

	for i := 0; i < 3; i++ {
		n := s.Get(block.NodeID(i))
		require.Equal(t, block.NodeID(i), n.ID)
		require.Equal(t, i*10, n.Payload)
	}
}

func TestStore_GetOutOfRangePanics(t *testing.T) {
	s := block.NewStore(4)
	s.EnsureCapacity(1)
	s.Append(1, nil)
	require.Panics(t, func() {
		s.Get(block.NodeID(1))
	})
}

func TestStore_EnsureCapacityGrowsAcrossBlocks(t *testing.T) {
	s := block.NewStore(1) // one block, NodeBlockCap slots
	s.EnsureCapacity(block.NodeBlockCap + 5)
	require.GreaterOrEqual(t, s.NodeCap(), block.NodeBlockCap+5)
}

func TestStore_MigrateAndTruncate(t *testing.T) {
	s := block.NewStore(4)
	s.EnsureCapacity(3)
	s.Append(3, func(id block.NodeID, n *block.Node) {
		n.Payload = string(rune('a' + int(id)))
	})

	// Migrate id 2 ("c") into id 0's slot, as the compactor would.
	s.Migrate(block.NodeID(2), block.NodeID(0))
	got := s.Get(block.NodeID(0))
	require.Equal(t, block.NodeID(0), got.ID)
	require.Equal(t, "c", got.Payload)

	s.Truncate(2)
	require.Equal(t, 2, s.NodeCount())
	require.Panics(t, func() { s.Get(block.NodeID(2)) })
}

func TestStore_NegativeExtraPanics(t *testing.T) {
	s := block.NewStore(1)
	require.Panics(t, func() { s.EnsureCapacity(-1) })
}
