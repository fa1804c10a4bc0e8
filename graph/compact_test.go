package graph_test

import (
	"testing"

	"github.com/katalvlaran/graphblas-store/graph"
	"github.com/stretchr/testify/require"
)

func TestDeleteNodes_EmptyIsNoOp(t *testing.T) {
	g := graph.New(4)
	g.CreateNodes(3, nil)
	g.DeleteNodes(nil)
	require.Equal(t, 3, g.NodeCount())
}

func TestDeleteNodes_UnsortedPanics(t *testing.T) {
	g := graph.New(4)
	g.CreateNodes(3, nil)
	require.Panics(t, func() {
		g.DeleteNodes([]graph.NodeID{2, 1})
	})
}

func TestDeleteNodes_DuplicatePanics(t *testing.T) {
	g := graph.New(4)
	g.CreateNodes(3, nil)
	require.Panics(t, func() {
		g.DeleteNodes([]graph.NodeID{1, 1})
	})
}

func TestDeleteNodes_OutOfRangePanics(t *testing.T) {
	g := graph.New(4)
	g.CreateNodes(3, nil)
	require.Panics(t, func() {
		g.DeleteNodes([]graph.NodeID{5})
	})
}

// tag marks every node's payload with its original id so a test can tell
// which original node ended up at a given post-compaction id.
func tag(g *graph.Graph, ids []graph.NodeID) {
	for _, id := range ids {
		g.GetNode(id).Payload = int(id)
	}
}

func TestDeleteNodes_LastNodeFillsSingleHole(t *testing.T) {
	g := graph.New(8)
	it := g.CreateNodes(5, nil) // ids 0..4
	ids := drain(it)
	tag(g, ids)

	g.DeleteNodes([]graph.NodeID{1})

	require.Equal(t, 4, g.NodeCount())
	// Old id 4 (the donor) must now live at id 1 (the hole).
	require.Equal(t, 4, g.GetNode(1).Payload)
	// Untouched survivors keep their original payload.
	require.Equal(t, 0, g.GetNode(0).Payload)
	require.Equal(t, 2, g.GetNode(2).Payload)
	require.Equal(t, 3, g.GetNode(3).Payload)
}

func TestDeleteNodes_DeletingTheTailIsPureTruncate(t *testing.T) {
	g := graph.New(8)
	it := g.CreateNodes(4, nil)
	ids := drain(it)
	tag(g, ids)

	g.DeleteNodes([]graph.NodeID{3})

	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 0, g.GetNode(0).Payload)
	require.Equal(t, 1, g.GetNode(1).Payload)
	require.Equal(t, 2, g.GetNode(2).Payload)
}

func TestDeleteNodes_MultipleHolesInOneBatch(t *testing.T) {
	g := graph.New(8)
	it := g.CreateNodes(6, nil) // ids 0..5
	ids := drain(it)
	tag(g, ids)

	g.DeleteNodes([]graph.NodeID{0, 2})

	require.Equal(t, 4, g.NodeCount())
	// newCount=4, so both holes lie below it and are filled in ascending
	// order: donor 5 fills hole 0, then donor 4 fills hole 2.
	seen := map[int]bool{}
	for i := graph.NodeID(0); int(i) < g.NodeCount(); i++ {
		seen[g.GetNode(i).Payload.(int)] = true
	}
	require.Len(t, seen, 4)
	// Deleted originals must not appear among survivors.
	require.False(t, seen[0])
	require.False(t, seen[2])
}

func TestDeleteNodes_MigratesAdjacencyAndRelations(t *testing.T) {
	h := &recordingHook{}
	g := graph.New(8, graph.WithPersistenceHook(h))
	it := g.CreateNodes(5, nil) // ids 0..4
	ids := drain(it)
	tag(g, ids)
	rel := g.AddRelation()

	// donor (4) has out-edge to 3 and in-edge from 0, both typed.
	g.ConnectNodes([]graph.Triple{
		{Src: 4, Dest: 3, Rel: rel},
		{Src: 0, Dest: 4, Rel: rel},
	})

	g.DeleteNodes([]graph.NodeID{1}) // hole at 1, donor 4 relocates there

	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 4, g.GetNode(1).Payload) // confirms donor identity

	// The edges that used to touch node 4 must now touch node 1.
	g.CommitPending()

	// A typed DeleteEdge of an edge that doesn't exist is a silent no-op that
	// does not call the hook, so the hook log shows whether each migrated
	// edge was found at its new endpoints; re-deleting them finds nothing.
	before := len(h.ops)
	g.DeleteEdge(1, 3, rel) // was 4->3
	g.DeleteEdge(0, 1, rel) // was 0->4
	require.Equal(t, []string{"delete_edge", "delete_edge"}, h.ops[before:])
	require.NotPanics(t, func() {
		g.DeleteEdge(1, 3, rel)
		g.DeleteEdge(0, 1, rel)
	})
	require.Len(t, h.ops, before+2)
}

func TestDeleteNodes_SelfLoopLandsOnDest(t *testing.T) {
	h := &recordingHook{}
	g := graph.New(8, graph.WithPersistenceHook(h))
	it := g.CreateNodes(3, nil) // ids 0..2
	ids := drain(it)
	tag(g, ids)
	rel := g.AddRelation()

	g.ConnectNodes([]graph.Triple{{Src: 2, Dest: 2, Rel: rel}}) // self-loop on donor

	g.DeleteNodes([]graph.NodeID{0})

	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 2, g.GetNode(0).Payload)
	before := len(h.ops)
	require.NotPanics(t, func() {
		g.DeleteEdge(0, 0, rel)
	})
	// The typed delete only reaches the hook if it found the entry, so the
	// self-loop must have followed the donor to 0.
	require.Equal(t, []string{"delete_edge"}, h.ops[before:])
}

func TestDeleteNodes_LabelReconciliation(t *testing.T) {
	g := graph.New(8)
	it := g.CreateNodes(3, nil) // ids 0..2
	ids := drain(it)
	tag(g, ids)
	lbl := g.AddLabel()

	// Donor (2) carries the label; hole (0) does not.
	g.LabelNodes(2, 2, lbl)

	g.DeleteNodes([]graph.NodeID{0})

	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, []int{lbl}, g.NodeLabels(0))
}

func TestDeleteNodes_AllNodesEmptiesGraph(t *testing.T) {
	g := graph.New(8)
	it := g.CreateNodes(3, nil)
	ids := drain(it)

	g.DeleteNodes(ids)
	require.Equal(t, 0, g.NodeCount())
}
