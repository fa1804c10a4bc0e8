// File: compact.go
// Role: DeleteNodes — batch node deletion by swap-down compaction, exactly
//       mirroring _Graph_DeleteNodes/_Graph_NodeBlockDelete from the
//       distilled spec's §4.E donor/hole_idx cursor algorithm.
// Determinism:
//   - sortedIDs must be strictly ascending and distinct; every survivor's
//     new id is <= its old id. Relative order among survivors is not kept:
//     the highest survivors move down into the lowest holes.
// Concurrency:
//   - Takes the write lock for the whole compaction: row/column migration
//     touches the adjacency matrix, every relation matrix, and every label
//     matrix, and partial visibility of that would violate the aggregate
//     invariants.
// AI-HINT (file):
//   - donor walks down from the old last id, skipping ids already scheduled
//     for deletion; hole_idx walks up through sortedIDs, only filling holes
//     that land below the new node count (holes at or above it are being
//     truncated away anyway, so no copy is needed for them).
package graph

// DeleteNodes removes every id in sortedIDs from the graph, relocating
// survivors from the top of the id space down into the vacated slots so the
// surviving ids stay dense and contiguous in [0, NodeCount()-len(sortedIDs)).
// sortedIDs must be strictly ascending, distinct, and each < NodeCount();
// violating any of these is a fatal precondition error. An empty sortedIDs
// is a no-op.
// Complexity: O(len(sortedIDs) * (degree(donor) + degree(dest))) summed over
// every relocation, plus O(relation_count + label_count) per relocation for
// the matrix fan-out, plus O(evicted) for the final resize down.
func (g *Graph) DeleteNodes(sortedIDs []NodeID) {
	if len(sortedIDs) == 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	oldCount := g.store.NodeCount()
	g.validateDeletionSet(sortedIDs, oldCount)

	k := len(sortedIDs)
	newCount := oldCount - k

	donor := oldCount - 1
	lastDelIdx := k - 1
	holeIdx := 0

	for holeIdx < k && int(sortedIDs[holeIdx]) < newCount {
		for lastDelIdx >= 0 && donor == int(sortedIDs[lastDelIdx]) {
			donor--
			lastDelIdx--
		}

		hole := int(sortedIDs[holeIdx])
		if donor != hole {
			g.relocate(NodeID(donor), NodeID(hole), oldCount)
		}

		holeIdx++
		donor--
	}

	g.store.Truncate(newCount)
	g.pool.ResizeAll(newCount)

	g.hook.OnMutate("delete_nodes")
}

// relocate moves donor's node record, adjacency row/column, every relation
// matrix's row/column, and every label matrix's diagonal bit onto dest.
// count is the node count to address the matrices at, which during
// compaction is still the pre-truncation count: every matrix stays at its
// old dimension until the single ResizeAll call at the end of DeleteNodes.
func (g *Graph) relocate(donor, dest NodeID, count int) {
	g.store.Migrate(donor, dest)

	d, s := int(dest), int(donor)

	g.pool.GetAdjacency(count).MigrateRowCol(s, d)
	for r := 0; r < g.pool.RelationCount(); r++ {
		g.pool.GetRelation(r, count).MigrateRowCol(s, d)
	}
	for l := 0; l < g.pool.LabelCount(); l++ {
		g.pool.GetLabel(l, count).ReconcileLabel(s, d)
	}
}

// validateDeletionSet panics (fatal) unless ids is strictly ascending,
// distinct, and every entry is a valid, currently-live node id.
func (g *Graph) validateDeletionSet(ids []NodeID, count int) {
	prev := NodeID(-1)
	for _, id := range ids {
		if id < 0 || int(id) >= count {
			invalidArg(ErrDeletionOutOfRange)
		}
		if id <= prev {
			invalidArg(ErrUnsortedDeletion)
		}
		prev = id
	}
}
