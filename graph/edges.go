// File: edges.go
// Role: Edge lifecycle: ConnectNodes (insertion) and DeleteEdge (typed /
//       untyped removal), matching the distilled spec's edge-deletion
//       algorithm exactly.
// Determinism:
//   - adjacency(d,s) is always the logical OR of every relations[r](d,s).
// Concurrency:
//   - Both methods take the write lock for their whole duration, so
//     concurrent callers are serialised by the façade itself.
// AI-HINT (file):
//   - DeleteEdge(src,dest,NoRelation) clears every relation holding
//     (dest,src) as well as adjacency; DeleteEdge(src,dest,r) only clears
//     relation r, dropping adjacency too iff no other relation still holds it.
package graph

// ConnectNodes sets adjacency[dest,src]=1 for every triple, and, for typed
// triples (Rel != NoRelation), relations[Rel][dest,src]=1 as well. src, dest
// must be valid ids; Rel must be NoRelation or a valid relation index.
// Complexity: O(len(triples)).
func (g *Graph) ConnectNodes(triples []Triple) {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := g.store.NodeCount()
	for _, t := range triples {
		if t.Src < 0 || int(t.Src) >= count || t.Dest < 0 || int(t.Dest) >= count {
			invalidArg(ErrInvalidNodeID)
		}
		if t.Rel != NoRelation && (t.Rel < 0 || t.Rel >= g.pool.RelationCount()) {
			invalidArg(ErrInvalidRelation)
		}

		g.pool.GetAdjacency(count).Set(int(t.Dest), int(t.Src))
		if t.Rel != NoRelation {
			g.pool.GetRelation(t.Rel, count).Set(int(t.Dest), int(t.Src))
		}
	}

	g.hook.OnMutate("connect_nodes")
}

// DeleteEdge removes the edge src->dest. If rel == NoRelation, every
// relation holding (dest,src) is cleared along with adjacency. Otherwise
// only relation rel is cleared, and adjacency is cleared too iff no other
// relation still holds (dest,src).
// Complexity: O(relation_count) for the untyped form; O(1) amortized plus
// O(relation_count) for the re-scan in the typed form.
func (g *Graph) DeleteEdge(src, dest NodeID, rel int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := g.store.NodeCount()
	if src < 0 || int(src) >= count || dest < 0 || int(dest) >= count {
		invalidArg(ErrInvalidNodeID)
	}
	if rel != NoRelation && (rel < 0 || rel >= g.pool.RelationCount()) {
		invalidArg(ErrInvalidRelation)
	}

	d, s := int(dest), int(src)

	if rel == NoRelation {
		g.pool.GetAdjacency(count).Clear(d, s)
		for r := 0; r < g.pool.RelationCount(); r++ {
			g.pool.GetRelation(r, count).Clear(d, s)
		}
		g.hook.OnMutate("delete_edge")
		return
	}

	relMat := g.pool.GetRelation(rel, count)
	if !relMat.Get(d, s) {
		return
	}
	relMat.Clear(d, s)

	stillHeld := false
	for r := 0; r < g.pool.RelationCount(); r++ {
		if g.pool.GetRelation(r, count).Get(d, s) {
			stillHeld = true
			break
		}
	}
	if !stillHeld {
		g.pool.GetAdjacency(count).Clear(d, s)
	}

	g.hook.OnMutate("delete_edge")
}
