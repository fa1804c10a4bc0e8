// File: commit.go
// Role: CommitPending forces the underlying matrix engine to materialize
//       any deferred operations (implementation hint from the distilled
//       spec: query nvals on each matrix).
// Concurrency:
//   - Takes the read lock: flushing does not change node_count or any
//     matrix's logical contents, only forces pending work to complete.
package graph

// CommitPending flushes every matrix owned by the graph (adjacency, every
// relation, every label), forcing the backend to materialize any deferred
// operations. Element lookups (including DeleteEdge's) read gbmatrix's side
// indices rather than the backend, so they do not flush it; CommitPending is
// the call that forces materialization.
// Complexity: sum of each matrix's flush cost.
func (g *Graph) CommitPending() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	g.pool.CommitPending()
}
