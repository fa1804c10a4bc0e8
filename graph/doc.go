// Package graph (graphblas-store/graph) is the public façade of the store: a
// mutable labeled property graph backed by sparse boolean matrices.
//
// 🚀 What is graph?
//
//	A single Graph type that brings together:
//
//	  • block.Store    — dense integer NodeIDs in a chunked node arena
//	  • gbmatrix.Pool  — one adjacency matrix, N relation matrices, M label
//	    matrices, all lazily resized to the live node count
//	  • DeleteNodes    — the swap-down algorithm batch node deletion uses to
//	    keep ids dense after a delete
//
// ✨ Invariants (must hold at every public method boundary):
//
//  1. For every relation r, adjacency(d,s) >= relations[r](d,s).
//  2. Every matrix M owned by the graph is square (rows(M) == cols(M)) and
//     is resized to exactly node_count when it is next accessed.
//  3. blocks[k].nodes[i].id == k*NodeBlockCap + i for every live id.
//  4. No matrix holds a nonzero entry with row or column >= node_count.
//  5. Ids [0, node_count) are exactly the live nodes; there are no holes.
//
// Quick ASCII example:
//
//	create_nodes(3) → ids {0,1,2}
//	connect_nodes([(0,1,·),(1,2,·)]) → adjacency has {(1,0),(2,1)}
//	delete_nodes([1]) → node 2 becomes node 1; node_count == 2
//
// Every public method takes the Graph's own read/write lock, so structural
// mutations from several goroutines are serialised by the façade itself;
// the resize guard inside gbmatrix additionally serialises matrix resizes.
// Iterators and *block.Node references handed out by the façade are not
// covered by that lock. All precondition violations and matrix-backend
// failures are fatal programmer errors: public methods panic with a Fault
// (see errors.go) rather than returning an error value, mirroring the
// store's trusted-caller error-handling design.
package graph
