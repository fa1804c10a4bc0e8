// Package gbmatrix owns every sparse boolean matrix backing a graph store:
// the single adjacency matrix, the growable per-relation matrices, and the
// growable per-label matrices, plus the lazy-resize policy and the
// critical-section guard that serialises resize decisions.
//
// 🚀 What is gbmatrix?
//
//	A thin, GraphBLAS-flavored matrix pool that brings together:
//
//	  • BoolMatrix — a boolean sparse matrix, backed by forGraphBLASGo,
//	    with CSR-like side indices so row/column migration stays cheap
//	  • Pool       — owns adjacency + relations[] + labels[], lazy-resizes
//	    every handle to the caller's current node count
//	  • Guard      — a single mutex double-checked around resize decisions
//
// ✨ Why not resize eagerly on every CreateNodes call?
//
//   - Lazy resize means a burst of node creation pays for one resize per
//     matrix at the next read, not one resize per matrix per batch.
//   - Double-checked locking under Guard means concurrent readers racing
//     through a stale accessor coalesce onto a single resize call.
//
// gbmatrix depends on github.com/intel/forGraphBLASGo for the underlying
// sparse matrix object (Matrix[bool]): create, resize, get/set/remove a
// single element, and nonzero count. Column/row extraction "optionally
// transposed" and masked-region assignment — named in the distilled spec but
// not exposed as single calls by the library surface available to this
// package — are built on top of those primitives using small side indices;
// see MigrateRowCol.
package gbmatrix
