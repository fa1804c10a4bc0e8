// Package graphblasstore is a labeled property-graph store whose entire
// state lives in sparse boolean matrices: one adjacency matrix, one matrix
// per relation type, one diagonal matrix per label.
//
// 🚀 What is graphblas-store?
//
//	A thread-safe, matrix-backed graph core that brings together:
//
//	  • Dense node ids: chunked arena storage, stable addresses under growth
//	  • Matrix state: adjacency, per-relation, and per-label boolean matrices
//	  • Batch compaction: swap-down deletion keeps ids dense without a scan
//
// ✨ Why a matrix-backed store?
//
//   - Predictable      — every mutation is one or a few matrix element ops
//   - Rock-solid       — built-in R/W locking ensures thread-safety
//   - Extensible       — PersistenceHook lets a host observe every mutation
//   - GraphBLAS-native — boolean matrices are the data, not a derived view
//
// Under the hood, everything is organized under three subpackages:
//
//	block/    — chunked node arena: allocation, stable access, compaction move
//	gbmatrix/ — matrix pool: adjacency/relation/label matrices, lazy resize
//	graph/    — the public façade: create/label/connect/delete nodes and edges
//
// Quick ASCII example:
//
//	    adjacency(dest, src):
//	        0   1   2
//	    0 [ .   .   . ]
//	    1 [ 1   .   . ]   <- edge 0 -> 1
//	    2 [ .   1   . ]   <- edge 1 -> 2
//
//	represents a three-node path 0 -> 1 -> 2, one bit per edge.
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full component
// breakdown and the rationale behind each dependency.
//
//	go get github.com/katalvlaran/graphblas-store/graph
package graphblasstore
