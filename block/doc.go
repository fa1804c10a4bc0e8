// Package block (graphblas-store/block) is the chunked node arena underneath the
// graph store.
//
// 🚀 What is block?
//
//	A tiny, thread-compatible building block that brings together:
//
//	  • NodeBlock  — a fixed-capacity slice of node slots, never split/shrunk
//	  • Store      — an indexable chain of NodeBlocks with dense NodeIDs
//	  • Iterator   — a lazy forward walk over a contiguous id range
//
// ✨ Why a block arena instead of append([]Node, ...)?
//
//   - Stable addresses — growing the arena never reallocates existing slots,
//     so a *Node borrowed from Get stays valid across later CreateNodes calls.
//   - Amortised growth — capacity grows by whole blocks, not by one slot.
//   - Pure Go           — no cgo, no hidden dependencies.
//
// Quick ASCII example (CAP=4):
//
//	block 0: [n0 n1 n2 n3]   block 1: [n4 n5 _ _]
//	node_count=6, node_cap=8
//
// Store is not safe for unsynchronized concurrent mutation; the graph façade
// in package graph is responsible for serialising writers.
package block
