// File: types.go
// Role: NodeID, Node, NodeBlock types, sentinel errors, and compile-time constants.
// Determinism:
//   - NodeBlockCap is a compile-time constant; blocks are indexed k·CAP..(k+1)·CAP.
// Concurrency:
//   - Types in this file carry no locks of their own; Store (store.go) owns
//     the synchronization discipline, if any is required by the caller.
// AI-HINT (file):
//   - NodeID is just an int; ids are dense and reassigned by compaction, so
//     never cache a NodeID across a DeleteNodes call without re-validating it.
package block

import "errors"

// NodeBlockCap is the fixed capacity of a single NodeBlock, in slots.
// A power of two is recommended so id-to-block arithmetic stays cheap.
const NodeBlockCap = 16384

// Sentinel errors for block package operations.
var (
	// ErrOutOfRange indicates a NodeID at or beyond the live node count.
	ErrOutOfRange = errors.New("block: node id out of range")

	// ErrNegativeExtra indicates EnsureCapacity was asked to grow by a negative
	// amount, or NewRangeIterator was given a step <= 0.
	ErrNegativeExtra = errors.New("block: negative capacity request")
)

// NodeID is a dense, nonnegative integer identifying a live node.
// It is not stable across a compacting delete (see Store.Migrate).
type NodeID int

// Node is a single node record: a stable id plus opaque caller payload.
// The store never interprets Payload; it is moved verbatim by Migrate.
type Node struct {
	ID      NodeID
	Payload interface{}
}

// NodeBlock is a fixed-capacity, never-split, never-shrunk array of node
// slots. Block k holds ids in [k*NodeBlockCap, (k+1)*NodeBlockCap).
type NodeBlock struct {
	nodes [NodeBlockCap]Node
}
