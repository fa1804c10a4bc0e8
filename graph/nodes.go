// File: nodes.go
// Role: Node lifecycle & queries: CreateNodes, GetNode, LabelNodes,
//       ScanNodes, NodeLabels.
// Determinism:
//   - CreateNodes hands out ids [old_count, old_count+n) contiguously.
//   - ScanNodes yields exactly NodeCount() elements in ascending id order.
// Concurrency:
//   - Mutations (CreateNodes, LabelNodes) take the write lock; reads
//     (GetNode, ScanNodes, NodeLabels) take the read lock.
// AI-HINT (file):
//   - Every index here is validated against the graph's live state before
//     use; an invalid id/label/relation is a fatal Fault, never an error
//     return (see errors.go).
package graph

import "github.com/katalvlaran/graphblas-store/block"

// CreateNodes allocates n fresh contiguous ids and, if labels is non-nil,
// sets the diagonal entry of each supplied label matrix for the
// corresponding new node. labels, if given, must have length n, with each
// entry either a valid label index or NoLabel.
// Complexity: O(n) plus O(n) label-matrix writes.
func (g *Graph) CreateNodes(n int, labels []int) *block.Iterator {
	if n < 0 {
		invalidArg(ErrInvalidHint)
	}
	if labels != nil && len(labels) != n {
		invalidArg(ErrLabelCountMismatch)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	oldCount := g.store.NodeCount()
	g.store.EnsureCapacity(n)
	g.store.Append(n, nil)
	newCount := oldCount + n

	for i, lbl := range labels {
		if lbl == NoLabel {
			continue
		}
		if lbl < 0 || lbl >= g.pool.LabelCount() {
			invalidArg(ErrInvalidLabel)
		}
		id := oldCount + i
		g.pool.GetLabel(lbl, newCount).Set(id, id)
	}

	g.hook.OnMutate("create_nodes")

	return g.store.NewIterator(block.NodeID(oldCount), block.NodeID(newCount))
}

// GetNode returns a stable reference to the node slot for id.
// Panics (fatal) if id is not in [0, NodeCount()).
// Complexity: O(1).
func (g *Graph) GetNode(id NodeID) *block.Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.checkNodeID(id)

	return g.store.Get(id)
}

// LabelNodes sets labels[l][i,i]=1 for every i in [start, end] (inclusive).
// Panics (fatal) if the range or label index is invalid.
// Complexity: O(end-start+1).
func (g *Graph) LabelNodes(start, end NodeID, l int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := g.store.NodeCount()
	if start < 0 || end < start || int(end) >= count {
		invalidArg(ErrInvalidNodeID)
	}
	if l < 0 || l >= g.pool.LabelCount() {
		invalidArg(ErrInvalidLabel)
	}

	labelMat := g.pool.GetLabel(l, count)
	for i := start; i <= end; i++ {
		labelMat.Set(int(i), int(i))
	}

	g.hook.OnMutate("label_nodes")
}

// ScanNodes returns an iterator over every live node, [0, NodeCount()), in
// ascending id order.
// Complexity: O(1) to construct.
func (g *Graph) ScanNodes() *block.Iterator {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.store.NewIterator(0, block.NodeID(g.store.NodeCount()))
}

// NodeLabels returns every label index node id currently bears, by scanning
// the diagonal of each label matrix. This is a convenience read the original
// source did not expose directly (query code re-derived it ad hoc); it adds
// no new index, only a name for an existing scan.
// Complexity: O(label_count).
func (g *Graph) NodeLabels(id NodeID) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.checkNodeID(id)

	count := g.store.NodeCount()
	var out []int
	for l := 0; l < g.pool.LabelCount(); l++ {
		if g.pool.GetLabel(l, count).Get(int(id), int(id)) {
			out = append(out, l)
		}
	}

	return out
}

// checkNodeID panics (fatal) unless id is in [0, NodeCount()). Callers must
// already hold g.mu (read or write).
func (g *Graph) checkNodeID(id NodeID) {
	if id < 0 || int(id) >= g.store.NodeCount() {
		invalidArg(ErrInvalidNodeID)
	}
}
