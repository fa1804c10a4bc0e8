// File: pool.go
// Role: Pool (component C) — owns the adjacency matrix, the per-relation
//       matrices, and the per-label matrices; implements the lazy-resize
//       accessor policy double-checked under Guard.
// Determinism:
//   - AddRelation/AddLabel return strictly increasing indices starting at 0.
// Concurrency:
//   - GetAdjacency/GetRelation/GetLabel never return a matrix whose
//     dimensions disagree with the caller-supplied nodeCount.
// AI-HINT (file):
//   - Callers always pass the graph's current node_count; Pool itself does
//     not track it, keeping component boundaries clean (D owns node_count,
//     C only reacts to it).
package gbmatrix

import "fmt"

// Pool owns the adjacency matrix and the growable relation/label handle
// arrays backing a single graph.
type Pool struct {
	guard *Guard

	adjacency *BoolMatrix
	relations []*BoolMatrix
	labels    []*BoolMatrix
}

// NewPool allocates a fresh adjacency matrix of dimension (nodeCap, nodeCap)
// and empty relation/label handle arrays pre-sized to relCapHint/labelCapHint
// (DefaultHandleCap is used for either hint that is <= 0).
// Complexity: O(1).
func NewPool(nodeCap, relCapHint, labelCapHint int) (*Pool, error) {
	adj, err := NewBoolMatrix(nodeCap)
	if err != nil {
		return nil, fmt.Errorf("gbmatrix: NewPool: %w", err)
	}
	if relCapHint <= 0 {
		relCapHint = DefaultHandleCap
	}
	if labelCapHint <= 0 {
		labelCapHint = DefaultHandleCap
	}
	return &Pool{
		guard:     NewGuard(),
		adjacency: adj,
		relations: make([]*BoolMatrix, 0, relCapHint),
		labels:    make([]*BoolMatrix, 0, labelCapHint),
	}, nil
}

// resizeIfStale performs the double-checked lazy resize described in the
// distilled spec §4.C: read current dimension; if it differs from
// nodeCount, enter the critical section, re-read, and if still different,
// resize. Concurrent readers racing through a stale accessor coalesce onto
// a single resize call.
func (p *Pool) resizeIfStale(m *BoolMatrix, nodeCount int) {
	if m.Dim() == nodeCount {
		return
	}
	p.guard.Enter()
	defer p.guard.Leave()
	if m.Dim() != nodeCount {
		m.Resize(nodeCount)
	}
}

// GetAdjacency returns the adjacency matrix, lazily resized to nodeCount.
// Complexity: O(1) amortized; O(evicted) on the resize that actually fires.
func (p *Pool) GetAdjacency(nodeCount int) *BoolMatrix {
	p.resizeIfStale(p.adjacency, nodeCount)
	return p.adjacency
}

// GetRelation returns the r-th relation matrix, lazily resized to nodeCount.
// Panics with ErrIndexOutOfRange if r is not a valid relation index (fatal
// per the store's error-handling contract).
func (p *Pool) GetRelation(r, nodeCount int) *BoolMatrix {
	if r < 0 || r >= len(p.relations) {
		panic(ErrIndexOutOfRange)
	}
	p.resizeIfStale(p.relations[r], nodeCount)
	return p.relations[r]
}

// GetLabel returns the ℓ-th label matrix, lazily resized to nodeCount.
// Panics with ErrIndexOutOfRange if ℓ is not a valid label index.
func (p *Pool) GetLabel(l, nodeCount int) *BoolMatrix {
	if l < 0 || l >= len(p.labels) {
		panic(ErrIndexOutOfRange)
	}
	p.resizeIfStale(p.labels[l], nodeCount)
	return p.labels[l]
}

// RelationCount returns the number of relation matrices registered so far.
func (p *Pool) RelationCount() int { return len(p.relations) }

// LabelCount returns the number of label matrices registered so far.
func (p *Pool) LabelCount() int { return len(p.labels) }

// AddRelation allocates a new empty (nodeCap, nodeCap) boolean matrix and
// appends it to the relation handle array, returning its index. Indices are
// strictly increasing starting at 0.
// Complexity: O(1) amortized (slice append).
func (p *Pool) AddRelation(nodeCap int) (int, error) {
	m, err := NewBoolMatrix(nodeCap)
	if err != nil {
		return 0, fmt.Errorf("gbmatrix: AddRelation: %w", err)
	}
	p.relations = append(p.relations, m)
	return len(p.relations) - 1, nil
}

// AddLabel allocates a new empty (nodeCap, nodeCap) boolean matrix and
// appends it to the label handle array, returning its index.
// Complexity: O(1) amortized.
func (p *Pool) AddLabel(nodeCap int) (int, error) {
	m, err := NewBoolMatrix(nodeCap)
	if err != nil {
		return 0, fmt.Errorf("gbmatrix: AddLabel: %w", err)
	}
	p.labels = append(p.labels, m)
	return len(p.labels) - 1, nil
}

// ResizeAll eagerly resizes the adjacency matrix and every relation/label
// matrix to n×n. Unlike the lazy resizeIfStale path the accessors use, this
// is called once, synchronously, at the end of a compacting delete so
// invariant 4 (no matrix holds an entry with row/col >= node_count) holds
// the instant the caller returns, instead of only by the next accessor call.
// Complexity: O(evicted) summed over every owned matrix.
func (p *Pool) ResizeAll(n int) {
	p.adjacency.Resize(n)
	for _, r := range p.relations {
		r.Resize(n)
	}
	for _, l := range p.labels {
		l.Resize(n)
	}
}

// CommitPending flushes every matrix owned by the pool, forcing the backend
// to materialize any deferred operations.
// Complexity: sum of each matrix's Flush cost.
func (p *Pool) CommitPending() {
	p.adjacency.Flush()
	for _, r := range p.relations {
		r.Flush()
	}
	for _, l := range p.labels {
		l.Flush()
	}
}

// Free releases the pool's references to every matrix it owns. The backing
// matrix objects are reclaimed by the Go garbage collector once
// unreferenced; there is no explicit backend free call in this library.
func (p *Pool) Free() {
	p.adjacency = nil
	p.relations = nil
	p.labels = nil
}
