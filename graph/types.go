// File: types.go
// Role: Graph aggregate type, sentinel index values, functional options, and
//       the persistence-hook extension seam.
// Determinism:
//   - NodeID is a plain alias of block.NodeID; ids are dense and reassigned
//     by DeleteNodes (see compact.go).
// Concurrency:
//   - mu serialises structural mutation; matrix-resize coalescing is
//     additionally guarded inside gbmatrix.Pool itself.
package graph

import (
	"sync"

	"github.com/katalvlaran/graphblas-store/block"
	"github.com/katalvlaran/graphblas-store/gbmatrix"
)

// NodeID identifies a live node. It is dense, nonnegative, and not stable
// across a compacting DeleteNodes call.
type NodeID = block.NodeID

// Sentinel index values.
const (
	// NoLabel means "do not attach a label" when passed to CreateNodes.
	NoLabel = -1
	// NoRelation means "untyped" when passed to ConnectNodes or DeleteEdge.
	NoRelation = -1
)

// Triple is one (src, dest, rel) edge request for ConnectNodes.
type Triple struct {
	Src  NodeID
	Dest NodeID
	Rel  int // NoRelation for untyped
}

// PersistenceHook is the extension seam a host module would use to register
// per-mutation callbacks (e.g. write-ahead logging, key registration). The
// core never implements durability itself (Non-goal); it only guarantees to
// call the hook, if one is configured, around structural mutations.
type PersistenceHook interface {
	// OnMutate is called after a structural mutation has completed and the
	// graph's invariants hold again. op is a short label such as
	// "create_nodes", "connect_nodes", "delete_edge", "delete_nodes".
	OnMutate(op string)
}

// noopHook is the default PersistenceHook: it does nothing.
type noopHook struct{}

func (noopHook) OnMutate(string) {}

// Option configures a Graph before or at construction.
type Option func(*config)

type config struct {
	relationCapHint int
	labelCapHint    int
	hook            PersistenceHook
}

// WithRelationCapacityHint pre-sizes the relation handle array.
func WithRelationCapacityHint(n int) Option {
	return func(c *config) { c.relationCapHint = n }
}

// WithLabelCapacityHint pre-sizes the label handle array.
func WithLabelCapacityHint(n int) Option {
	return func(c *config) { c.labelCapHint = n }
}

// WithPersistenceHook registers a host-provided mutation callback.
func WithPersistenceHook(h PersistenceHook) Option {
	return func(c *config) { c.hook = h }
}

// Graph is the mutable labeled property-graph store: node storage, label
// matrices, relation matrices, and an aggregate adjacency matrix, kept
// mutually consistent through every public method.
type Graph struct {
	mu sync.RWMutex

	store *block.Store
	pool  *gbmatrix.Pool
	hook  PersistenceHook

	relationNames map[string]int
	labelNames    map[string]int
}

// New allocates a Graph with room for at least hintN nodes and an empty
// adjacency matrix. hintN must be > 0.
// Complexity: O(hintN / NodeBlockCap).
func New(hintN int, opts ...Option) *Graph {
	if hintN <= 0 {
		invalidArg(ErrInvalidHint)
	}
	cfg := &config{hook: noopHook{}}
	for _, opt := range opts {
		opt(cfg)
	}

	store := block.NewStore(hintN)
	pool, err := gbmatrix.NewPool(store.NodeCap(), cfg.relationCapHint, cfg.labelCapHint)
	if err != nil {
		fail(MatrixBackendFailure, err)
	}

	return &Graph{
		store:         store,
		pool:          pool,
		hook:          cfg.hook,
		relationNames: make(map[string]int),
		labelNames:    make(map[string]int),
	}
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.store.NodeCount()
}

// Free releases every block, matrix, and the guard owned by this Graph.
// The Graph must not be used afterward.
func (g *Graph) Free() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pool.Free()
	g.store = nil
	g.pool = nil
}
