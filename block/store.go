// File: store.go
// Role: Chunked append-only node arena: allocation, growth, stable access, and
//       the single-slot move used by the compactor (see graph.DeleteNodes).
// Determinism:
//   - blocks[k].nodes[i].id == k*NodeBlockCap + i for every live id.
//   - Growth only ever appends whole blocks; existing slots never move.
// Concurrency:
//   - Store has no internal lock: callers (the graph façade) serialise writers
//     and may allow concurrent readers once a mutation has completed.
// AI-HINT (file):
//   - EnsureCapacity's growth factor mirrors the source's
//     "(total_nodes/cap)+2" policy; any policy satisfying "at least
//     node_count+extra slots after the call" is an acceptable substitute.
package block

// Store is an indexable chain of NodeBlocks with dense ids starting at 0.
type Store struct {
	blocks    []*NodeBlock
	nodeCount int // number of live nodes; live ids are [0, nodeCount)
	nodeCap   int // total slot capacity across all blocks
}

// NewStore allocates enough blocks to hold at least hintN slots (hintN may be
// zero or negative; a single block is always allocated).
// Complexity: O(hintN / NodeBlockCap).
func NewStore(hintN int) *Store {
	blockCount := hintN / NodeBlockCap
	if hintN%NodeBlockCap != 0 {
		blockCount++
	}
	if blockCount < 1 {
		blockCount = 1
	}

	s := &Store{
		blocks: make([]*NodeBlock, blockCount),
	}
	for i := range s.blocks {
		s.blocks[i] = &NodeBlock{}
	}
	s.nodeCap = blockCount * NodeBlockCap

	return s
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (s *Store) NodeCount() int { return s.nodeCount }

// NodeCap returns total slot capacity across all blocks.
// Complexity: O(1).
func (s *Store) NodeCap() int { return s.nodeCap }

// EnsureCapacity guarantees at least nodeCount+extra slots exist, growing the
// block chain by whole blocks if necessary.
//
// Growth policy (ported from the source verbatim): need = (node_count+extra)
// / node_cap + 2; new block_count = old block_count * need.
//
// Complexity: O(need) for the newly allocated blocks.
func (s *Store) EnsureCapacity(extra int) {
	if extra < 0 {
		panic(ErrNegativeExtra)
	}
	total := s.nodeCount + extra
	if total < s.nodeCap {
		return
	}

	lastBlock := len(s.blocks)
	need := total/s.nodeCap + 2
	newBlockCount := len(s.blocks) * need

	grown := make([]*NodeBlock, newBlockCount)
	copy(grown, s.blocks)
	for i := lastBlock; i < newBlockCount; i++ {
		grown[i] = &NodeBlock{}
	}
	s.blocks = grown
	s.nodeCap = newBlockCount * NodeBlockCap
}

// Append allocates n fresh contiguous ids starting at NodeCount, calling
// init(id) for each new slot so the caller can set labels/payload, and
// advances NodeCount by n. Capacity must already have been ensured by the
// caller via EnsureCapacity.
// Complexity: O(n).
func (s *Store) Append(n int, init func(id NodeID, node *Node)) {
	for i := 0; i < n; i++ {
		id := NodeID(s.nodeCount + i)
		node := s.slot(id)
		node.ID = id
		if init != nil {
			init(id, node)
		}
	}
	s.nodeCount += n
}

// Get returns a stable pointer into the slot for id.
// Panics with ErrOutOfRange if id >= NodeCount() (a fatal programmer error
// per the store's error-handling contract).
// Complexity: O(1).
func (s *Store) Get(id NodeID) *Node {
	if id < 0 || int(id) >= s.nodeCount {
		panic(ErrOutOfRange)
	}
	return s.slot(id)
}

// Truncate shrinks the live node count to newCount without touching slot
// contents (used by the compactor once relocation is complete).
// Complexity: O(1).
func (s *Store) Truncate(newCount int) {
	s.nodeCount = newCount
}

// Migrate copies the donor's node record into the dest slot and rewrites its
// id, exactly mirroring _Graph_NodeBlockMigrateNode. donor and dest must both
// be valid ids under the *current* (pre-truncation) node count.
// Complexity: O(1) (the payload itself is copied by value/reference).
func (s *Store) Migrate(donor, dest NodeID) {
	donorNode := s.slot(donor)
	destNode := s.slot(dest)
	*destNode = *donorNode
	destNode.ID = dest
}

// slot computes the block and in-block position for id without any bounds
// checking; callers are responsible for validating id first.
func (s *Store) slot(id NodeID) *Node {
	blockIdx := int(id) / NodeBlockCap
	within := int(id) % NodeBlockCap

	return &s.blocks[blockIdx].nodes[within]
}
