// File: iterator.go
// Role: Lazy forward walk over a contiguous id range across blocks.
// Determinism:
//   - Yields ids start, start+step, ... strictly below end, in ascending order.
// Concurrency:
//   - Not restartable; does not observe mutations made after construction.
//     Behaviour is undefined if the caller mutates the Store while iterating.
// AI-HINT (file):
//   - Finite: Next() returns false once the range is exhausted.
package block

// Iterator produces *Node references for a contiguous (strided) id range.
// It is constructed via Store.NewIterator / Store.NewRangeIterator and is
// single-use: once exhausted it cannot be restarted.
type Iterator struct {
	store   *Store
	current NodeID
	end     NodeID // exclusive upper bound
	step    int
	done    bool
}

// NewRangeIterator constructs an Iterator over ids [start, end) with the given
// positive step. Panics if step <= 0.
// Complexity: O(1) to construct; O((end-start)/step) to exhaust.
func (s *Store) NewRangeIterator(start, end NodeID, step int) *Iterator {
	if step <= 0 {
		panic(ErrNegativeExtra)
	}
	return &Iterator{
		store:   s,
		current: start,
		end:     end,
		step:    step,
		done:    start >= end,
	}
}

// NewIterator constructs an Iterator over [start, end) with step 1.
func (s *Store) NewIterator(start, end NodeID) *Iterator {
	return s.NewRangeIterator(start, end, 1)
}

// Next advances the iterator and reports whether a node is available.
// Complexity: O(1).
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}
	if it.current >= it.end {
		it.done = true
		return false
	}
	return true
}

// Node returns the node at the iterator's current position, then advances.
// Callers must call Next() before each Node() call.
// Complexity: O(1).
func (it *Iterator) Node() *Node {
	n := it.store.Get(it.current)
	it.current += NodeID(it.step)
	if it.current >= it.end {
		it.done = true
	}
	return n
}

// Reset is intentionally absent: iterators are not restartable (see the
// file header).
