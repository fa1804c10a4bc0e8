// File: types.go
// Role: Sentinel errors and package-level constants for gbmatrix.
// AI-HINT (file):
//   - ErrBackendFailure wraps any non-nil error returned by forGraphBLASGo;
//     per the store's error-handling contract this is always fatal.
package gbmatrix

import "errors"

// Sentinel errors for gbmatrix package operations.
var (
	// ErrBadDimension indicates a requested matrix dimension was non-positive.
	ErrBadDimension = errors.New("gbmatrix: dimension must be > 0")

	// ErrBackendFailure wraps a non-success return from the matrix backend.
	ErrBackendFailure = errors.New("gbmatrix: matrix backend failure")

	// ErrIndexOutOfRange indicates a relation or label index beyond the
	// current handle-array length.
	ErrIndexOutOfRange = errors.New("gbmatrix: handle index out of range")
)

// DefaultHandleCap is the initial capacity of the relations/labels handle
// arrays (GRAPH_DEFAULT_RELATION_CAP / GRAPH_DEFAULT_LABEL_CAP in the
// source); growth beyond this is geometric via Go's own slice append.
const DefaultHandleCap = 4
