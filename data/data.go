// SPDX-License-Identifier: MIT

package data

import "errors"

// Sentinel errors for dataset retrieval and decoding.
var (
	// ErrNotFound indicates that no dataset backs the requested logical path.
	ErrNotFound = errors.New("data: dataset not found")

	// ErrBadDataset indicates a dataset missing a required attribute,
	// variable or unit tag, or carrying a column of unexpected shape.
	ErrBadDataset = errors.New("data: malformed dataset")
)

// Dataset is a labeled dataset handle: global attributes plus named
// columns. Implementations are read-only; Close releases the backing
// handle and must be called exactly once.
type Dataset interface {
	// AttrString returns a global string attribute.
	AttrString(name string) (string, error)

	// AttrInt returns a global integer attribute.
	AttrInt(name string) (int, error)

	// Strings returns the values of a string-valued column.
	Strings(variable string) ([]string, error)

	// Column returns a numeric column along with its unit tag, read
	// from the variable's "units" attribute.
	Column(variable string) (values []float64, unit string, err error)

	// Close releases the underlying handle.
	Close() error
}

// Store retrieves labeled datasets by logical path. Implementations
// own all storage mechanics (directory layout, caching, remotes); the
// spectral core calls Open and nothing else.
type Store interface {
	Open(logicalPath string) (Dataset, error)
}
