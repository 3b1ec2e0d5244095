// SPDX-License-Identifier: MIT

package data

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctessum/cdf"
)

// DirStore serves NetCDF datasets stored under a directory root. It is
// the local, registry-less flavor of a data store: the logical path is
// taken verbatim (slash-separated) relative to the root.
type DirStore struct {
	root string
}

// NewDirStore returns a store rooted at dir. The directory does not
// have to exist yet; resolution happens at Open time.
func NewDirStore(dir string) *DirStore {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &DirStore{root: abs}
}

// Root returns the absolute root directory of the store.
func (s *DirStore) Root() string { return s.root }

// Open resolves logicalPath under the store root and decodes the file
// as a NetCDF dataset. A missing file surfaces ErrNotFound; the caller
// owns the handle and must Close it.
func (s *DirStore) Open(logicalPath string) (Dataset, error) {
	full := filepath.Join(s.root, filepath.FromSlash(logicalPath))

	fh, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, logicalPath)
		}
		return nil, fmt.Errorf("data: opening %q: %w", logicalPath, err)
	}

	f, err := cdf.Open(fh)
	if err != nil {
		fh.Close()
		return nil, fmt.Errorf("%w: %q: %v", ErrBadDataset, logicalPath, err)
	}
	return &ncDataset{f: f, closer: fh}, nil
}
