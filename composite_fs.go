//go:build !tinygo

package theremin

import (
	"io/fs"
)

// CompositeFS layers multiple file systems so a newer FS can override files
// from an older FS.  The hub uses it to let a site directory override its
// embedded chrome.
type CompositeFS struct {
	fileSystems []fs.FS
}

func NewCompositeFS() *CompositeFS {
	return &CompositeFS{}
}

func (c *CompositeFS) AddFS(fsys fs.FS) {
	c.fileSystems = append(c.fileSystems, fsys)
}

func (c *CompositeFS) Open(name string) (fs.File, error) {

	// Start with newest (last added) FS, giving newer FSes priority over
	// older FSes when searching for file name.  The first FS with a
	// matching file name wins.

	for i := len(c.fileSystems) - 1; i >= 0; i-- {
		fsys := c.fileSystems[i]
		if file, err := fsys.Open(name); err == nil {
			return file, nil
		}
	}

	return nil, fs.ErrNotExist
}
