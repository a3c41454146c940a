// internal/save/open.go
package save

import (
	"fmt"
	"path/filepath"
)

const defaultDBName = "antcolony.db"

// Open builds the store named by backend. For "sqlite" a path without an
// extension is treated as a directory holding antcolony.db. The returned
// close function is never nil.
func Open(backend, path string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch backend {
	case "", "file":
		return NewFileStore(path), noop, nil
	case "sqlite":
		if filepath.Ext(path) == "" {
			path = filepath.Join(path, defaultDBName)
		}
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown save backend %q", backend)
	}
}
