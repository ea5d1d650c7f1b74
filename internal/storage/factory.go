package storage

import "fmt"

// NewStore builds the backend named by the RESIN_STORE setting: the in-memory
// store for "" or "memory", or the SQLite store for "sqlite" (needs the
// sqlite build tag and a database path).
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unknown store kind %q, want memory or sqlite", kind)
	}
}

// CloseIfSupported closes backends holding external resources. The memory
// store has none and is left untouched.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
