package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Supported values for Open's driver argument.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// Open returns the Store for driver, creating the data directory when needed.
func Open(driver, path, bucket string) (Store, error) {
	switch driver {
	case DriverSQLite, "":
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		return NewSQLiteStore(path)
	case DriverBolt:
		return NewBoltStore(path, bucket)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
