package storage

import (
	"fmt"

	"github.com/ilcoutreach/outreach-api/internal/config"
	"github.com/ilcoutreach/outreach-api/internal/storage/memory"
	"github.com/ilcoutreach/outreach-api/internal/storage/postgres"
	"github.com/ilcoutreach/outreach-api/internal/storage/sqlite"
)

// StorageType represents the type of storage backend
type StorageType string

const (
	// StorageTypeMemory keeps snapshots in process memory only
	StorageTypeMemory StorageType = "memory"
	// StorageTypeSQLite persists snapshots to a local SQLite file
	StorageTypeSQLite StorageType = "sqlite"
	// StorageTypePostgres persists snapshots to PostgreSQL
	StorageTypePostgres StorageType = "postgres"
)

// GetSupportedTypes returns a list of supported storage types
func GetSupportedTypes() []StorageType {
	return []StorageType{
		StorageTypeMemory,
		StorageTypeSQLite,
		StorageTypePostgres,
	}
}

// ValidateStorageType validates if a storage type is supported
func ValidateStorageType(storageType string) (StorageType, error) {
	st := StorageType(storageType)

	for _, supported := range GetSupportedTypes() {
		if st == supported {
			return st, nil
		}
	}

	return "", fmt.Errorf("unsupported storage type: %s. Supported types: %v", storageType, GetSupportedTypes())
}

// Open creates the snapshot store configured by STORAGE_TYPE.
func Open(cfg *config.Config) (Store, error) {
	storageType, err := ValidateStorageType(cfg.Storage.Type)
	if err != nil {
		return nil, err
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.NewStore(), nil
	case StorageTypeSQLite:
		return sqlite.NewStore(cfg.Storage.SQLitePath)
	case StorageTypePostgres:
		return postgres.NewStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}
