package storage

import (
	"fmt"

	"github.com/Conceptual-Machines/ikovsky-api/internal/config"
	"github.com/Conceptual-Machines/ikovsky-api/internal/database"
)

// Open builds the store selected by cfg.StorageBackend. Postgres connects
// and migrates before returning.
func Open(cfg *config.Config) (SongStore, error) {
	switch cfg.StorageBackend {
	case BackendPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return NewPostgresStore(db), nil
	case BackendDynamoDB:
		return NewDynamoStore(cfg.AWSRegion, cfg.DynamoDBTable), nil
	case BackendMemory:
		return NewBoundedMemoryStore(cfg.MemoryStoreLimit), nil
	case BackendNone, "":
		return DiscardStore{}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
