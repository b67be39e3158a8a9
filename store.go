package tracker

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Store persists a Snapshot as a whole. Save replaces the previous snapshot.
type Store interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
	io.Closer
}

// Store kinds accepted by OpenStore.
const (
	StoreJSONL  = "jsonl"
	StoreSQLite = "sqlite"
)

// OpenStore opens a store of the given kind located at path.
func OpenStore(kind, path string, log zerolog.Logger) (Store, error) {
	switch kind {
	case StoreJSONL, "":
		return &JSONLStore{Dir: path, Log: log}, nil
	case StoreSQLite:
		return OpenSQLiteStore(path, log)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
