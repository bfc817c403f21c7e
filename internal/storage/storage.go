// Package storage is the persistence port for store snapshots.
//
// Snapshots are whole-record JSON blobs keyed by fixed names; every write
// replaces the previous value (last write wins, no versioning).
package storage

import "context"

const (
	// Snapshot keys, one per persisted record.
	KeyProducts = "mhdelivery-products"
	KeySettings = "mhdelivery-settings"
	KeyCart     = "mhdelivery-cart"
)

// Backend stores snapshots durably. Load reports ok=false when the key has
// never been written.
type Backend interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
