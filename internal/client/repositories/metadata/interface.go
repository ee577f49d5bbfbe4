// Package metadata is the key/value substrate under the session store.
// Backends: SQLite (local client), Redis (server-side rendering hosts) and
// memory (tests, throwaway sessions).
//
// Contract shared by all backends:
//   - Get returns (nil, nil) for a missing key.
//   - GetMany reads its keys in one consistent snapshot; missing keys are
//     absent from the result.
//   - SetMany and Delete apply all keys or none.
//   - Values are copied; callers may reuse their slices.
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
