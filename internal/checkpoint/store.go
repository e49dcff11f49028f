// Package checkpoint implements the abstract checkpoint key-value store
// spec.md §4.6/§6 describes for resumable streaming: a Selector tree's
// occurrence counts (internal/parser.StreamTree.Snapshot/Restore) are
// the payload; this package only owns where that payload is kept.
package checkpoint

import (
	"context"

	parsectx "github.com/somranjan/beanio/internal/context"
)

// Store persists and retrieves a stream's checkpoint state. spec.md
// explicitly leaves persistence to the host ("the host chooses
// persistence"); this module supplies two concrete options (Memory,
// SQLStore) behind this one interface.
type Store interface {
	// Save persists state, keyed by the namespace its keys already
	// carry (spec.md §4.8, CountKey's "<namespace>.<selectorName>.
	// count" shape) — callers pass the exact map a StreamTree.Snapshot
	// produced.
	Save(ctx context.Context, state parsectx.StateMap) error

	// Load returns every previously saved key under namespace. A
	// namespace with no saved state returns an empty, non-nil StateMap
	// so RestoreFromEmpty-style callers still get a consistent "not
	// found" signal via StateMap.RequireInt rather than a nil map
	// panic.
	Load(ctx context.Context, namespace string) (parsectx.StateMap, error)
}
