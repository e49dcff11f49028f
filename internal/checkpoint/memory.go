package checkpoint

import (
	"context"
	"strings"
	"sync"

	parsectx "github.com/somranjan/beanio/internal/context"
)

// Memory is the default, non-persistent Store: a process-local map
// guarded by a mutex, the checkpoint analogue of the TypeHandler
// registry's own "simple map behind a lock" shape
// (internal/typehandler.Registry).
type Memory struct {
	mu   sync.RWMutex
	data parsectx.StateMap
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{data: parsectx.StateMap{}}
}

func (m *Memory) Save(_ context.Context, state parsectx.StateMap) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, v := range state {
		m.data[k] = v
	}

	return nil
}

func (m *Memory) Load(_ context.Context, namespace string) (parsectx.StateMap, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := namespace + "."
	out := parsectx.StateMap{}

	for k, v := range m.data {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}

	return out, nil
}

// Snapshot returns a defensive copy of every key this Store currently
// holds, for ExportYAML.
func (m *Memory) Snapshot() parsectx.StateMap {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(parsectx.StateMap, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}

	return out
}
